package handler

import (
	"net/http"

	"github.com/vfg2006/estate-admin-api/internal/api/handler/router"
	"github.com/vfg2006/estate-admin-api/internal/usecases/accounts"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/content"
	"github.com/vfg2006/estate-admin-api/internal/usecases/contracting"
	"github.com/vfg2006/estate-admin-api/internal/usecases/dashboard"
	"github.com/vfg2006/estate-admin-api/internal/usecases/marketing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/property"
	"github.com/vfg2006/estate-admin-api/internal/usecases/servicing"
	"github.com/vfg2006/estate-admin-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Dashboard(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
	}
}

func RealEstates(service property.PropertyService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/realestates",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListRealEstates),
		},
		{
			Path:    "/v1/realestates",
			Method:  http.MethodPost,
			Handler: createHandler(service.CreateRealEstate),
		},
		{
			Path:    "/v1/realestates/:id",
			Method:  http.MethodGet,
			Handler: GetRealEstate(service),
		},
		{
			Path:    "/v1/realestates/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(service.UpdateRealEstate),
		},
		{
			Path:    "/v1/realestates/:id",
			Method:  http.MethodDelete,
			Handler: deleteHandler(service.DeleteRealEstate),
		},
		{
			Path:    "/v1/realestates/:id/units",
			Method:  http.MethodGet,
			Handler: ListUnits(service),
		},
		{
			Path:    "/v1/realestates/:id/units",
			Method:  http.MethodPost,
			Handler: CreateUnit(service),
		},
		{
			Path:    "/v1/units/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(service.UpdateUnit),
		},
		{
			Path:    "/v1/units/:id",
			Method:  http.MethodDelete,
			Handler: DeleteUnit(service),
		},
	}
}

func Contracts(service contracting.ContractingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListClients),
		},
		{
			Path:    "/v1/clients/contracted",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListContractedClients),
		},
		{
			Path:    "/v1/clients",
			Method:  http.MethodPost,
			Handler: createHandler(service.CreateClient),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(service.UpdateClient),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodDelete,
			Handler: deleteHandler(service.DeleteClient),
		},
		{
			Path:    "/v1/contracts",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListContracts),
		},
		{
			Path:    "/v1/contracts",
			Method:  http.MethodPost,
			Handler: createHandler(service.CreateContract),
		},
		{
			Path:    "/v1/contracts/:id",
			Method:  http.MethodGet,
			Handler: GetContract(service),
		},
		{
			Path:    "/v1/contracts/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(service.UpdateContract),
		},
		{
			Path:    "/v1/contracts/:id",
			Method:  http.MethodDelete,
			Handler: deleteHandler(service.DeleteContract),
		},
		{
			Path:    "/v1/contracts/:id/installments/:installment_id/pay",
			Method:  http.MethodPost,
			Handler: PayInstallment(service),
		},
		// Fora de /v1/contracts: o httprouter não aceita segmento fixo ao lado de :id
		{
			Path:    "/v1/expired-contracts",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListExpiredContracts),
		},
		{
			Path:    "/v1/expired-contracts/alerts",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListExpiredAlerts),
		},
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListTransactions),
		},
	}
}

func Servicing(service servicing.ServicingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/maintenances",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListMaintenances),
		},
		{
			Path:    "/v1/maintenances/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(service.UpdateMaintenance),
		},
		{
			Path:    "/v1/maintenances/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateMaintenanceStatus(service),
		},
		{
			Path:    "/v1/maintenances/:id/assign",
			Method:  http.MethodGet,
			Handler: GetAssignOptions(service),
		},
		{
			Path:    "/v1/maintenances/:id/assign",
			Method:  http.MethodPost,
			Handler: AssignMaintenance(service),
		},
		{
			Path:    "/v1/assessments",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListAssessments),
		},
		{
			Path:    "/v1/assessments/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(service.UpdateAssessment),
		},
		{
			Path:    "/v1/assessments/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateVisitStatus(service),
		},
	}
}

func Content(service content.ContentService) []router.Route {
	services := service.Services()
	sections := service.Sections()

	return []router.Route{
		{
			Path:    "/v1/services",
			Method:  http.MethodGet,
			Handler: listHandler(services.List),
		},
		{
			Path:    "/v1/services",
			Method:  http.MethodPost,
			Handler: createHandler(services.Create),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(services.Update),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodDelete,
			Handler: deleteHandler(services.Delete),
		},
		{
			Path:    "/v1/sections",
			Method:  http.MethodGet,
			Handler: listHandler(sections.List),
		},
		{
			Path:    "/v1/sections",
			Method:  http.MethodPost,
			Handler: createHandler(sections.Create),
		},
		{
			Path:    "/v1/sections/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(sections.Update),
		},
		{
			Path:    "/v1/sections/:id",
			Method:  http.MethodDelete,
			Handler: deleteHandler(sections.Delete),
		},
		{
			Path:    "/v1/media",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListMedia),
		},
		{
			Path:    "/v1/media",
			Method:  http.MethodPost,
			Handler: UploadMedia(service),
		},
		{
			Path:    "/v1/media/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(service.UpdateMedia),
		},
		{
			Path:    "/v1/media/:id",
			Method:  http.MethodDelete,
			Handler: deleteHandler(service.DeleteMedia),
		},
	}
}

func Marketing(service marketing.MarketingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/marketing-requests",
			Method:  http.MethodGet,
			Handler: listHandler(service.ListRequests),
		},
		{
			Path:    "/v1/marketing-requests",
			Method:  http.MethodPost,
			Handler: createHandler(service.CreateRequest),
		},
		{
			Path:    "/v1/marketing-requests/:id",
			Method:  http.MethodPut,
			Handler: updateHandler(service.UpdateRequest),
		},
		{
			Path:    "/v1/marketing-requests/:id/status",
			Method:  http.MethodPut,
			Handler: statusHandler(service.UpdateRequestStatus),
		},
		{
			Path:    "/v1/marketing-requests/:id",
			Method:  http.MethodDelete,
			Handler: deleteHandler(service.DeleteRequest),
		},
	}
}

func Users(service accounts.AccountsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     createHandler(service.CreateUser),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     updateHandler(service.UpdateUser),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     deleteHandler(service.DeleteUser),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Audit(service auditing.AuditService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/audit",
			Method:      http.MethodGet,
			Handler:     ListAuditEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VerifiedAdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.VerifiedAdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.VerifiedAdminOnly()},
		},
	}
}
