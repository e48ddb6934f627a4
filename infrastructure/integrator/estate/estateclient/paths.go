package estateclient

// Rotas do backend imobiliário, relativas a ESTATE_API_URL
const (
	pathRealEstates       = "/realestates"
	pathRealEstateDetails = "/realestate/details"
	pathCreateRealEstate  = "/create/realestate"
	pathEditRealEstate    = "/edit/realestate"
	pathDeleteRealEstate  = "/delete/realestate"

	pathUnits      = "/units"
	pathCreateUnit = "/create/unit"
	pathEditUnit   = "/edit/unit"
	pathDeleteUnit = "/delete/unit"

	pathClients           = "/clients"
	pathContractedClients = "/contracted/clients"
	pathCreateClient      = "/create/client"
	pathEditClient        = "/edit/client"
	pathDeleteClient      = "/delete/client"

	pathContracts        = "/contracts"
	pathContractDetails  = "/contract/details"
	pathCreateContract   = "/create/contract"
	pathEditContract     = "/edit/contract"
	pathRemoveContract   = "/remove/contract"
	pathPayInstallment   = "/pay/contract/installment"
	pathExpiredContracts = "/expired/contracts"

	pathMaintenances      = "/admin/maintenances"
	pathEditMaintenance   = "/admin/edit/maintenance"
	pathMaintenanceStatus = "/update/maintenance/status"
	pathAssignMaintenance = "/assign/maintenance/order"

	pathAssessments    = "/admin/assessments"
	pathEditAssessment = "/edit/assessment"
	pathVisitStatus    = "/update/visit/status"

	pathServices      = "/services"
	pathCreateService = "/create/service"
	pathEditService   = "/edit/service"
	pathDeleteService = "/delete/service"

	pathSections      = "/sections"
	pathCreateSection = "/create/section"
	pathEditSection   = "/edit/section"
	pathDeleteSection = "/delete/section"

	pathMedia       = "/media"
	pathCreateMedia = "/create/media"
	pathEditMedia   = "/edit/media"
	pathDeleteMedia = "/delete/media"

	pathMarketingRequests = "/marketing/requests"
	pathCreateMarketing   = "/create/marketing/request"
	pathEditMarketing     = "/edit/marketing/request"
	pathMarketingStatus   = "/update/marketing/request/status"
	pathDeleteMarketing   = "/delete/marketing/request"

	pathUsers      = "/users"
	pathCreateUser = "/create/user"
	pathEditUser   = "/edit/user"
	pathDeleteUser = "/delete/user"

	pathTransactions = "/transactions"
)
