package domain

const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusDone       = "done"
	MaintenanceStatusCancelled  = "cancelled"
)

// Maintenance é um pedido de manutenção que pode ser atribuído a um agente
type Maintenance struct {
	ID            int64  `json:"id"`
	ClientID      int64  `json:"client_id"`
	ClientName    string `json:"client_name,omitempty"`
	UnitID        int64  `json:"unit_id"`
	Category      string `json:"category" validate:"notblank"`
	Description   string `json:"description" validate:"notblank"`
	ScheduledDate string `json:"scheduled_date" validate:"notblank"`
	ScheduledTime string `json:"scheduled_time" validate:"notblank,clock"`
	Status        string `json:"status,omitempty"`
	AgentID       int64  `json:"agent_id,omitempty"`
	AgentName     string `json:"agent_name,omitempty"`
}

// MaintenanceAssignment é a ordem de atribuição de uma manutenção a um agente
type MaintenanceAssignment struct {
	MaintenanceID int64 `json:"maintenance_id" validate:"required"`
	AgentID       int64 `json:"agent_id" validate:"required"`
}

const (
	VisitStatusPending   = "pending"
	VisitStatusDone      = "done"
	VisitStatusCancelled = "cancelled"
)

// Assessment é uma visita agendada de um cliente a um imóvel
type Assessment struct {
	ID           int64  `json:"id"`
	ClientName   string `json:"client_name" validate:"notblank"`
	Phone        string `json:"phone" validate:"notblank"`
	RealEstateID int64  `json:"realestate_id"`
	UnitID       int64  `json:"unit_id,omitempty"`
	VisitDate    string `json:"visit_date" validate:"notblank"`
	VisitTime    string `json:"visit_time" validate:"notblank,clock"`
	Notes        string `json:"notes"`
	Status       string `json:"status,omitempty"`
}

// StatusChange é o corpo das ações de troca de status
type StatusChange struct {
	ID     int64  `json:"id" validate:"required"`
	Status string `json:"status" validate:"notblank"`
}
