package domain

const (
	MarketingStatusPending   = "pending"
	MarketingStatusDone      = "done"
	MarketingStatusCancelled = "cancelled"
)

// MarketingStatuses lista os status aceitos pelo fluxo de pedidos de marketing
var MarketingStatuses = []string{MarketingStatusPending, MarketingStatusDone, MarketingStatusCancelled}

// MarketingRequest é um lead/pedido recebido pelo site
type MarketingRequest struct {
	ID           int64  `json:"id"`
	ClientName   string `json:"client_name" validate:"notblank"`
	Phone        string `json:"phone" validate:"notblank"`
	Email        string `json:"email" validate:"omitempty,email"`
	RealEstateID int64  `json:"realestate_id,omitempty"`
	Message      string `json:"message"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=pending done cancelled"`
	CreatedAt    string `json:"created_at,omitempty"`
}
