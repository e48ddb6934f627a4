package domain

// Client é o cliente (inquilino ou comprador) cadastrado no backend
type Client struct {
	ID             int64  `json:"id"`
	Name           string `json:"name" validate:"notblank"`
	Phone          string `json:"phone" validate:"notblank"`
	Email          string `json:"email" validate:"omitempty,email"`
	NationalID     string `json:"national_id"`
	Address        string `json:"address"`
	ContractsCount int    `json:"contracts_count,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}
