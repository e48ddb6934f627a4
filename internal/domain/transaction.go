package domain

// Transaction é um lançamento financeiro registrado pelo backend
type Transaction struct {
	ID         int64   `json:"id"`
	ContractID int64   `json:"contract_id,omitempty"`
	ClientName string  `json:"client_name,omitempty"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	Method     string  `json:"method,omitempty"`
	Date       string  `json:"date"`
	Reference  string  `json:"reference,omitempty"`
}
