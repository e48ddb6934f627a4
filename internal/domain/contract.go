package domain

import "time"

type ContractType string

const (
	ContractTypeRent ContractType = "rent"
	ContractTypeSale ContractType = "sale"
)

const (
	ContractStatusActive  = "active"
	ContractStatusExpired = "expired"
)

// Contract é o contrato de locação ou compra de um cliente
type Contract struct {
	ID           int64         `json:"id"`
	ClientID     int64         `json:"client_id" validate:"required"`
	ClientName   string        `json:"client_name,omitempty"`
	RealEstateID int64         `json:"realestate_id" validate:"required"`
	UnitID       int64         `json:"unit_id" validate:"required"`
	Type         ContractType  `json:"type" validate:"required,oneof=rent sale"`
	StartDate    string        `json:"start_date" validate:"notblank"`
	EndDate      string        `json:"end_date" validate:"notblank"`
	TotalAmount  float64       `json:"total_amount" validate:"gt=0"`
	Status       string        `json:"status,omitempty"`
	Installments []Installment `json:"installments,omitempty" validate:"-"`
}

// Installment é uma parcela de um contrato
type Installment struct {
	ID         int64   `json:"id"`
	ContractID int64   `json:"contract_id"`
	DueDate    string  `json:"due_date"`
	Amount     float64 `json:"amount"`
	Paid       bool    `json:"paid"`
	PaidAt     string  `json:"paid_at,omitempty"`
}

// InstallmentPayment é o corpo enviado para quitar uma parcela
type InstallmentPayment struct {
	ContractID    int64   `json:"contract_id" validate:"required"`
	InstallmentID int64   `json:"installment_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	Paid          bool    `json:"paid"`
}

// ExpiredContractAlert registra um contrato vencido visto pelo agendador
type ExpiredContractAlert struct {
	ContractID  int64     `json:"contract_id"`
	ClientName  string    `json:"client_name"`
	EndDate     string    `json:"end_date"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}
