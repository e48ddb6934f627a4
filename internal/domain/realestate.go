// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// RealEstate é um empreendimento do portfólio
type RealEstate struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"notblank"`
	Type        string  `json:"type" validate:"notblank"`
	City        string  `json:"city" validate:"notblank"`
	District    string  `json:"district"`
	Address     string  `json:"address" validate:"notblank"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	UnitsCount  int     `json:"units_count,omitempty"`
	Units       []Unit  `json:"units,omitempty" validate:"-"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "available"
	UnitStatusRented    UnitStatus = "rented"
	UnitStatusSold      UnitStatus = "sold"
)

// Unit é uma unidade (apartamento, loja, sala) de um empreendimento
type Unit struct {
	ID           int64      `json:"id"`
	RealEstateID int64      `json:"realestate_id" validate:"required"`
	Number       string     `json:"number" validate:"notblank"`
	Floor        int        `json:"floor"`
	Rooms        int        `json:"rooms" validate:"gte=0"`
	Area         float64    `json:"area" validate:"gt=0"`
	Price        float64    `json:"price" validate:"gte=0"`
	Status       UnitStatus `json:"status" validate:"omitempty,oneof=available rented sold"`
}
