package domain

const (
	UserRoleAdmin = "admin"
	UserRoleAgent = "agent"
)

// User é uma conta de acesso do painel ou um agente de campo
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=admin agent employee"`
	Password string `json:"password,omitempty"`
	Active   bool   `json:"active"`
}
