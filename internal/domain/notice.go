package domain

import "time"

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeWarning NoticeLevel = "warning"
)

// Notice é a mensagem exibida ao usuário depois de uma ação
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

func Success(message string) Notice {
	return Notice{Level: NoticeSuccess, Message: message}
}

func Failure(message string) Notice {
	return Notice{Level: NoticeError, Message: message}
}

func Warning(message string) Notice {
	return Notice{Level: NoticeWarning, Message: message}
}

// FormResult é a resposta de um formulário de criação/edição
type FormResult[T any] struct {
	Notice Notice `json:"notice"`
	Data   *T     `json:"data,omitempty"`
}

// ActionResult é a resposta de uma ação sobre a lista; Rows traz a lista recarregada
type ActionResult[T any] struct {
	Notice Notice `json:"notice"`
	Rows   []T    `json:"rows"`
}

// AuditEntry registra uma mutação feita pelo painel
type AuditEntry struct {
	ID            string    `json:"id"`
	Action        string    `json:"action"`
	Resource      string    `json:"resource"`
	ResourceID    string    `json:"resource_id"`
	Actor         string    `json:"actor"`
	CorrelationID string    `json:"correlation_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuditFilter struct {
	Resource string
	From     *time.Time
	To       *time.Time
	Limit    uint64
}

// DashboardSummary resume os contadores da página inicial
type DashboardSummary struct {
	ContractedClients   int      `json:"contracted_clients"`
	ExpiredContracts    int      `json:"expired_contracts"`
	PendingMaintenances int      `json:"pending_maintenances"`
	PendingMarketing    int      `json:"pending_marketing_requests"`
	Transactions        int      `json:"transactions"`
	TransactionsTotal   float64  `json:"transactions_total"`
	Notices             []Notice `json:"notices,omitempty"`
}
