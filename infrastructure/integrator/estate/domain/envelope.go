package estatedomain

import jsoniter "github.com/json-iterator/go"

// Envelope é o formato { "data": ..., "message": ... } usado por parte das rotas do backend.
// Outras rotas devolvem o valor direto, sem envelope.
type Envelope struct {
	Data    jsoniter.RawMessage `json:"data"`
	Message string              `json:"message"`
}
