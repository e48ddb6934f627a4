package usecases

import (
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
)

// FetchFailed devolve a página vazia com o aviso de erro; a mesma página segue
// nos detalhes do erro para o handler responder com ela.
func FetchFailed[T any](q listing.Query, emptyMessage string, actionErr *ActionError) (listing.Page[T], error) {
	page := listing.Empty[T](q, emptyMessage, actionErr.Notice)
	actionErr.Details = page
	return page, actionErr
}
