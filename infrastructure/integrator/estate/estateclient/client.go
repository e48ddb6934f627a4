package estateclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	estatedomain "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/domain"
	"github.com/vfg2006/estate-admin-api/internal/config"
	"github.com/vfg2006/estate-admin-api/pkg/log"
	"github.com/vfg2006/estate-admin-api/pkg/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMissingToken é devolvido antes de qualquer requisição quando o contexto não tem token
var ErrMissingToken = session.ErrMissingToken

var _ Client = (*EstateClient)(nil)

type Client interface {
	RealEstateClient
	UnitClient
	CustomerClient
	ContractClient
	MaintenanceClient
	AssessmentClient
	ServiceCatalogClient
	SectionClient
	MediaClient
	MarketingClient
	UserClient
	TransactionClient
}

type EstateClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *EstateClient {
	return &EstateClient{
		baseURL: cfg.Estate.URL,
		httpClient: &http.Client{
			Timeout: cfg.Estate.Timeout,
		},
	}
}

// request descreve uma chamada ao backend
type request struct {
	method      string
	path        string
	query       url.Values
	body        any
	rawBody     io.Reader
	contentType string
}

func idQuery(id int64) url.Values {
	return url.Values{"id": []string{strconv.FormatInt(id, 10)}}
}

// do executa a requisição com o token da sessão e decodifica a resposta em out (quando não nil)
func (c *EstateClient) do(ctx context.Context, req request, out any) error {
	token := session.TokenFromContext(ctx)
	if token == "" {
		return ErrMissingToken
	}

	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	contentType := req.contentType
	switch {
	case req.rawBody != nil:
		body = req.rawBody
	case req.body != nil:
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrap(err, "erro ao codificar corpo da requisição")
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if correlationID := log.GetCorrelationID(ctx); correlationID != "" {
		httpReq.Header.Set("X-Request-ID", correlationID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": req.method,
			"path":   req.path,
		}).WithError(err).Error("estate: erro ao executar a requisição")
		return errors.Wrapf(err, "erro ao executar %s %s", req.method, req.path)
	}
	defer resp.Body.Close()

	payload, err := HandleResponse(resp, req.method, req.path)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return decodeData(payload, out)
}

// HandleResponse lê o corpo e converte respostas fora da faixa 2xx em *APIError
func HandleResponse(resp *http.Response, method, path string) ([]byte, error) {
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return payload, nil
	}

	apiErr := &estatedomain.APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       path,
	}

	var errResp estatedomain.ErrorResponse
	if len(payload) > 0 && json.Unmarshal(payload, &errResp) == nil {
		apiErr.Message = errResp.Text()
	}

	logrus.WithFields(logrus.Fields{
		"method":        method,
		"path":          path,
		"estate_status": resp.StatusCode,
	}).Warn("estate: backend respondeu com erro")

	return nil, apiErr
}

// decodeData aceita tanto o valor direto quanto o envelope { "data": ... }
func decodeData(payload []byte, out any) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '{' {
		var envelope estatedomain.Envelope
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			data := bytes.TrimSpace(envelope.Data)
			if len(data) > 0 && !bytes.Equal(data, []byte("null")) {
				trimmed = data
			} else if hasOnlyEnvelopeKeys(trimmed) {
				// Resposta só com mensagem: nada a decodificar
				return nil
			}
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar resposta do backend")
	}

	return nil
}

func hasOnlyEnvelopeKeys(payload []byte) bool {
	var keys map[string]jsoniter.RawMessage
	if err := json.Unmarshal(payload, &keys); err != nil {
		return false
	}
	for key := range keys {
		switch strings.ToLower(key) {
		case "data", "message", "status", "success":
		default:
			return false
		}
	}
	return true
}

// list busca uma coleção completa; o backend não pagina
func list[T any](ctx context.Context, c *EstateClient, path string, query url.Values) ([]T, error) {
	rows := make([]T, 0)
	if err := c.do(ctx, request{method: http.MethodGet, path: path, query: query}, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = make([]T, 0)
	}
	return rows, nil
}

// save envia o registro e devolve o que o backend retornar, ou o próprio registro quando
// a resposta não trouxer dados
func save[T any](ctx context.Context, c *EstateClient, method, path string, record *T) (*T, error) {
	saved := new(T)
	*saved = *record
	if err := c.do(ctx, request{method: method, path: path, body: record}, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func remove(ctx context.Context, c *EstateClient, path string, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path, query: idQuery(id)}, nil)
}
