package estateclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	estatedomain "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/domain"
	"github.com/vfg2006/estate-admin-api/internal/config"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/pkg/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *EstateClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{
		Estate: config.Estate{URL: server.URL, Timeout: 5 * time.Second},
	})
}

func authedContext() context.Context {
	return session.WithToken(context.Background(), "token-123")
}

func TestEstateClient_ListRealEstates(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantLen  int
		wantName string
	}{
		{
			name:     "Coleção sem envelope",
			body:     `[{"id":1,"name":"Residencial Sol"},{"id":2,"name":"Torre Norte"}]`,
			wantLen:  2,
			wantName: "Residencial Sol",
		},
		{
			name:     "Coleção dentro de envelope",
			body:     `{"data":[{"id":7,"name":"Edifício Mar"}],"message":"ok"}`,
			wantLen:  1,
			wantName: "Edifício Mar",
		},
		{
			name:    "Coleção vazia",
			body:    `[]`,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/realestates", r.URL.Path)
				assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
				w.Write([]byte(tt.body))
			})

			rows, err := client.ListRealEstates(authedContext())

			require.NoError(t, err)
			require.NotNil(t, rows)
			assert.Len(t, rows, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantName, rows[0].Name)
			}
		})
	}
}

func TestEstateClient_MissingToken(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.ListContracts(context.Background())

	assert.ErrorIs(t, err, ErrMissingToken)
	assert.False(t, called, "nenhuma requisição deve sair sem token")
}

func TestEstateClient_BackendError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "Mensagem do backend em message",
			status:      http.StatusUnprocessableEntity,
			body:        `{"message":"Unidade já vendida"}`,
			wantMessage: "Unidade já vendida",
		},
		{
			name:        "Mensagem do backend em error",
			status:      http.StatusConflict,
			body:        `{"error":"Contrato duplicado"}`,
			wantMessage: "Contrato duplicado",
		},
		{
			name:   "Corpo que não é JSON é descartado",
			status: http.StatusInternalServerError,
			body:   `<html>panic</html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := client.DeleteContract(authedContext(), 3)

			apiErr, ok := estatedomain.AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, "/remove/contract", apiErr.Path)
		})
	}
}

func TestEstateClient_DeleteSendsIDInQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/delete/realestate", r.URL.Path)
		assert.Equal(t, "15", r.URL.Query().Get("id"))
		w.Write([]byte(`{"message":"Imóvel removido"}`))
	})

	require.NoError(t, client.DeleteRealEstate(authedContext(), 15))
}

func TestEstateClient_CreateClientKeepsRecordWhenResponseHasOnlyMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var sent domain.Client
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, "Maria", sent.Name)

		w.Write([]byte(`{"message":"Cliente criado"}`))
	})

	saved, err := client.CreateClient(authedContext(), &domain.Client{Name: "Maria", Phone: "11999999999"})

	require.NoError(t, err)
	assert.Equal(t, "Maria", saved.Name)
	assert.Equal(t, "11999999999", saved.Phone)
}

func TestEstateClient_UpdateUnitMergesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.Write([]byte(`{"data":{"id":9,"realestate_id":2,"number":"101","status":"rented"}}`))
	})

	saved, err := client.UpdateUnit(authedContext(), &domain.Unit{ID: 9, RealEstateID: 2, Number: "101", Area: 70})

	require.NoError(t, err)
	assert.Equal(t, domain.UnitStatusRented, saved.Status)
	assert.Equal(t, 70.0, saved.Area)
}

func TestEstateClient_ListUsersByRole(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "agent", r.URL.Query().Get("role"))
		w.Write([]byte(`[{"id":4,"name":"Carlos","role":"agent"}]`))
	})

	users, err := client.ListUsers(authedContext(), domain.UserRoleAgent)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Carlos", users[0].Name)
}

func TestEstateClient_PayInstallment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pay/contract/installment", r.URL.Path)

		var payment domain.InstallmentPayment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payment))
		assert.Equal(t, int64(3), payment.ContractID)
		assert.Equal(t, int64(8), payment.InstallmentID)
		assert.True(t, payment.Paid)

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.PayInstallment(authedContext(), &domain.InstallmentPayment{
		ContractID:    3,
		InstallmentID: 8,
		Amount:        1500,
		Paid:          true,
	})

	require.NoError(t, err)
}

func TestEstateClient_UploadMedia(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Fachada", r.FormValue("title"))
		assert.Equal(t, "2", r.FormValue("section_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "fachada.jpg", header.Filename)
		assert.Equal(t, "conteudo", string(content))

		w.Write([]byte(`{"id":31,"url":"https://cdn.imob/fachada.jpg"}`))
	})

	media, err := client.UploadMedia(authedContext(), &domain.MediaUpload{
		SectionID: 2,
		Title:     "Fachada",
		Type:      "image",
		FileName:  "fachada.jpg",
		File:      strings.NewReader("conteudo"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(31), media.ID)
	assert.Equal(t, "https://cdn.imob/fachada.jpg", media.URL)
	assert.Equal(t, "Fachada", media.Title)
}

func TestEstateClient_TransportError(t *testing.T) {
	client := NewClient(&config.Config{
		Estate: config.Estate{URL: "http://127.0.0.1:1", Timeout: time.Second},
	})

	_, err := client.ListTransactions(authedContext())

	require.Error(t, err)
	_, isAPIErr := estatedomain.AsAPIError(err)
	assert.False(t, isAPIErr)
	assert.False(t, errors.Is(err, ErrMissingToken))
}
