package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/estate-admin-api/internal/domain"
)

func TestAuditRepository_Save(t *testing.T) {
	fixedNow := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "Grava a entrada com id e data gerados",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO audit_entries").
					WithArgs(sqlmock.AnyArg(), "delete", "contract", "42", "ana@imob.com", "req-1", fixedNow).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Erro do banco é propagado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO audit_entries").WillReturnError(errors.New("conexão perdida"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			repo := &auditRepository{conn: db, now: func() time.Time { return fixedNow }}
			entry := &domain.AuditEntry{
				Action:        "delete",
				Resource:      "contract",
				ResourceID:    "42",
				Actor:         "ana@imob.com",
				CorrelationID: "req-1",
			}

			err = repo.Save(context.Background(), entry)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, entry.ID)
				assert.Equal(t, fixedNow, entry.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAuditRepository_List(t *testing.T) {
	createdAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	columns := []string{"id", "action", "resource", "resource_id", "actor", "correlation_id", "created_at"}

	t.Run("Filtra por recurso e aplica o limite", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM audit_entries WHERE resource = \$1 ORDER BY created_at DESC LIMIT 5`).
			WithArgs("contract").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("abc", "pay", "contract", "7", "ana@imob.com", "req-9", createdAt))

		repo := NewAuditRepository(db)
		entries, err := repo.List(context.Background(), domain.AuditFilter{Resource: "contract", Limit: 5})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "pay", entries[0].Action)
		assert.Equal(t, "7", entries[0].ResourceID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Intervalo de datas com dia final inclusivo", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT (.+) FROM audit_entries WHERE created_at >= \$1 AND created_at < \$2 ORDER BY created_at DESC LIMIT 50`).
			WithArgs(from, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)).
			WillReturnRows(sqlmock.NewRows(columns))

		repo := NewAuditRepository(db)
		_, err = repo.List(context.Background(), domain.AuditFilter{From: &from, To: &to})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Limite acima do máximo é reduzido", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM audit_entries ORDER BY created_at DESC LIMIT 500`).
			WillReturnRows(sqlmock.NewRows(columns))

		repo := NewAuditRepository(db)
		entries, err := repo.List(context.Background(), domain.AuditFilter{Limit: 10000})

		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NotNil(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
