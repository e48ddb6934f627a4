package schema

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("Aplica todos os comandos em ordem", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for _, stmt := range Statements {
			mock.ExpectExec(regexp.QuoteMeta(stmt.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		require.NoError(t, Apply(context.Background(), db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Interrompe no primeiro erro", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(Statements[0].SQL)).WillReturnError(errors.New("permissão negada"))

		err = Apply(context.Background(), db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), Statements[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
