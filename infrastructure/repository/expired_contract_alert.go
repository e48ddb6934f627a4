package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/estate-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/estate-admin-api/internal/domain"
)

const expiredContractAlertsTable = "expired_contract_alerts"

//go:generate mockgen -source=expired_contract_alert.go -destination=mocks/expired_contract_alert.go -package=mocks

type ExpiredContractAlertRepository interface {
	// Upsert grava os contratos vencidos e devolve quantos apareceram pela primeira vez
	Upsert(ctx context.Context, contracts []domain.Contract) (int, error)
	List(ctx context.Context) ([]domain.ExpiredContractAlert, error)
}

type expiredContractAlertRepository struct {
	conn postgres.Conn
	now  func() time.Time
}

func NewExpiredContractAlertRepository(conn postgres.Conn) ExpiredContractAlertRepository {
	return &expiredContractAlertRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *expiredContractAlertRepository) Upsert(ctx context.Context, contracts []domain.Contract) (int, error) {
	if len(contracts) == 0 {
		return 0, nil
	}

	seenAt := r.now().UTC()
	inserted := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, contract := range contracts {
			query, args, err := squirrel.
				Insert(expiredContractAlertsTable).
				Columns("contract_id", "client_name", "end_date", "first_seen_at", "last_seen_at").
				Values(contract.ID, contract.ClientName, contract.EndDate, seenAt, seenAt).
				Suffix("ON CONFLICT (contract_id) DO UPDATE SET client_name = EXCLUDED.client_name, end_date = EXCLUDED.end_date, last_seen_at = EXCLUDED.last_seen_at RETURNING (xmax = 0) AS inserted").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			var isNew bool
			if err := tx.QueryRowContext(ctx, query, args...).Scan(&isNew); err != nil {
				return errors.Wrapf(err, "erro ao gravar alerta do contrato %d", contract.ID)
			}
			if isNew {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *expiredContractAlertRepository) List(ctx context.Context) ([]domain.ExpiredContractAlert, error) {
	query, args, err := squirrel.
		Select("contract_id", "client_name", "end_date", "first_seen_at", "last_seen_at").
		From(expiredContractAlertsTable).
		OrderBy("first_seen_at DESC", "contract_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar alertas de contratos vencidos")
	}
	defer rows.Close()

	alerts := make([]domain.ExpiredContractAlert, 0)
	for rows.Next() {
		var alert domain.ExpiredContractAlert
		if err := rows.Scan(
			&alert.ContractID,
			&alert.ClientName,
			&alert.EndDate,
			&alert.FirstSeenAt,
			&alert.LastSeenAt,
		); err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return alerts, nil
}
