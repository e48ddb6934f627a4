package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/estate-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/pkg/utils"
)

const (
	auditTable = "audit_entries"

	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

//go:generate mockgen -source=audit.go -destination=mocks/audit.go -package=mocks

type AuditRepository interface {
	Save(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
}

type auditRepository struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewAuditRepository(conn postgres.Queryer) AuditRepository {
	return &auditRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *auditRepository) Save(ctx context.Context, entry *domain.AuditEntry) error {
	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar id da auditoria")
		}
		entry.ID = id
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now().UTC()
	}

	query, args, err := squirrel.
		Insert(auditTable).
		Columns("id", "action", "resource", "resource_id", "actor", "correlation_id", "created_at").
		Values(entry.ID, entry.Action, entry.Resource, entry.ResourceID, entry.Actor, entry.CorrelationID, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao gravar auditoria")
	}

	return nil
}

func (r *auditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	builder := squirrel.
		Select("id", "action", "resource", "resource_id", "actor", "correlation_id", "created_at").
		From(auditTable).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if filter.Resource != "" {
		builder = builder.Where(squirrel.Eq{"resource": filter.Resource})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		// Dia final inclusivo
		builder = builder.Where(squirrel.Lt{"created_at": filter.To.AddDate(0, 0, 1)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar auditoria")
	}
	defer rows.Close()

	entries := make([]domain.AuditEntry, 0)
	for rows.Next() {
		var entry domain.AuditEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.Resource,
			&entry.ResourceID,
			&entry.Actor,
			&entry.CorrelationID,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
