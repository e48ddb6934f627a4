// Package schema cria as tabelas locais do painel: a trilha de auditoria e os
// alertas de contratos vencidos. As entidades do negócio ficam no backend.
package schema

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-admin-api/infrastructure/database/postgres"
)

type Statement struct {
	Name string
	SQL  string
}

var Statements = []Statement{
	{
		Name: "audit_entries",
		SQL: `CREATE TABLE IF NOT EXISTS audit_entries (
	id             VARCHAR(32) PRIMARY KEY,
	action         VARCHAR(64) NOT NULL,
	resource       VARCHAR(64) NOT NULL,
	resource_id    VARCHAR(64) NOT NULL DEFAULT '',
	actor          VARCHAR(255) NOT NULL DEFAULT '',
	correlation_id VARCHAR(64) NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		Name: "audit_entries_resource_idx",
		SQL:  `CREATE INDEX IF NOT EXISTS audit_entries_resource_idx ON audit_entries (resource, created_at DESC)`,
	},
	{
		Name: "expired_contract_alerts",
		SQL: `CREATE TABLE IF NOT EXISTS expired_contract_alerts (
	contract_id   BIGINT PRIMARY KEY,
	client_name   VARCHAR(255) NOT NULL DEFAULT '',
	end_date      VARCHAR(32) NOT NULL DEFAULT '',
	first_seen_at TIMESTAMPTZ NOT NULL,
	last_seen_at  TIMESTAMPTZ NOT NULL
)`,
	},
}

// Apply executa os comandos em ordem; todos são idempotentes
func Apply(ctx context.Context, conn postgres.Queryer) error {
	logrus.Info("Iniciando migração do schema...")
	startTime := time.Now()

	for _, stmt := range Statements {
		if _, err := conn.ExecContext(ctx, stmt.SQL); err != nil {
			return errors.Wrapf(err, "erro ao aplicar %s", stmt.Name)
		}
		logrus.WithField("statement", stmt.Name).Debug("Comando aplicado")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
	return nil
}
