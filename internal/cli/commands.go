// Package cli reúne os comandos do estatectl, a ferramenta de operação do painel.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/estate-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/estateclient"
	"github.com/vfg2006/estate-admin-api/infrastructure/migration/schema"
	"github.com/vfg2006/estate-admin-api/infrastructure/repository"
	"github.com/vfg2006/estate-admin-api/internal/config"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/scheduler"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/pkg/log"
	"github.com/vfg2006/estate-admin-api/pkg/session"
	"github.com/vfg2006/estate-admin-api/pkg/utils"
)

// Env são as dependências dos comandos; os testes trocam cada uma delas
type Env struct {
	LoadConfig func() (*config.Config, error)
	Connect    func(ctx context.Context, cfg *config.Config) (postgres.Conn, error)
	Client     func(cfg *config.Config) estateclient.Client
}

// DefaultEnv usa a configuração do ambiente, o PostgreSQL e o backend reais
func DefaultEnv() Env {
	return Env{
		LoadConfig: config.NewConfig,
		Connect: func(ctx context.Context, cfg *config.Config) (postgres.Conn, error) {
			return postgres.NewConnection(ctx, cfg.Database)
		},
		Client: func(cfg *config.Config) estateclient.Client {
			return estateclient.NewClient(cfg)
		},
	}
}

func NewRootCmd(env Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "estatectl",
		Short:         "Ferramenta de operação do painel imobiliário",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("token", "", "token do backend (padrão: ESTATE_SERVICE_TOKEN)")

	rootCmd.AddCommand(
		MigrateCmd(env),
		ExpiredCmd(env),
		PayCmd(env),
		WatchCmd(env),
		ClockCmd(),
	)

	return rootCmd
}

// sessionContext devolve o contexto com o token da flag ou o de serviço
func sessionContext(cmd *cobra.Command, cfg *config.Config) (context.Context, error) {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = cfg.Estate.ServiceToken
	}
	if token == "" {
		return nil, errors.New("informe --token ou configure ESTATE_SERVICE_TOKEN")
	}

	ctx, _ := log.WithCorrelationID(cmd.Context(), "")
	return session.WithToken(ctx, token), nil
}

func MigrateCmd(env Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Cria as tabelas de auditoria e de alertas de contratos vencidos",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			if dryRun {
				for _, stmt := range schema.Statements {
					fmt.Fprintf(out, "-- %s\n%s;\n\n", stmt.Name, stmt.SQL)
				}
				return nil
			}

			cfg, err := env.LoadConfig()
			if err != nil {
				return err
			}

			conn, err := env.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := schema.Apply(cmd.Context(), conn); err != nil {
				return err
			}

			fmt.Fprintf(out, "%d instrução(ões) aplicada(s)\n", len(schema.Statements))
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "apenas imprime o SQL")
	return cmd
}

func ExpiredCmd(env Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expired",
		Short: "Lista os contratos vencidos no backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.LoadConfig()
			if err != nil {
				return err
			}

			ctx, err := sessionContext(cmd, cfg)
			if err != nil {
				return err
			}

			contracts, err := env.Client(cfg).ListExpiredContracts(ctx)
			if err != nil {
				return errors.Wrap(err, "erro ao buscar contratos vencidos")
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(contracts))
				return nil
			}

			return printContracts(cmd.OutOrStdout(), contracts)
		},
	}

	cmd.Flags().Bool("json", false, "imprime a resposta em JSON")
	return cmd
}

func printContracts(out io.Writer, contracts []domain.Contract) error {
	if len(contracts) == 0 {
		fmt.Fprintln(out, "Nenhum contrato vencido")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLIENTE\tTIPO\tFIM\tVALOR")
	for _, c := range contracts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\n", c.ID, c.ClientName, c.Type, c.EndDate, c.TotalAmount)
	}
	return tw.Flush()
}

func PayCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <contract-id> <installment-id> <amount>",
		Short: "Quita uma parcela de contrato",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			contractID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Errorf("contract-id inválido: %s", args[0])
			}
			installmentID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return errors.Errorf("installment-id inválido: %s", args[1])
			}
			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return errors.Errorf("valor inválido: %s", args[2])
			}

			payment := &domain.InstallmentPayment{
				ContractID:    contractID,
				InstallmentID: installmentID,
				Amount:        amount,
				Paid:          true,
			}
			if err := usecases.Validate(payment); err != nil {
				return err
			}

			cfg, err := env.LoadConfig()
			if err != nil {
				return err
			}

			ctx, err := sessionContext(cmd, cfg)
			if err != nil {
				return err
			}

			if err := env.Client(cfg).PayInstallment(ctx, payment); err != nil {
				return usecases.BackendFailure(err, "Erro ao pagar parcela")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Parcela %d do contrato %d paga\n", installmentID, contractID)
			return nil
		},
	}
}

func WatchCmd(env Env) *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Varredura de contratos vencidos",
	}

	watchCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Executa uma varredura e grava os alertas",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.LoadConfig()
			if err != nil {
				return err
			}

			ctx, err := sessionContext(cmd, cfg)
			if err != nil {
				return err
			}

			conn, err := env.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			watch := scheduler.NewExpiredContractsWatchService(
				env.Client(cfg),
				repository.NewExpiredContractAlertRepository(conn),
				cfg,
			)

			result, err := watch.RunOnce(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d contrato(s) vencido(s), %d novo(s)\n", result.Expired, result.NewSeen)
			return nil
		},
	})

	return watchCmd
}

func ClockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clock <HH:MM>",
		Short: "Normaliza um horário para HH:MM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := utils.NormalizeClock(args[0])
			if err != nil {
				return errors.Wrapf(err, "horário inválido: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
