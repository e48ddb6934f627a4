package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Estate                Estate                `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	Cors                  Cors                  `mapstructure:",squash"`
	Audit                 Audit                 `mapstructure:",squash"`
	Listing               Listing               `mapstructure:",squash"`
	ExpiredContractsWatch ExpiredContractsWatch `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Estate aponta para a API REST do backend imobiliário
type Estate struct {
	URL          string        `mapstructure:"estate_api_url"`
	Timeout      time.Duration `mapstructure:"estate_api_timeout"`
	ServiceToken string        `mapstructure:"estate_service_token"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Audit struct {
	Enabled bool `mapstructure:"audit_enabled"`
}

type Listing struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
}

type ExpiredContractsWatch struct {
	CronSchedule string `mapstructure:"expired_contracts_watch_cron"`
	Enabled      bool   `mapstructure:"expired_contracts_watch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/estate_admin?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ESTATE_API_URL", "http://localhost:8080/api")
	viper.SetDefault("ESTATE_API_TIMEOUT", "30s")
	viper.SetDefault("ESTATE_SERVICE_TOKEN", "") // Usado apenas pelos agendadores

	viper.SetDefault("AUTH_SECRET", "") // Vazio: o token é apenas inspecionado, o backend valida

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("AUDIT_ENABLED", true)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 10)

	viper.SetDefault("EXPIRED_CONTRACTS_WATCH_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("EXPIRED_CONTRACTS_WATCH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa os campos derivados e valida o mínimo necessário para subir
func (c *Config) normalize() error {
	c.Estate.URL = strings.TrimRight(strings.TrimSpace(c.Estate.URL), "/")
	if c.Estate.URL == "" {
		return fmt.Errorf("config: ESTATE_API_URL é obrigatório")
	}

	if c.Estate.Timeout <= 0 {
		c.Estate.Timeout = 30 * time.Second
	}

	if c.Listing.DefaultPageSize <= 0 {
		c.Listing.DefaultPageSize = 10
	}

	origins := make([]string, 0, len(c.Cors.AllowedOrigins))
	for _, origin := range c.Cors.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Cors.AllowedOrigins = origins

	if strings.TrimSpace(c.Auth.Secret) == "" {
		logrus.Warn("AUTH_SECRET vazio: auditoria e agendador ficam bloqueados para todas as sessões")
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
