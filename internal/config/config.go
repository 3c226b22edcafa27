package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// Drivers de origem suportados
const (
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
	SourceSupabase = "supabase"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Source          Source          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	SQLite          SQLite          `mapstructure:",squash"`
	Supabase        Supabase        `mapstructure:",squash"`
	Schema          Schema          `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Source struct {
	Driver string `mapstructure:"source_driver"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type SQLite struct {
	Path string `mapstructure:"sqlite_path"`
}

type Supabase struct {
	URL      string `mapstructure:"supabase_url"`
	Key      string `mapstructure:"supabase_key"`
	PageSize int    `mapstructure:"supabase_page_size"`
	// Coluna única usada como desempate na ordenação das páginas; vazia desativa
	OrderColumn string `mapstructure:"supabase_order_column"`
}

// Schema fixa o contrato de tabelas e colunas lido da origem
type Schema struct {
	SalesTable             string `mapstructure:"sales_table"`
	SalesTimestampColumn   string `mapstructure:"sales_timestamp_column"`
	SalesAmountColumn      string `mapstructure:"sales_amount_column"`
	SalesProductColumn     string `mapstructure:"sales_product_column"`
	ExpensesTable          string `mapstructure:"expenses_table"`
	ExpenseTimestampColumn string `mapstructure:"expenses_timestamp_column"`
	ExpenseAmountColumn    string `mapstructure:"expenses_amount_column"`
	ExpenseCategoryColumn  string `mapstructure:"expenses_category_column"`
	ExpenseQuantityColumn  string `mapstructure:"expenses_quantity_column"`
}

type Dashboard struct {
	Timezone    string         `mapstructure:"dashboard_timezone"`
	CacheTTL    time.Duration  `mapstructure:"dashboard_cache_ttl"`
	ReadTimeout time.Duration  `mapstructure:"dashboard_read_timeout"`
	TopProducts int            `mapstructure:"dashboard_top_products"`
	Location    *time.Location `mapstructure:"-"`
}

type SnapshotRefresh struct {
	CronSchedule string `mapstructure:"snapshot_refresh_cron"`
	Enabled      bool   `mapstructure:"snapshot_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("SOURCE_DRIVER", SourcePostgres)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")

	viper.SetDefault("SQLITE_PATH", "./data/dashboard.db")

	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_KEY", "")
	viper.SetDefault("SUPABASE_PAGE_SIZE", 1000) // Limite padrão de linhas por resposta do PostgREST
	viper.SetDefault("SUPABASE_ORDER_COLUMN", "id")

	viper.SetDefault("SALES_TABLE", "vendas")
	viper.SetDefault("SALES_TIMESTAMP_COLUMN", "created_at")
	viper.SetDefault("SALES_AMOUNT_COLUMN", "valor")
	viper.SetDefault("SALES_PRODUCT_COLUMN", "produto")
	viper.SetDefault("EXPENSES_TABLE", "gastos")
	viper.SetDefault("EXPENSES_TIMESTAMP_COLUMN", "created_at")
	viper.SetDefault("EXPENSES_AMOUNT_COLUMN", "valor")
	viper.SetDefault("EXPENSES_CATEGORY_COLUMN", "")
	viper.SetDefault("EXPENSES_QUANTITY_COLUMN", "")

	viper.SetDefault("DASHBOARD_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("DASHBOARD_CACHE_TTL", "300s")   // 5 minutos entre recálculos
	viper.SetDefault("DASHBOARD_READ_TIMEOUT", "10s") // Tempo máximo de leitura na origem
	viper.SetDefault("DASHBOARD_TOP_PRODUCTS", 5)

	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)      // Aquecimento do cache desabilitado

	viper.SetDefault("LOG_LEVEL", "info")
}

// NewConfig carrega a configuração do .env e do ambiente e valida o resultado.
// Qualquer erro retornado é um *domain.ConfigurationError.
func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, &domain.ConfigurationError{Key: "env", Details: "erro ao decodificar configuração", Err: err}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica credenciais e parâmetros obrigatórios e completa os campos derivados
func (c *Config) Validate() error {
	c.Source.Driver = strings.ToLower(strings.TrimSpace(c.Source.Driver))

	switch c.Source.Driver {
	case SourcePostgres:
		if c.Database.URL == "" {
			return domain.NewConfigurationError("DATABASE_URL", "obrigatório para o driver postgres")
		}
		c.Database.DSN = buildDSN(c.Database)
	case SourceSQLite:
		if c.SQLite.Path == "" {
			return domain.NewConfigurationError("SQLITE_PATH", "obrigatório para o driver sqlite")
		}
	case SourceSupabase:
		if c.Supabase.URL == "" {
			return domain.NewConfigurationError("SUPABASE_URL", "obrigatório para o driver supabase")
		}
		if c.Supabase.Key == "" {
			return domain.NewConfigurationError("SUPABASE_KEY", "obrigatório para o driver supabase")
		}
		if c.Supabase.PageSize <= 0 {
			return domain.NewConfigurationError("SUPABASE_PAGE_SIZE", "deve ser maior que zero")
		}
	default:
		return domain.NewConfigurationError("SOURCE_DRIVER", fmt.Sprintf("driver desconhecido %q", c.Source.Driver))
	}

	required := map[string]string{
		"SALES_TABLE":               c.Schema.SalesTable,
		"SALES_TIMESTAMP_COLUMN":    c.Schema.SalesTimestampColumn,
		"SALES_AMOUNT_COLUMN":       c.Schema.SalesAmountColumn,
		"SALES_PRODUCT_COLUMN":      c.Schema.SalesProductColumn,
		"EXPENSES_TABLE":            c.Schema.ExpensesTable,
		"EXPENSES_TIMESTAMP_COLUMN": c.Schema.ExpenseTimestampColumn,
		"EXPENSES_AMOUNT_COLUMN":    c.Schema.ExpenseAmountColumn,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			return domain.NewConfigurationError(key, "coluna ou tabela obrigatória do esquema")
		}
	}

	loc, err := time.LoadLocation(c.Dashboard.Timezone)
	if err != nil {
		return &domain.ConfigurationError{Key: "DASHBOARD_TIMEZONE", Details: c.Dashboard.Timezone, Err: err}
	}
	c.Dashboard.Location = loc

	if c.Dashboard.CacheTTL <= 0 {
		return domain.NewConfigurationError("DASHBOARD_CACHE_TTL", "deve ser maior que zero")
	}
	if c.Dashboard.ReadTimeout <= 0 {
		return domain.NewConfigurationError("DASHBOARD_READ_TIMEOUT", "deve ser maior que zero")
	}
	if c.Dashboard.TopProducts <= 0 {
		c.Dashboard.TopProducts = 5
	}

	if c.SnapshotRefresh.Enabled && c.SnapshotRefresh.CronSchedule == "" {
		return domain.NewConfigurationError("SNAPSHOT_REFRESH_CRON", "obrigatório com SNAPSHOT_REFRESH_ENABLED")
	}

	return nil
}

// buildDSN aceita tanto uma URL completa (postgres://...) quanto host:porta/banco
func buildDSN(db Database) string {
	if strings.Contains(db.URL, "://") {
		return db.URL
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
