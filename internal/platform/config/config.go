// Pacote config centraliza o carregamento das variáveis de ambiente usadas pelo binário.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// MarcadorPlaceholder aparece nas URLs de exemplo dos arquivos .env de modelo.
const MarcadorPlaceholder = "example"

// Config agrega os parâmetros da API, do store e do rate limit.
type Config struct {
	HTTPAddress string `envconfig:"HTTP_ADDRESS" default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	StoreURL string `envconfig:"INTEGRACOES_STORE_URL"`
	StoreKey string `envconfig:"INTEGRACOES_STORE_KEY"`

	AutoMigrate    bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	DBMaxOpenConns int  `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	RateLimitEnabled bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RateLimitMax     int           `envconfig:"RATE_LIMIT_MAX" default:"20"`
	RateLimitWindow  time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"60s"`
	RateLimitPrefix  string        `envconfig:"RATE_LIMIT_PREFIX" default:"ratelimit:votos"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Load lê .env.local e .env (nessa ordem de precedência, sem sobrescrever o ambiente) e processa as variáveis.
func Load() (Config, error) {
	if err := carregarArquivosEnv(".env.local", ".env"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func carregarArquivosEnv(arquivos ...string) error {
	for _, arquivo := range arquivos {
		if err := godotenv.Load(arquivo); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: ler %s: %w", arquivo, err)
		}
	}
	return nil
}

// Configurado indica se o store pode ser usado; sem ele a aplicação roda em modo degradado.
func (c Config) Configurado() bool {
	if c.StoreURL == "" || c.StoreKey == "" {
		return false
	}
	return !strings.Contains(c.StoreURL, MarcadorPlaceholder)
}

// StoreDSN injeta a chave de acesso como senha na URL do Postgres.
func (c Config) StoreDSN() (string, error) {
	u, err := url.Parse(c.StoreURL)
	if err != nil {
		return "", fmt.Errorf("config: INTEGRACOES_STORE_URL invalida: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("config: INTEGRACOES_STORE_URL com esquema %q nao suportado", u.Scheme)
	}

	usuario := "postgres"
	if u.User != nil && u.User.Username() != "" {
		usuario = u.User.Username()
	}
	u.User = url.UserPassword(usuario, c.StoreKey)

	return u.String(), nil
}

// RateLimitAtivo exige Redis configurado além da flag.
func (c Config) RateLimitAtivo() bool {
	return c.RateLimitEnabled && c.RedisAddr != "" && c.RateLimitMax > 0 && c.RateLimitWindow > 0
}
