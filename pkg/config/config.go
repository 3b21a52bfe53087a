package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const DefaultPath = "./configs/.env"

type Config struct {
	APIAddress string        `env:"API_ADDRESS,default=:8080"`
	JWTSecret  string        `env:"JWT_SECRET,required"`
	TokenTTL   time.Duration `env:"JWT_TTL,default=1h"`

	Postgres Postgres
	Redis    Redis

	// Comma separated, "*" allows any origin
	CORSOrigins string `env:"CORS_ORIGINS,default=*"`
	// Requests per second allowed for a single client on /auth routes
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT,default=5"`
	AuthRateBurst int     `env:"AUTH_RATE_BURST,default=10"`
	LogLevel      string  `env:"LOG_LEVEL,default=info"`
}

type Postgres struct {
	Address  string `env:"POSTGRES_DB_ADDRESS,default=localhost:5432"`
	Username string `env:"POSTGRES_USER,required"`
	Password string `env:"POSTGRES_PASSWORD,required"`
	DB       string `env:"POSTGRES_DB,required"`
	SSLMode  string `env:"POSTGRES_SSLMODE,default=disable"`
}

// Redis fan-out is off when Address is empty.
type Redis struct {
	Address  string `env:"REDIS_ADDRESS"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,default=0"`
	Channel  string `env:"REDIS_CHANNEL,default=levelup:events"`
}

// Load reads the .env file at path, if any, and decodes the environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading envs error: %w", err)
	}
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Origins() []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// PostgresURL builds the connection string shared by the server and the migrator.
func (p Postgres) PostgresURL() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", p.Username, p.Password, p.Address, p.DB)
	if p.SSLMode != "" {
		connStr += "?sslmode=" + p.SSLMode
	}
	return connStr
}

func (p Postgres) ConnString() string {
	return p.PostgresURL()
}
