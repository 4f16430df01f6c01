package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rsvp-service/internal/domain/rsvp"
	"rsvp-service/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultMaxConnections = 5

type Config struct {
	DB     DBConfig     `yaml:"db"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"-"`
}

type DBConfig struct {
	Host           string `yaml:"host" envconfig:"RSVP_DB_HOST"`
	Port           uint16 `yaml:"port" envconfig:"RSVP_DB_PORT"`
	Username       string `yaml:"username" envconfig:"RSVP_DB_USERNAME"`
	Password       string `yaml:"password" envconfig:"RSVP_DB_PASSWORD"`
	DBName         string `yaml:"dbname" envconfig:"RSVP_DB_NAME"`
	MaxConnections int32  `yaml:"max_connections" envconfig:"RSVP_DB_MAX_CONNECTIONS"`
}

type ServerConfig struct {
	Host string `yaml:"host" envconfig:"RSVP_SERVER_HOST"`
	Port uint16 `yaml:"port" envconfig:"RSVP_SERVER_PORT"`
}

type LogConfig struct {
	Level string `yaml:"level" envconfig:"RSVP_LOG_LEVEL"`
}

// CORSConfig is environment-only; the YAML file carries the db/server/log
// sections and CORS rarely differs between deployments of the same edge.
type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"RSVP_CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"RSVP_CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"RSVP_CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"RSVP_CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"RSVP_CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"RSVP_CORS_MAX_AGE" default:"12h"`
}

// URL builds the pool connection string. An empty password is omitted so the
// URL stays valid for trust-authenticated local setups.
func (c DBConfig) URL() string {
	if c.Password == "" {
		return fmt.Sprintf("postgres://%s@%s:%d/%s", c.Username, c.Host, c.Port, c.DBName)
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", c.Username, c.Password, c.Host, c.Port, c.DBName)
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads a YAML config file and applies RSVP_* environment overrides on
// top of it. Values absent from both fall back to defaults.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errs.Mark(err, rsvp.ErrConfigRead)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errs.Mark(err, rsvp.ErrConfigParse)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errs.Mark(err, rsvp.ErrConfigParse)
	}

	if cfg.DB.MaxConnections <= 0 {
		cfg.DB.MaxConnections = defaultMaxConnections
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Resolve picks the config file: $RESERVATION_CONFIG wins, then the first of
// ./reservation.yml, ~/.config/reservation.yml, /etc/reservation.yml that
// exists.
func Resolve() (string, error) {
	if path := os.Getenv("RESERVATION_CONFIG"); path != "" {
		return path, nil
	}

	candidates := []string{"./reservation.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "reservation.yml"))
	}
	candidates = append(candidates, "/etc/reservation.yml")

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errs.Mark(errs.New("no config file found"), rsvp.ErrConfigRead)
}

// LoadDefault resolves the config path and loads it.
func LoadDefault() (Config, error) {
	path, err := Resolve()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}
