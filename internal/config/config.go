package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	URL         string `yaml:"url"`
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name" validate:"required_without=URL"`
	SSLMode     string `yaml:"sslmode"`
	MaxConns    int32  `yaml:"max_conns" validate:"min=1"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

type AppConfig struct {
	Port     string         `yaml:"port" validate:"required"`
	Env      string         `yaml:"env"`
	Database DatabaseConfig `yaml:"database"`
}

func defaults() AppConfig {
	return AppConfig{
		Port: "8080",
		Env:  "development",
		Database: DatabaseConfig{
			Host:        "127.0.0.1",
			Port:        "5432",
			User:        "postgres",
			Name:        "HRDaddy",
			SSLMode:     "disable",
			MaxConns:    10,
			AutoMigrate: true,
		},
	}
}

// Load reads .env (if present), then an optional YAML file named by CONFIG_FILE,
// then environment variables. Later sources win.
func Load() (AppConfig, error) {
	_ = godotenv.Load() // load .env if present

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return AppConfig{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c *AppConfig) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.Env, "APP_ENV")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")

	if v := os.Getenv("DB_MAX_CONNS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid DB_MAX_CONNS %q: %w", v, err)
		}
		c.Database.MaxConns = int32(n)
	}
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DB_AUTO_MIGRATE %q: %w", v, err)
		}
		c.Database.AutoMigrate = b
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

var validate = validator.New()

func (c AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL built from the
// discrete connection fields.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else {
		u.User = url.User(d.User)
	}
	return u.String()
}
