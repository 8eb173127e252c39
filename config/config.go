package config

import "github.com/caarlos0/env/v6"

type Config struct {
	Server struct {
		// Port the HTTP API listens on
		Port int `env:"SERVER_PORT" envDefault:"5250"`

		// Origins allowed by the CORS middleware
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	}

	Database struct {
		// Path to the SQLite database file; empty keeps everything in memory
		Path string `env:"DATABASE_PATH" envDefault:"database/dfontes.db"`
	}

	Admin struct {
		Email string `env:"ADMIN_EMAIL" envDefault:"admin@dfontes.com.br"`
		Name  string `env:"ADMIN_NAME" envDefault:"Administrador"`

		// Bcrypt hash of the staff password; when empty a development
		// credential is generated at startup
		PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
