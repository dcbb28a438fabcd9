package config

import (
	"fmt"
	"time"
)

// ServerDB holds the backend database settings.
type ServerDB struct {
	DSN    string
	Driver string
}

// ServerHTTP holds the listener settings of the backend.
type ServerHTTP struct {
	Address        string
	RequestTimeout time.Duration
}

// ServerConfig is the configuration view of the development backend.
type ServerConfig struct {
	DB   ServerDB
	HTTP ServerHTTP
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		DB: ServerDB{
			DSN:    cfg.Storage.DB.DSN,
			Driver: cfg.Storage.DB.Driver,
		},
		HTTP: ServerHTTP{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}

	return serverCfg, serverCfg.validate()
}
