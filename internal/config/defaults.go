package config

import "time"

// Default values used when no other source sets a field.
const (
	DefaultServerAddress     = "localhost:3001"
	DefaultServerTimeout     = 30 * time.Second
	DefaultDBDriver          = "sqlite3"
	DefaultDBDSN             = "registry.db"
	DefaultAdapterAddress    = "http://localhost:3001"
	DefaultAdapterTimeout    = 10 * time.Second
	DefaultSessionDSN        = "sqlite://session.db"
	DefaultActivityQueueSize = 64
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:    DefaultDBDSN,
				Driver: DefaultDBDriver,
			},
			Session: Session{DSN: DefaultSessionDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{ActivityQueueSize: DefaultActivityQueueSize},
	}
}
