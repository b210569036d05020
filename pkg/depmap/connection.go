package depmap

import (
	"fmt"
	"time"
)

// ConnectionConfig describes how to reach the PostgreSQL database holding the
// dependencies and imported_artifacts tables.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	AppName        string
	ConnectTimeout time.Duration

	// Params are passed through to the driver untouched.
	Params map[string]string
}

// Address renders host:port.
func (c *ConnectionConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// String describes the target without credentials, for log output.
func (c *ConnectionConfig) String() string {
	if c.Username == "" {
		return fmt.Sprintf("%s/%s", c.Address(), c.Database)
	}
	return fmt.Sprintf("%s@%s/%s", c.Username, c.Address(), c.Database)
}
