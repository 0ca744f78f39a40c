package container

import (
	"cloud.google.com/go/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/tender-marketplace/config"
	"github.com/oksasatya/tender-marketplace/pkg/helpers"
)

// Container holds the process-wide clients built at startup. It is passed
// explicitly to the router instead of living in package globals.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	GCS    *storage.Client
	JWT    *helpers.JWTManager
}

// Close releases the external clients. Safe to call on a partially built container.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.GCS != nil {
		if err := c.GCS.Close(); err != nil {
			helpers.LogError(c.Logger, "close gcs client", err, nil)
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// ExposeErrors reports whether raw error text may be sent to clients.
func (c *Container) ExposeErrors() bool {
	return c.Config == nil || !c.Config.IsProduction()
}
