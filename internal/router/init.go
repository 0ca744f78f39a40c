package router

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/tender-marketplace/internal/application"
	"github.com/oksasatya/tender-marketplace/internal/container"
	repo "github.com/oksasatya/tender-marketplace/internal/domain/repository"
	pginfra "github.com/oksasatya/tender-marketplace/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/tender-marketplace/internal/interface/http"
	"github.com/oksasatya/tender-marketplace/internal/router/modules"
	"github.com/oksasatya/tender-marketplace/pkg/helpers"
)

// Repositories is the storage backend the modules are built on.
type Repositories struct {
	Users        repo.UserRepository
	Tenders      repo.TenderRepository
	Applications repo.ApplicationRepository
}

// Deps is everything InitModules needs to build services and handlers.
type Deps struct {
	Repos          Repositories
	JWT            *helpers.JWTManager
	Storage        application.ObjectStore
	Pinger         modules.Pinger
	Errors         handlers.ErrorResponder
	MaxUploadBytes int64
}

// PostgresRepositories builds the pgx-backed repositories on one pool.
func PostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:        pginfra.NewUserRepository(pool),
		Tenders:      pginfra.NewTenderRepository(pool),
		Applications: pginfra.NewApplicationRepository(pool),
	}
}

// DepsFromContainer wires the production dependencies held by the container.
func DepsFromContainer(c *container.Container) Deps {
	var pinger modules.Pinger
	if c.Pool != nil {
		pinger = c.Pool
	}
	return Deps{
		Repos:          PostgresRepositories(c.Pool),
		JWT:            c.JWT,
		Storage:        helpers.NewGCSStore(c.GCS, c.Config.GCSBucket),
		Pinger:         pinger,
		Errors:         handlers.ErrorResponder{Logger: c.Logger, ExposeErrors: c.ExposeErrors()},
		MaxUploadBytes: c.Config.MaxUploadBytes,
	}
}

// InitModules builds services and handlers and registers every module.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, d Deps) {
	logger := d.Errors.Logger

	users := application.NewUserService(d.Repos.Users, d.JWT, d.Storage, logger)
	tenders := application.NewTenderService(d.Repos.Tenders, d.Repos.Applications, logger)

	r.Add(modules.NewHealthModule(d.Pinger))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(users, d.Errors, d.MaxUploadBytes)))
	r.Add(modules.NewDashboardModule(handlers.NewUserHandler(users, d.Errors), d.JWT))
	r.Add(modules.NewTenderModule(handlers.NewTenderHandler(tenders, d.Errors), d.JWT))
}
