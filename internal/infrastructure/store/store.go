// Package store abre el almacén configurado (PostgreSQL o MongoDB) y expone los repositorios
// que comparten el servidor HTTP y la CLI de administración.
package store

import (
	"context"
	"fmt"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/mongodb"
	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/postgres"
	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
)

// Repositories repositorios de un mismo backend.
type Repositories struct {
	Users          repository.UserRepository
	Teachers       repository.TeacherRepository
	Calificaciones repository.CalificacionRepository
	Enrollments    repository.EnrollmentRepository

	close func(context.Context) error
}

// Close libera el pool o el cliente subyacente.
func (r *Repositories) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	return r.close(ctx)
}

// Options controla el arranque del almacén.
type Options struct {
	// Migrate aplica las migraciones pendientes (PostgreSQL) o asegura los índices (MongoDB).
	Migrate bool
}

// Open conecta según cfg.DB.Driver.
func Open(ctx context.Context, cfg *config.Config, opts Options) (*Repositories, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.DB, opts)
	case config.DriverMongo:
		return openMongo(ctx, cfg.Mongo, opts)
	default:
		return nil, fmt.Errorf("store: driver no soportado %q", cfg.DB.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig, opts Options) (*Repositories, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if opts.Migrate {
		if err := postgres.Migrate(ctx, pool, false); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &Repositories{
		Users:          postgres.NewUserRepository(pool),
		Teachers:       postgres.NewTeacherRepository(pool),
		Calificaciones: postgres.NewCalificacionRepository(pool),
		Enrollments:    postgres.NewEnrollmentRepository(pool),
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}

func openMongo(ctx context.Context, cfg config.MongoConfig, opts Options) (*Repositories, error) {
	client, db, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if opts.Migrate {
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
	}
	return &Repositories{
		Users:          mongodb.NewUserRepository(db),
		Teachers:       mongodb.NewTeacherRepository(db),
		Calificaciones: mongodb.NewCalificacionRepository(db),
		Enrollments:    mongodb.NewEnrollmentRepository(db),
		close:          client.Disconnect,
	}, nil
}
