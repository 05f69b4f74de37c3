// Package store selecciona el driver de persistencia según config.
// mongo es el default; postgres queda disponible detrás del mismo
// contrato core.Repository.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/mongo"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/pg"
)

type Config struct {
	Driver   string
	Postgres struct {
		DSN                        string
		MaxOpenConns, MaxIdleConns int
		ConnMaxLifetime            string
	}
	Mongo struct{ URI, Database string }
}

// Open devuelve el core.Repository que corresponde al driver configurado.
func Open(ctx context.Context, cfg Config) (core.Repository, error) {
	d := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch d {
	case "", "mongo", "mongodb":
		return mongo.New(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	case "postgres", "pg", "postgresql":
		return pg.New(ctx, cfg.Postgres.DSN, pg.Tuning{
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		})
	default:
		return nil, fmt.Errorf("unsupported driver: %s", cfg.Driver)
	}
}
