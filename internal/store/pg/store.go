// Package pg implementa el Repository sobre PostgreSQL usando pgxpool.
// Es el driver alternativo a mongo; mismo contrato, ids UUID en vez de
// ObjectID.
package pg

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

type Store struct{ pool *pgxpool.Pool }

// Tuning agrupa los knobs opcionales del pool. Cero valores = defaults.
type Tuning struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

func New(ctx context.Context, dsn string, t Tuning) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	if t.MaxOpenConns > 0 {
		pcfg.MaxConns = int32(t.MaxOpenConns)
	}
	// Mapear MaxIdleConns → MinConns (pgxpool)
	if t.MaxIdleConns > 0 {
		pcfg.MinConns = int32(t.MaxIdleConns)
	}
	if t.ConnMaxLifetime != "" {
		if d, err := time.ParseDuration(t.ConnMaxLifetime); err == nil {
			pcfg.MaxConnLifetime = d
			pcfg.MaxConnIdleTime = d
		}
	}
	if pcfg.MaxConns == 0 {
		pcfg.MaxConns = 5
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	// Arranque no bloqueante: si la DB está caída igual levantamos y
	// /ready reporta el estado real.
	if err := pool.Ping(ctx); err != nil {
		log.Printf(`{"level":"warn","msg":"pg_pool_startup_ping_failed","err":"%v"}`, err)
	} else {
		log.Printf(`{"level":"info","msg":"pg_pool_ready","max_conns":%d}`, pcfg.MaxConns)
	}

	return &Store{pool: pool}, nil
}

// Pool expone el pool interno para usos avanzados (metrics/migraciones).
func (s *Store) Pool() *pgxpool.Pool {
	if s == nil {
		return nil
	}
	return s.pool
}

// PoolStats devuelve un snapshot del estado del pool (puede ser nil).
func (s *Store) PoolStats() *pgxpool.Stat {
	if s == nil || s.pool == nil {
		return nil
	}
	return s.pool.Stat()
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *Store) Close(ctx context.Context) error {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// ====================== INVESTORS ======================

func (s *Store) ListInvestors(ctx context.Context) ([]core.Investor, error) {
	const q = `
SELECT id, name, corretora, valor_investido, perfil, created_at
FROM investors
ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Investor
	for rows.Next() {
		var inv core.Investor
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Corretora, &inv.ValorInvestido, &inv.Perfil, &inv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (s *Store) CreateInvestor(ctx context.Context, inv *core.Investor) error {
	const q = `
INSERT INTO investors (id, name, corretora, valor_investido, perfil, created_at)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
RETURNING id`
	return s.pool.QueryRow(ctx, q,
		inv.Name, inv.Corretora, inv.ValorInvestido, inv.Perfil, inv.CreatedAt).
		Scan(&inv.ID)
}

func (s *Store) DeleteInvestor(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.ErrInvalidID
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM investors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// ====================== TRIPS ======================

func (s *Store) ListTrips(ctx context.Context) ([]core.Trip, error) {
	const q = `
SELECT id, titulo, destino, data_inicio, data_fim, preco, created_at
FROM trips
ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Trip
	for rows.Next() {
		var t core.Trip
		if err := rows.Scan(&t.ID, &t.Titulo, &t.Destino, &t.DataInicio, &t.DataFim, &t.Preco, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) CreateTrip(ctx context.Context, t *core.Trip) error {
	const q = `
INSERT INTO trips (id, titulo, destino, data_inicio, data_fim, preco, created_at)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
RETURNING id`
	return s.pool.QueryRow(ctx, q,
		t.Titulo, t.Destino, t.DataInicio, t.DataFim, t.Preco, t.CreatedAt).
		Scan(&t.ID)
}

func (s *Store) DeleteTrip(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.ErrInvalidID
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// ====================== MIGRACIONES ======================

// RunMigrations ejecuta los *_up.sql del directorio en orden lexicográfico.
func (s *Store) RunMigrations(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(strings.ToLower(e.Name()), "_up.sql") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := s.pool.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec %s: %w", f, err)
		}
	}
	return nil
}
