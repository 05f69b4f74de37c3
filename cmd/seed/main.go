// Seed de datos de ejemplo: inserta investidores y viagens de muestra
// para levantar el front contra una base recién creada.
//
// Uso:
//
//	go run ./cmd/seed                 # respeta datos existentes
//	SEED_FORCE=true go run ./cmd/seed # inserta aunque haya datos
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dropDatabas3/pf-zambom-back/internal/config"
	"github.com/dropDatabas3/pf-zambom-back/internal/store"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

func boolEnv(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "t", "true", "y", "yes":
		return true
	case "0", "f", "false", "n", "no":
		return false
	default:
		return def
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleInvestors() []core.Investor {
	return []core.Investor{
		{Name: "Ana Souza", Corretora: "XP", ValorInvestido: 15000.50, Perfil: "moderado"},
		{Name: "Bruno Lima", Corretora: "Rico", ValorInvestido: 3200, Perfil: "conservador"},
		{Name: "Carla Mendes", Corretora: "Clear", ValorInvestido: 87000, Perfil: "arrojado"},
	}
}

func sampleTrips() []core.Trip {
	return []core.Trip{
		{Titulo: "Carnaval no Rio", Destino: "Rio de Janeiro", DataInicio: date(2026, 2, 13), DataFim: date(2026, 2, 18), Preco: 4500},
		{Titulo: "Eurotrip", Destino: "Lisboa", DataInicio: date(2026, 7, 1), DataFim: date(2026, 7, 21), Preco: 12800},
		{Titulo: "Fin de semana en Bariloche", Destino: "Bariloche", DataInicio: date(2026, 9, 4), DataFim: date(2026, 9, 7), Preco: 2100},
	}
}

func main() {
	// .env (opcional) - godotenv no pisa claves ya cargadas, así que el
	// primer Load gana: .env.dev tiene prioridad sobre .env.
	_ = godotenv.Load(".env.dev")
	_ = godotenv.Load(".env")

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	repo, err := store.Open(ctx, store.Config{
		Driver: cfg.Storage.Driver,
		Postgres: struct {
			DSN                        string
			MaxOpenConns, MaxIdleConns int
			ConnMaxLifetime            string
		}{
			DSN:             cfg.Storage.Postgres.DSN,
			MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
		},
		Mongo: struct{ URI, Database string }{
			URI:      cfg.Storage.Mongo.URI,
			Database: cfg.Storage.Mongo.Database,
		},
	})
	if err != nil {
		log.Fatalf("store open: %v", err)
	}
	defer func() { _ = repo.Close(context.Background()) }()

	if m, ok := repo.(interface{ EnsureIndexes(context.Context) error }); ok {
		if err := m.EnsureIndexes(ctx); err != nil {
			log.Fatalf("ensure indexes: %v", err)
		}
	}
	if cfg.Flags.Migrate {
		if pgRepo, ok := repo.(interface {
			RunMigrations(context.Context, string) error
		}); ok {
			if err := pgRepo.RunMigrations(ctx, cfg.Storage.Postgres.MigrationsDir); err != nil {
				log.Fatalf("migrations: %v", err)
			}
		}
	}

	force := boolEnv("SEED_FORCE", false)

	existing, err := repo.ListInvestors(ctx)
	if err != nil {
		log.Fatalf("list investors: %v", err)
	}
	if len(existing) > 0 && !force {
		log.Printf("investors: %d existentes, skip (SEED_FORCE=true para forzar)", len(existing))
	} else {
		now := time.Now().UTC()
		for _, inv := range sampleInvestors() {
			inv.CreatedAt = now
			if err := repo.CreateInvestor(ctx, &inv); err != nil {
				log.Fatalf("create investor %q: %v", inv.Name, err)
			}
			log.Printf("investor %q -> %s", inv.Name, inv.ID)
		}
	}

	trips, err := repo.ListTrips(ctx)
	if err != nil {
		log.Fatalf("list trips: %v", err)
	}
	if len(trips) > 0 && !force {
		log.Printf("trips: %d existentes, skip (SEED_FORCE=true para forzar)", len(trips))
	} else {
		now := time.Now().UTC()
		for _, tr := range sampleTrips() {
			tr.CreatedAt = now
			if err := repo.CreateTrip(ctx, &tr); err != nil {
				log.Fatalf("create trip %q: %v", tr.Titulo, err)
			}
			log.Printf("trip %q -> %s", tr.Titulo, tr.ID)
		}
	}

	log.Println("seed listo")
}
