package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	rdb "github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/pf-zambom-back/internal/auth"
	"github.com/dropDatabas3/pf-zambom-back/internal/cache"
	"github.com/dropDatabas3/pf-zambom-back/internal/config"
	httpx "github.com/dropDatabas3/pf-zambom-back/internal/http"
	healthctrl "github.com/dropDatabas3/pf-zambom-back/internal/http/controllers/health"
	investorsctrl "github.com/dropDatabas3/pf-zambom-back/internal/http/controllers/investors"
	tripsctrl "github.com/dropDatabas3/pf-zambom-back/internal/http/controllers/trips"
	mw "github.com/dropDatabas3/pf-zambom-back/internal/http/middlewares"
	"github.com/dropDatabas3/pf-zambom-back/internal/http/router"
	healthsvc "github.com/dropDatabas3/pf-zambom-back/internal/http/services/health"
	investorssvc "github.com/dropDatabas3/pf-zambom-back/internal/http/services/investors"
	tripssvc "github.com/dropDatabas3/pf-zambom-back/internal/http/services/trips"
	"github.com/dropDatabas3/pf-zambom-back/internal/observability/logger"
	"github.com/dropDatabas3/pf-zambom-back/internal/rate"
	"github.com/dropDatabas3/pf-zambom-back/internal/store"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/pg"
)

// Adapter para que rate.Limiter cumpla con middlewares.RateLimiter.
type limiterAdapter struct{ inner rate.Limiter }

func (a limiterAdapter) Allow(ctx context.Context, key string) (mw.RateLimitResult, error) {
	res, err := a.inner.Allow(ctx, key)
	if err != nil {
		return mw.RateLimitResult{}, err
	}
	return mw.RateLimitResult{
		Allowed:     res.Allowed,
		Remaining:   res.Remaining,
		RetryAfter:  res.RetryAfter,
		WindowTTL:   res.WindowTTL,
		CurrentHits: res.CurrentHits,
	}, nil
}

func fileExists(p string) bool {
	if p == "" {
		return false
	}
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

func printConfigSummary(c *config.Config) {
	log.Printf(`CONFIG:
  app.env=%s
  server.addr=%s
  cors=%v

  auth0.domain=%s
  auth0.audience=%s
  jwks(cache_ttl=%s, timeout=%s)

  storage.driver=%s
  mongo(uri=%s, database=%s)
  postgres(max_open=%d, max_idle=%d, lifetime=%s, migrations=%s)

  cache.kind=%s
  redis.addr=%s db=%d prefix=%s

  rate(enabled=%t, window=%s, max=%d)
`,
		c.App.Env,
		c.Server.Addr, c.Server.CORSAllowedOrigins,
		c.Auth0.Domain, c.Auth0.Audience, c.Auth0.JWKSCacheTTL, c.Auth0.JWKSTimeout,
		c.Storage.Driver,
		c.Storage.Mongo.URI, c.Storage.Mongo.Database,
		c.Storage.Postgres.MaxOpenConns, c.Storage.Postgres.MaxIdleConns,
		c.Storage.Postgres.ConnMaxLifetime, c.Storage.Postgres.MigrationsDir,
		c.Cache.Kind, c.Cache.Redis.Addr, c.Cache.Redis.DB, c.Cache.Redis.Prefix,
		c.Rate.Enabled, c.Rate.Window, c.Rate.MaxRequests,
	)
}

func main() {
	var (
		flagConfigPath = flag.String("config", "", "ruta a config.yaml (fallback: $CONFIG_PATH o configs/config.yaml)")
		flagEnvOnly    = flag.Bool("env", false, "usar SOLO env (y .env si se pasa -env-file)")
		flagEnvFile    = flag.String("env-file", ".env", "ruta a .env (si existe, se carga)")
		flagPrint      = flag.Bool("print-config", false, "imprime config efectiva y termina")
	)
	flag.Parse()

	if *flagEnvFile != "" && (fileExists(*flagEnvFile) || *flagEnvOnly) {
		if err := godotenv.Load(*flagEnvFile); err == nil {
			log.Printf("dotenv: cargado %s", *flagEnvFile)
		}
	}

	cfgPath := *flagConfigPath
	if *flagEnvOnly {
		cfgPath = "" // solo env: se ignora el YAML aunque exista
	} else {
		if cfgPath == "" {
			cfgPath = os.Getenv("CONFIG_PATH")
		}
		if cfgPath == "" && fileExists("configs/config.yaml") {
			cfgPath = "configs/config.yaml"
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *flagPrint {
		printConfigSummary(cfg)
		return
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       os.Getenv("LOG_LEVEL"),
		ServiceName: healthsvc.ServiceName,
	})
	defer func() { _ = logger.Sync() }()

	if cfg.Auth0.Domain == "" || cfg.Auth0.Audience == "" {
		logger.L().Fatal("AUTH0_DOMAIN y API_AUDIENCE son obligatorios")
	}

	ctx := context.Background()

	// ───── Storage ─────
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
		logger.L().Fatal("store open", logger.Err(err))
	}
	defer func() { _ = repo.Close(context.Background()) }()

	// Índices (mongo) o migraciones (postgres), según el driver.
	if m, ok := repo.(interface{ EnsureIndexes(context.Context) error }); ok {
		if err := m.EnsureIndexes(ctx); err != nil {
			logger.L().Fatal("ensure indexes", logger.Err(err))
		}
	}
	if cfg.Flags.Migrate {
		if pgRepo, ok := repo.(interface {
			RunMigrations(context.Context, string) error
		}); ok {
			if err := pgRepo.RunMigrations(ctx, cfg.Storage.Postgres.MigrationsDir); err != nil {
				logger.L().Fatal("migrations", logger.Err(err))
			}
		}
	}

	// ───── Cache (JWKS) ─────
	cc, err := cache.Open(cache.Config{
		Kind: cfg.Cache.Kind,
		Redis: struct {
			Addr   string
			DB     int
			Prefix string
		}{
			Addr:   cfg.Cache.Redis.Addr,
			DB:     cfg.Cache.Redis.DB,
			Prefix: cfg.Cache.Redis.Prefix,
		},
		Memory: struct{ DefaultTTL string }{
			DefaultTTL: cfg.Cache.Memory.DefaultTTL,
		},
	})
	if err != nil {
		logger.L().Fatal("cache", logger.Err(err))
	}

	// ───── Rate limiting ─────
	var limiter mw.RateLimiter
	var redisPing func(context.Context) error
	if strings.EqualFold(cfg.Cache.Kind, "redis") {
		rc := rdb.NewClient(&rdb.Options{
			Addr: cfg.Cache.Redis.Addr,
			DB:   cfg.Cache.Redis.DB,
		})
		redisPing = func(ctx context.Context) error { return rc.Ping(ctx).Err() }
		if cfg.Rate.Enabled {
			if win, err := time.ParseDuration(cfg.Rate.Window); err == nil {
				rlPrefix := "rl:"
				if p := cfg.Cache.Redis.Prefix; p != "" {
					rlPrefix = p + ":rl:"
				}
				rl := rate.NewRedisLimiter(rc, rlPrefix, cfg.Rate.MaxRequests, win)
				limiter = limiterAdapter{inner: rl}
			}
		}
	} else if cfg.Rate.Enabled {
		if win, err := time.ParseDuration(cfg.Rate.Window); err == nil {
			limiter = limiterAdapter{inner: rate.NewMemoryLimiter(cfg.Rate.MaxRequests, win)}
		}
	}

	// ───── Auth (JWKS + verifier) ─────
	jwksTTL, _ := time.ParseDuration(cfg.Auth0.JWKSCacheTTL)
	jwksTimeout, _ := time.ParseDuration(cfg.Auth0.JWKSTimeout)
	provider := auth.NewKeyProvider(auth.ProviderConfig{
		Domain:  cfg.Auth0.Domain,
		TTL:     jwksTTL,
		Timeout: jwksTimeout,
		Cache:   cc,
		Metrics: httpx.RecordJWKSFetch,
	})
	verifier := auth.NewVerifier(provider, cfg.Auth0.Domain, cfg.Auth0.Audience)

	// ───── Métricas ─────
	metricsCfg := httpx.MetricsConfig{}
	if pgRepo, ok := repo.(*pg.Store); ok {
		metricsCfg.PgPool = pgRepo.Pool
	}
	metricsHandler, err := httpx.RegisterMetrics(metricsCfg)
	if err != nil {
		logger.L().Fatal("metrics", logger.Err(err))
	}

	// ───── Controllers ─────
	healthController := healthctrl.NewController(healthsvc.NewService(healthsvc.Deps{
		DBCheck:    repo.Ping,
		RedisCheck: redisPing,
	}))
	investorsController := investorsctrl.NewController(investorssvc.NewService(repo))
	tripsController := tripsctrl.NewController(tripssvc.NewService(repo))

	r := router.New(router.Deps{
		Health:    healthController,
		Investors: investorsController,
		Trips:     tripsController,
		Verifier:  verifier,
		Metrics:   metricsHandler,
	})

	// RequestID va antes que logging para que el scoped logger ya tenga
	// el id al armarse.
	handler := mw.Chain(r,
		mw.WithRequestID(),
		mw.WithLogging(),
		mw.WithRecover(),
		httpx.WithMetrics,
		mw.WithRateLimit(limiter),
		mw.WithSecurityHeaders(),
		mw.WithCORS(cfg.Server.CORSAllowedOrigins),
	)

	logger.L().Info("service up",
		logger.String("addr", cfg.Server.Addr),
		logger.String("driver", cfg.Storage.Driver),
		logger.String("env", cfg.App.Env),
	)
	if err := httpx.Start(cfg.Server.Addr, handler); err != nil {
		logger.L().Fatal("http", logger.Err(err))
	}
}
