// Package logger provides a singleton Zap logger with context-based scoping.
//
// # Design Decisions
//
//   - Singleton: una sola instancia global inicializada con Init().
//   - Context Scoping: cada request lleva un logger "scoped" con campos
//     propios (request_id, method, path) sin crear un nuevo core.
//   - Environments: "dev" usa consola con colores, "prod" usa JSON.
//   - Levels: debug, info, warn, error (configurable via LOG_LEVEL).
//
// # Usage
//
// Inicialización (una vez en main.go):
//
//	logger.Init(logger.Config{
//	    Env:   cfg.App.Env,             // "dev" o "prod"
//	    Level: os.Getenv("LOG_LEVEL"),  // "" == "info"
//	})
//	defer logger.Sync()
//
// En controllers/services (con contexto):
//
//	log := logger.From(ctx)
//	log.Info("investor created", logger.DocID(id))
//
// Sin contexto (fallback al singleton):
//
//	logger.L().Info("service started")
package logger
