package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	initOnce sync.Once
	root     *zap.Logger
)

// Init inicializa el logger singleton con la configuración dada.
// Es idempotente: solo la primera llamada tiene efecto.
func Init(cfg Config) {
	initOnce.Do(func() {
		root = build(cfg)
	})
}

// L retorna el logger singleton.
// Si Init() no fue llamado, crea uno por defecto (dev, info).
func L() *zap.Logger {
	if root == nil {
		Init(Config{Env: "dev", Level: "info"})
	}
	return root
}

// Named retorna un logger con nombre de componente (aparece en cada línea).
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Sync flushea buffers pendientes. Llamar con defer en main.
func Sync() error {
	if root != nil {
		return root.Sync()
	}
	return nil
}
