// Package store cablea los adapters de persistencia según configuración.
package store

import (
	"fmt"

	"github.com/dropDatabas3/oidcore/internal/config"
	"github.com/dropDatabas3/oidcore/internal/domain/repository"
	"github.com/dropDatabas3/oidcore/internal/observability/logger"
	"github.com/dropDatabas3/oidcore/internal/store/adapters/memory"
	redisstore "github.com/dropDatabas3/oidcore/internal/store/adapters/redis"
)

// Stores agrupa los repositorios cableados.
// Janitor es nil cuando el backend elegido no soporta limpieza explícita;
// la capacidad se resuelve acá, una sola vez, no en cada llamada.
type Stores struct {
	Clients   repository.ClientRepository
	AuthCodes repository.AuthCodeRepository
	Janitor   repository.AuthCodeJanitor
}

// New crea los repositorios según store.kind.
// Los clients siempre viven en memoria: el directorio real de clients es un
// colaborador externo y este adapter existe para wiring de tests y demos.
func New(cfg *config.Config) (*Stores, error) {
	clients := memory.NewClientStore()

	switch cfg.Store.Kind {
	case "memory", "":
		codes := memory.NewAuthCodeStore()
		return &Stores{Clients: clients, AuthCodes: codes, Janitor: codes}, nil

	case "redis":
		codes := redisstore.New(cfg.Store.Redis.Addr, cfg.Store.Redis.DB, cfg.Store.Redis.Prefix)
		logger.L().Info("auth code store: redis", logger.String("addr", cfg.Store.Redis.Addr))
		// Redis expira por TTL; no hay janitor.
		return &Stores{Clients: clients, AuthCodes: codes}, nil

	default:
		return nil, fmt.Errorf("store: unknown kind %q", cfg.Store.Kind)
	}
}
