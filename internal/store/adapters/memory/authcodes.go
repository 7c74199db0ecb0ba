package memory

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dropDatabas3/oidcore/internal/domain/repository"
	tokens "github.com/dropDatabas3/oidcore/internal/security/token"
)

// AuthCodeStore implementa repository.AuthCodeRepository sobre go-cache.
// Las entradas se guardan bajo el hash del código (nunca el código en claro)
// y expiran solas con el TTL del código.
type AuthCodeStore struct {
	mu sync.Mutex // serializa Save/MarkAsUsed; go-cache no tiene CAS
	c  *gocache.Cache
}

// NewAuthCodeStore crea un AuthCodeStore.
func NewAuthCodeStore() *AuthCodeStore {
	return &AuthCodeStore{c: gocache.New(gocache.NoExpiration, time.Minute)}
}

func (s *AuthCodeStore) Save(ctx context.Context, code *repository.AuthorizationCode) error {
	if code == nil || code.Code == "" {
		return repository.ErrInvalidInput
	}
	ttl := time.Until(code.ExpiresAt)
	// Un TTL no positivo haría que go-cache guarde la entrada sin expiración.
	if ttl <= 0 {
		return repository.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := *code
	// Add falla si la key ya existe: esa es la detección de colisiones.
	if err := s.c.Add(key(code.Code), &entry, ttl); err != nil {
		return repository.ErrConflict
	}
	return nil
}

func (s *AuthCodeStore) FindByCode(ctx context.Context, code string) (*repository.AuthorizationCode, error) {
	v, ok := s.c.Get(key(code))
	if !ok {
		return nil, repository.ErrNotFound
	}
	entry := v.(*repository.AuthorizationCode)
	out := *entry
	return &out, nil
}

func (s *AuthCodeStore) MarkAsUsed(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(code)
	v, exp, ok := s.c.GetWithExpiration(k)
	if !ok {
		return repository.ErrNotFound
	}
	entry := v.(*repository.AuthorizationCode)
	if entry.Used {
		return repository.ErrCodeUsed
	}
	updated := *entry
	updated.Used = true
	s.c.Set(k, &updated, time.Until(exp))
	return nil
}

// DeleteExpired elimina códigos vencidos (capacidad AuthCodeJanitor).
func (s *AuthCodeStore) DeleteExpired(ctx context.Context) error {
	s.c.DeleteExpired()
	return nil
}

// DeleteByClientID elimina todos los códigos de un client.
func (s *AuthCodeStore) DeleteByClientID(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, item := range s.c.Items() {
		if entry, ok := item.Object.(*repository.AuthorizationCode); ok && entry.ClientID == clientID {
			s.c.Delete(k)
		}
	}
	return nil
}

func key(code string) string {
	return "code:" + tokens.SHA256Base64URL(code)
}

// Interface checks: el adapter en memoria cubre también la capacidad opcional.
var (
	_ repository.AuthCodeRepository = (*AuthCodeStore)(nil)
	_ repository.AuthCodeJanitor    = (*AuthCodeStore)(nil)
)
