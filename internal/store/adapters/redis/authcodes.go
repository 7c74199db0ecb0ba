// Package redis provee un adapter distribuido de códigos de autorización.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/oidcore/internal/domain/repository"
	tokens "github.com/dropDatabas3/oidcore/internal/security/token"
)

const keyPrefix = "code:"

// AuthCodeStore implementa repository.AuthCodeRepository sobre Redis.
// Cada código vive bajo el hash de su valor con TTL igual a su vigencia, así
// la expiración la maneja Redis y no hace falta limpieza.
//
// No implementa repository.AuthCodeJanitor: DeleteExpired es innecesario con
// TTL y DeleteByClientID exigiría un índice secundario.
type AuthCodeStore struct {
	c      *rdb.Client
	prefix string
}

// New crea un AuthCodeStore contra la dirección dada.
func New(addr string, db int, prefix string) *AuthCodeStore {
	return &AuthCodeStore{
		c:      rdb.NewClient(&rdb.Options{Addr: addr, DB: db}),
		prefix: prefix,
	}
}

// NewWithClient permite inyectar un cliente ya configurado.
func NewWithClient(c *rdb.Client, prefix string) *AuthCodeStore {
	return &AuthCodeStore{c: c, prefix: prefix}
}

func (s *AuthCodeStore) Save(ctx context.Context, code *repository.AuthorizationCode) error {
	if code == nil || code.Code == "" {
		return repository.ErrInvalidInput
	}
	b, err := json.Marshal(code)
	if err != nil {
		return err
	}
	ttl := time.Until(code.ExpiresAt)
	if ttl <= 0 {
		return repository.ErrInvalidInput
	}
	ok, err := s.c.SetNX(ctx, s.key(code.Code), b, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrConflict
	}
	return nil
}

func (s *AuthCodeStore) FindByCode(ctx context.Context, code string) (*repository.AuthorizationCode, error) {
	b, err := s.c.Get(ctx, s.key(code)).Bytes()
	if err != nil {
		if errors.Is(err, rdb.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	var out repository.AuthorizationCode
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthCodeStore) MarkAsUsed(ctx context.Context, code string) error {
	k := s.key(code)
	// Watch evita la carrera entre dos canjes concurrentes del mismo código.
	return s.c.Watch(ctx, func(tx *rdb.Tx) error {
		b, err := tx.Get(ctx, k).Bytes()
		if err != nil {
			if errors.Is(err, rdb.Nil) {
				return repository.ErrNotFound
			}
			return err
		}
		var entry repository.AuthorizationCode
		if err := json.Unmarshal(b, &entry); err != nil {
			return err
		}
		if entry.Used {
			return repository.ErrCodeUsed
		}
		entry.Used = true
		updated, err := json.Marshal(&entry)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe rdb.Pipeliner) error {
			pipe.Set(ctx, k, updated, rdb.KeepTTL)
			return nil
		})
		return err
	}, k)
}

// Ping verifica la conexión.
func (s *AuthCodeStore) Ping(ctx context.Context) error {
	return s.c.Ping(ctx).Err()
}

// Close cierra la conexión.
func (s *AuthCodeStore) Close() error {
	return s.c.Close()
}

func (s *AuthCodeStore) key(code string) string {
	return s.prefix + keyPrefix + tokens.SHA256Base64URL(code)
}

var _ repository.AuthCodeRepository = (*AuthCodeStore)(nil)
