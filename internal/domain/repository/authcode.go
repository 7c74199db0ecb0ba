package repository

import (
	"context"
	"time"
)

// AuthorizationCode representa un código de autorización de un solo uso.
// La transición Used false→true ocurre como máximo una vez; la hace
// MarkAsUsed en el canje, nunca el emisor.
type AuthorizationCode struct {
	Code                string // opaco, único, no adivinable
	ClientID            string
	UserID              string
	RedirectURI         string
	Scope               []string // scope ya parseado
	Nonce               string
	CodeChallenge       string
	CodeChallengeMethod string
	IssuedAt            time.Time
	ExpiresAt           time.Time
	Used                bool
}

// Expired reporta si el código ya venció en el instante dado.
func (c *AuthorizationCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// AuthCodeRepository define la persistencia de códigos de autorización.
type AuthCodeRepository interface {
	// Save guarda un código nuevo.
	// Retorna ErrConflict si el valor de código ya existe; el emisor debe
	// regenerar y reintentar.
	Save(ctx context.Context, code *AuthorizationCode) error

	// FindByCode busca un código por su valor.
	// Retorna ErrNotFound si no existe o ya expiró del almacenamiento.
	FindByCode(ctx context.Context, code string) (*AuthorizationCode, error)

	// MarkAsUsed marca el código como consumido.
	// Retorna ErrCodeUsed si ya estaba consumido, ErrNotFound si no existe.
	MarkAsUsed(ctx context.Context, code string) error
}

// AuthCodeJanitor es la capacidad opcional de limpieza. Se resuelve una vez
// al cablear:
//
//	if j, ok := repo.(repository.AuthCodeJanitor); ok { ... }
type AuthCodeJanitor interface {
	// DeleteExpired elimina códigos vencidos.
	DeleteExpired(ctx context.Context) error

	// DeleteByClientID elimina todos los códigos de un client.
	DeleteByClientID(ctx context.Context, clientID string) error
}
