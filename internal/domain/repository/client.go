package repository

import "context"

// Client representa un cliente OIDC/OAuth registrado.
type Client struct {
	ClientID                string   // identificador público, único
	Name                    string
	RedirectURIs            []string // match exacto, byte a byte
	ResponseTypes           []string // response types que el cliente puede solicitar
	GrantTypes              []string
	TokenEndpointAuthMethod string // opcional
	Active                  bool
}

// ClientInput contiene los datos para crear/actualizar un client.
type ClientInput struct {
	ClientID                string
	Name                    string
	RedirectURIs            []string
	ResponseTypes           []string
	GrantTypes              []string
	TokenEndpointAuthMethod string
	Active                  bool
}

// ClientRepository define operaciones sobre OIDC clients.
// El core de autorización solo usa FindByID; el resto existe para el plano
// de administración.
type ClientRepository interface {
	// FindByID obtiene un client por su client_id público.
	// Retorna ErrNotFound si no existe.
	FindByID(ctx context.Context, clientID string) (*Client, error)

	// FindAll lista todos los clients registrados.
	FindAll(ctx context.Context) ([]Client, error)

	// Save crea un nuevo client.
	// Retorna ErrConflict si el client_id ya existe.
	Save(ctx context.Context, input ClientInput) (*Client, error)

	// Update actualiza un client existente.
	// Retorna ErrNotFound si no existe.
	Update(ctx context.Context, clientID string, input ClientInput) (*Client, error)

	// Delete elimina un client.
	Delete(ctx context.Context, clientID string) error
}
