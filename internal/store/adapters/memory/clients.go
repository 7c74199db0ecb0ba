// Package memory provee adapters en memoria para desarrollo y testing.
package memory

import (
	"context"
	"sync"

	"github.com/dropDatabas3/oidcore/internal/domain/repository"
)

// ClientStore implementa repository.ClientRepository sobre un map en memoria.
type ClientStore struct {
	mu      sync.RWMutex
	clients map[string]repository.Client
}

// NewClientStore crea un ClientStore vacío.
func NewClientStore() *ClientStore {
	return &ClientStore{clients: make(map[string]repository.Client)}
}

// Seed carga clients iniciales. Pensado para wiring en tests y demos.
func (s *ClientStore) Seed(clients ...repository.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range clients {
		s.clients[c.ClientID] = c
	}
}

func (s *ClientStore) FindByID(ctx context.Context, clientID string) (*repository.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[clientID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := c
	return &out, nil
}

func (s *ClientStore) FindAll(ctx context.Context) ([]repository.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]repository.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	return out, nil
}

func (s *ClientStore) Save(ctx context.Context, input repository.ClientInput) (*repository.Client, error) {
	if input.ClientID == "" {
		return nil, repository.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.clients[input.ClientID]; exists {
		return nil, repository.ErrConflict
	}
	c := clientFromInput(input)
	s.clients[input.ClientID] = c
	out := c
	return &out, nil
}

func (s *ClientStore) Update(ctx context.Context, clientID string, input repository.ClientInput) (*repository.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.clients[clientID]; !exists {
		return nil, repository.ErrNotFound
	}
	c := clientFromInput(input)
	c.ClientID = clientID
	s.clients[clientID] = c
	out := c
	return &out, nil
}

func (s *ClientStore) Delete(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.clients[clientID]; !exists {
		return repository.ErrNotFound
	}
	delete(s.clients, clientID)
	return nil
}

func clientFromInput(input repository.ClientInput) repository.Client {
	return repository.Client{
		ClientID:                input.ClientID,
		Name:                    input.Name,
		RedirectURIs:            input.RedirectURIs,
		ResponseTypes:           input.ResponseTypes,
		GrantTypes:              input.GrantTypes,
		TokenEndpointAuthMethod: input.TokenEndpointAuthMethod,
		Active:                  input.Active,
	}
}
