package authcode

import (
	"github.com/google/uuid"

	tokens "github.com/dropDatabas3/oidcore/internal/security/token"
)

// Generator produces fresh opaque code identifiers. Implementations must make
// collisions negligible across the code store's lifetime.
type Generator interface {
	Generate() (string, error)
}

// OpaqueGenerator generates random base64url identifiers of Bytes random
// bytes (crypto/rand).
type OpaqueGenerator struct {
	Bytes int
}

const defaultCodeBytes = 32

func (g OpaqueGenerator) Generate() (string, error) {
	n := g.Bytes
	if n <= 0 {
		n = defaultCodeBytes
	}
	return tokens.GenerateOpaqueToken(n)
}

// UUIDGenerator generates random UUIDv4 identifiers. Shorter than
// OpaqueGenerator output; useful where codes end up in constrained fields.
type UUIDGenerator struct{}

func (UUIDGenerator) Generate() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
