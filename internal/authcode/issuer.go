// Package authcode mints single-use, expiring authorization codes.
package authcode

import (
	"context"
	"errors"
	"time"

	"github.com/dropDatabas3/oidcore/internal/domain/repository"
	"github.com/dropDatabas3/oidcore/internal/observability/logger"
)

// DefaultTTL is the code lifetime used when the caller does not override it.
const DefaultTTL = 600 * time.Second

// saveRetries bounds regeneration attempts after a Save conflict.
const saveRetries = 3

// ErrCodeSpaceExhausted is returned when every regeneration attempt collided.
// With a healthy generator this indicates a store problem, not bad luck.
var ErrCodeSpaceExhausted = errors.New("authcode: could not generate a unique code")

// Payload binds an issued code to its requesting context.
type Payload struct {
	UserID              string
	ClientID            string
	RedirectURI         string
	Scope               []string
	Nonce               string
	CodeChallenge       string
	CodeChallengeMethod string
}

// Issuer mints codes and hands them to the repository. It never marks codes
// as used; redemption belongs to the token endpoint.
type Issuer struct {
	gen  Generator
	repo repository.AuthCodeRepository
	now  func() time.Time
}

// NewIssuer creates an Issuer. gen and repo are required.
func NewIssuer(gen Generator, repo repository.AuthCodeRepository) *Issuer {
	return &Issuer{gen: gen, repo: repo, now: time.Now}
}

// Issue mints a code bound to payload, valid for ttl (DefaultTTL when ttl is
// zero), and saves it. A uniqueness conflict on save regenerates the code and
// retries a bounded number of times; cancellation stops retries immediately.
func (i *Issuer) Issue(ctx context.Context, payload Payload, ttl time.Duration) (*repository.AuthorizationCode, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("Issuer.Issue"))

	for attempt := 0; attempt <= saveRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value, err := i.gen.Generate()
		if err != nil {
			return nil, err
		}

		issuedAt := i.now()
		code := &repository.AuthorizationCode{
			Code:                value,
			ClientID:            payload.ClientID,
			UserID:              payload.UserID,
			RedirectURI:         payload.RedirectURI,
			Scope:               payload.Scope,
			Nonce:               payload.Nonce,
			CodeChallenge:       payload.CodeChallenge,
			CodeChallengeMethod: payload.CodeChallengeMethod,
			IssuedAt:            issuedAt,
			ExpiresAt:           issuedAt.Add(ttl),
			Used:                false,
		}

		err = i.repo.Save(ctx, code)
		if err == nil {
			return code, nil
		}
		if !repository.IsConflict(err) {
			return nil, err
		}
		log.Warn("auth code collision, regenerating", logger.Int("attempt", attempt+1))
	}

	return nil, ErrCodeSpaceExhausted
}
