// Package authz validates authorization requests and orchestrates the OIDC
// authorization flows.
package authz

import (
	"context"
	"net/url"

	"github.com/dropDatabas3/oidcore/internal/domain/repository"
	"github.com/dropDatabas3/oidcore/internal/observability/logger"
	"github.com/dropDatabas3/oidcore/internal/oidc"
	"github.com/dropDatabas3/oidcore/internal/validation"
)

// Validator runs the fixed-order validation of authorization requests. It
// only reads from its collaborators; it has no side effects.
type Validator struct {
	clients  repository.ClientRepository
	provider *oidc.Provider
}

// NewValidator creates a Validator.
func NewValidator(clients repository.ClientRepository, provider *oidc.Provider) *Validator {
	return &Validator{clients: clients, provider: provider}
}

// ValidateAuthorizationRequest checks the request against the registered
// client and the provider metadata. Checks run in a fixed order (client
// existence first, so nothing else leaks for unknown clients) and stop at the
// first violation, returning one of the typed errors from this package.
func (v *Validator) ValidateAuthorizationRequest(ctx context.Context, req oidc.AuthorizationRequest) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Op("Validator.ValidateAuthorizationRequest"),
		logger.ClientID(req.ClientID),
	)

	// 1-2. Client exists and is active.
	client, err := v.clients.FindByID(ctx, req.ClientID)
	if err != nil {
		if repository.IsNotFound(err) {
			log.Debug("client not registered")
			return &ClientError{ClientID: req.ClientID, Reason: ClientNotRegistered}
		}
		return err
	}
	if !client.Active {
		log.Debug("client disabled")
		return &ClientError{ClientID: req.ClientID, Reason: ClientDisabled}
	}

	// 3. Redirect URI: well-formed absolute URL and exact match against the
	// registered set.
	if !isAbsoluteURL(req.RedirectURI) || !containsExact(client.RedirectURIs, req.RedirectURI) {
		log.Debug("redirect_uri rejected", logger.RedirectURI(req.RedirectURI))
		return &RedirectURIError{ClientID: req.ClientID, RedirectURI: req.RedirectURI}
	}

	// 4-5. Scope: openid mandatory, every token supported.
	if !v.provider.IsOpenIDIncluded(req.Scope) {
		log.Debug("scope missing openid", logger.Scope(req.Scope))
		return &ScopeError{MissingOpenID: true}
	}
	if ok, unsupported := v.provider.IsScopeSupported(req.Scope); !ok {
		log.Debug("unsupported scopes", logger.Strings("unsupported", unsupported))
		return &ScopeError{Unsupported: unsupported}
	}

	// 6-7. Response type: supported globally, then allowed for this client.
	if !v.provider.IsResponseTypeSupported(req.ResponseType) {
		log.Debug("response_type unsupported", logger.ResponseType(req.ResponseType))
		return &ResponseTypeError{
			ClientID:     req.ClientID,
			ResponseType: req.ResponseType,
			Reason:       ResponseTypeUnsupported,
		}
	}
	if !responseTypeAllowed(client, req.ResponseType) {
		log.Debug("response_type not allowed for client", logger.ResponseType(req.ResponseType))
		return &ResponseTypeError{
			ClientID:     req.ClientID,
			ResponseType: req.ResponseType,
			Reason:       ResponseTypeNotAllowed,
		}
	}

	// 8. Nonce is mandatory whenever the resolved flow issues tokens directly.
	if flow := oidc.ResolveFlow(req.ResponseType); flow == oidc.FlowImplicit || flow == oidc.FlowHybrid {
		if req.Nonce == "" {
			log.Debug("nonce missing", logger.Flow(string(flow)))
			return &NonceError{Flow: flow}
		}
	}

	return nil
}

// responseTypeAllowed compares the requested response_type against the
// client's registered set, order- and case-insensitively.
func responseTypeAllowed(client *repository.Client, responseType string) bool {
	requested := validation.NormalizeResponseType(responseType)
	for _, allowed := range client.ResponseTypes {
		if validation.NormalizeResponseType(allowed) == requested {
			return true
		}
	}
	return false
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

func containsExact(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
