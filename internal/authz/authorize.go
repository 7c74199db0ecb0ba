package authz

import (
	"context"
	"errors"
	"time"

	"github.com/dropDatabas3/oidcore/internal/authcode"
	"github.com/dropDatabas3/oidcore/internal/metrics"
	"github.com/dropDatabas3/oidcore/internal/observability/logger"
	"github.com/dropDatabas3/oidcore/internal/oidc"
	"github.com/dropDatabas3/oidcore/internal/validation"
	"go.uber.org/zap"
)

// ErrNoTokenIssuer is returned when an implicit or hybrid request reaches a
// service wired without a token issuer.
var ErrNoTokenIssuer = errors.New("authz: token issuance not configured")

// TokenIssuer produces the token parts of implicit and hybrid responses.
// Signing and claims assembly live outside this module.
type TokenIssuer interface {
	IssueTokens(ctx context.Context, req oidc.AuthorizationRequest, userID string, flow oidc.Flow) (oidc.TokenGrant, error)
}

// Service is the top-level authorization entry point: validate, resolve the
// flow, dispatch to the flow handler.
type Service struct {
	validator *Validator
	issuer    *authcode.Issuer
	tokens    TokenIssuer // nil when only the code flow is served
	codeTTL   time.Duration
}

// Deps contains dependencies for Service.
type Deps struct {
	Validator *Validator
	Issuer    *authcode.Issuer
	Tokens    TokenIssuer
	CodeTTL   time.Duration // 0 means authcode.DefaultTTL
}

// NewService creates the authorization Service.
func NewService(d Deps) *Service {
	return &Service{
		validator: d.Validator,
		issuer:    d.Issuer,
		tokens:    d.Tokens,
		codeTTL:   d.CodeTTL,
	}
}

// Authorize validates req and executes the resolved flow for the already
// authenticated user. On any validation failure the typed error is returned
// and nothing is issued.
func (s *Service) Authorize(ctx context.Context, req oidc.AuthorizationRequest, userID string) (oidc.AuthorizationResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Op("Service.Authorize"),
		logger.ClientID(req.ClientID),
	)

	if err := s.validator.ValidateAuthorizationRequest(ctx, req); err != nil {
		metrics.AuthzRejections.WithLabelValues(rejectionReason(err)).Inc()
		return oidc.AuthorizationResponse{}, err
	}

	flow := oidc.ResolveFlow(req.ResponseType)
	metrics.AuthzRequests.WithLabelValues(string(flow)).Inc()
	log = log.With(logger.Flow(string(flow)))

	switch flow {
	case oidc.FlowAuthorizationCode:
		return s.handleCodeFlow(ctx, log, req, userID)
	case oidc.FlowHybrid:
		return s.handleHybridFlow(ctx, log, req, userID)
	default:
		return s.handleImplicitFlow(ctx, log, req, userID)
	}
}

// ValidateAuthorizationRequest exposes validation without issuance.
func (s *Service) ValidateAuthorizationRequest(ctx context.Context, req oidc.AuthorizationRequest) error {
	return s.validator.ValidateAuthorizationRequest(ctx, req)
}

func (s *Service) handleCodeFlow(ctx context.Context, log *zap.Logger, req oidc.AuthorizationRequest, userID string) (oidc.AuthorizationResponse, error) {
	code, err := s.issueCode(ctx, req, userID)
	if err != nil {
		return oidc.AuthorizationResponse{}, err
	}
	log.Info("authorization code issued", logger.UserID(userID))
	return oidc.AuthorizationResponse{Code: code, State: req.State}, nil
}

func (s *Service) handleImplicitFlow(ctx context.Context, log *zap.Logger, req oidc.AuthorizationRequest, userID string) (oidc.AuthorizationResponse, error) {
	if s.tokens == nil {
		return oidc.AuthorizationResponse{}, ErrNoTokenIssuer
	}
	grant, err := s.tokens.IssueTokens(ctx, req, userID, oidc.FlowImplicit)
	if err != nil {
		return oidc.AuthorizationResponse{}, err
	}
	log.Info("implicit grant issued", logger.UserID(userID))
	return oidc.AuthorizationResponse{
		AccessToken: grant.AccessToken,
		TokenType:   grant.TokenType,
		IDToken:     grant.IDToken,
		ExpiresIn:   grant.ExpiresIn,
		State:       req.State,
	}, nil
}

func (s *Service) handleHybridFlow(ctx context.Context, log *zap.Logger, req oidc.AuthorizationRequest, userID string) (oidc.AuthorizationResponse, error) {
	if s.tokens == nil {
		return oidc.AuthorizationResponse{}, ErrNoTokenIssuer
	}
	code, err := s.issueCode(ctx, req, userID)
	if err != nil {
		return oidc.AuthorizationResponse{}, err
	}
	grant, err := s.tokens.IssueTokens(ctx, req, userID, oidc.FlowHybrid)
	if err != nil {
		return oidc.AuthorizationResponse{}, err
	}
	log.Info("hybrid grant issued", logger.UserID(userID))
	return oidc.AuthorizationResponse{
		Code:        code,
		AccessToken: grant.AccessToken,
		TokenType:   grant.TokenType,
		IDToken:     grant.IDToken,
		ExpiresIn:   grant.ExpiresIn,
		State:       req.State,
	}, nil
}

func (s *Service) issueCode(ctx context.Context, req oidc.AuthorizationRequest, userID string) (string, error) {
	code, err := s.issuer.Issue(ctx, authcode.Payload{
		UserID:              userID,
		ClientID:            req.ClientID,
		RedirectURI:         req.RedirectURI,
		Scope:               validation.SplitScopes(req.Scope),
		Nonce:               req.Nonce,
		CodeChallenge:       req.CodeChallenge,
		CodeChallengeMethod: req.CodeChallengeMethod,
	}, s.codeTTL)
	if err != nil {
		return "", err
	}
	metrics.AuthCodesIssued.Inc()
	return code.Code, nil
}

// rejectionReason maps a validation error to a bounded metric label.
func rejectionReason(err error) string {
	var (
		clientErr   *ClientError
		redirectErr *RedirectURIError
		scopeErr    *ScopeError
		rtErr       *ResponseTypeError
		nonceErr    *NonceError
	)
	switch {
	case errors.As(err, &clientErr):
		return "client_" + string(clientErr.Reason)
	case errors.As(err, &redirectErr):
		return "redirect_uri"
	case errors.As(err, &scopeErr):
		if scopeErr.MissingOpenID {
			return "scope_missing_openid"
		}
		return "scope_unsupported"
	case errors.As(err, &rtErr):
		return "response_type_" + string(rtErr.Reason)
	case errors.As(err, &nonceErr):
		return "nonce_required"
	default:
		return "internal"
	}
}
