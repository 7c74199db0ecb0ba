package authz

import (
	"fmt"
	"strings"

	"github.com/dropDatabas3/oidcore/internal/oidc"
)

// Closed set of request-time validation errors. Callers branch on the type
// (errors.As) and on the Reason fields, never on message text. All of them map
// to a rejected authorization attempt; none is fatal for the process.

// ClientErrorReason discriminates ClientError variants.
type ClientErrorReason string

const (
	ClientNotRegistered ClientErrorReason = "not_registered"
	ClientDisabled      ClientErrorReason = "disabled"
)

// ClientError reports a client lookup or status failure.
type ClientError struct {
	ClientID string
	Reason   ClientErrorReason
}

func (e *ClientError) Error() string {
	switch e.Reason {
	case ClientDisabled:
		return fmt.Sprintf("client %q is disabled", e.ClientID)
	default:
		return fmt.Sprintf("client %q is not registered", e.ClientID)
	}
}

// RedirectURIError reports a redirect_uri that is malformed or not registered
// for the client.
type RedirectURIError struct {
	ClientID    string
	RedirectURI string
}

func (e *RedirectURIError) Error() string {
	return fmt.Sprintf("redirect_uri %q is not valid for client %q", e.RedirectURI, e.ClientID)
}

// ScopeError reports a scope violation: either "openid" is missing or some
// requested scopes are not supported by the provider.
type ScopeError struct {
	MissingOpenID bool
	Unsupported   []string // request order, duplicates preserved
}

func (e *ScopeError) Error() string {
	if e.MissingOpenID {
		return "scope must include openid"
	}
	return fmt.Sprintf("scope not supported: %s", strings.Join(e.Unsupported, ", "))
}

// ResponseTypeErrorReason discriminates ResponseTypeError variants.
type ResponseTypeErrorReason string

const (
	ResponseTypeUnsupported ResponseTypeErrorReason = "unsupported"
	ResponseTypeNotAllowed  ResponseTypeErrorReason = "not_allowed_for_client"
)

// ResponseTypeError reports a response_type the provider does not support or
// the client is not registered for.
type ResponseTypeError struct {
	ClientID     string
	ResponseType string
	Reason       ResponseTypeErrorReason
}

func (e *ResponseTypeError) Error() string {
	switch e.Reason {
	case ResponseTypeNotAllowed:
		return fmt.Sprintf("response_type %q is not allowed for client %q", e.ResponseType, e.ClientID)
	default:
		return fmt.Sprintf("unsupported response_type %q", e.ResponseType)
	}
}

// NonceError reports a missing nonce on a flow that requires one.
type NonceError struct {
	Flow oidc.Flow
}

func (e *NonceError) Error() string {
	return fmt.Sprintf("nonce is required for %s flow", e.Flow)
}
