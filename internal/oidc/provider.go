// Package oidc implements the provider-metadata and protocol-semantics core:
// provider configuration validation, OIDC Discovery, response-type
// normalization and flow resolution.
package oidc

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dropDatabas3/oidcore/internal/validation"
)

// ProviderConfig is the raw provider metadata as supplied by configuration.
// It is validated exactly once by NewProvider; an invalid configuration is a
// startup failure, never a request-time one.
type ProviderConfig struct {
	Issuer                            string
	AuthorizationEndpoint             string
	TokenEndpoint                     string
	UserinfoEndpoint                  string
	JWKSURI                           string
	ResponseTypesSupported            []string
	SubjectTypesSupported             []string
	IDTokenSigningAlgValuesSupported  []string
	ScopesSupported                   []string
	ClaimsSupported                   []string
	TokenEndpointAuthMethodsSupported []string
	GrantTypesSupported               []string
	CodeChallengeMethodsSupported     []string
}

// ConfigError reports an invalid provider configuration. It is only returned
// at construction time.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("oidc: invalid provider config: %s: %s", e.Field, e.Reason)
}

// Provider exposes validated, immutable provider metadata. Safe for
// unsynchronized concurrent reads.
type Provider struct {
	cfg ProviderConfig
}

// Defaults substituted into the discovery document when the optional metadata
// fields are absent.
var (
	defaultTokenEndpointAuthMethods = []string{"client_secret_basic"}
	defaultGrantTypes               = []string{"authorization_code", "client_credentials", "refresh_token"}
	defaultCodeChallengeMethods     = []string{"S256"}
)

// NewProvider validates cfg and returns an immutable Provider.
// Checks run in field order and stop at the first violation.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	urlFields := []struct {
		field string
		value string
	}{
		{"issuer", cfg.Issuer},
		{"authorization_endpoint", cfg.AuthorizationEndpoint},
		{"token_endpoint", cfg.TokenEndpoint},
		{"userinfo_endpoint", cfg.UserinfoEndpoint},
		{"jwks_uri", cfg.JWKSURI},
	}
	for _, f := range urlFields {
		if f.value == "" {
			return nil, &ConfigError{Field: f.field, Reason: "required"}
		}
		if !isAbsoluteURL(f.value) {
			return nil, &ConfigError{Field: f.field, Reason: "must be a valid absolute URL"}
		}
	}

	if len(cfg.ResponseTypesSupported) == 0 {
		return nil, &ConfigError{Field: "response_types_supported", Reason: "at least one value required"}
	}
	if !contains(cfg.ResponseTypesSupported, "code") {
		return nil, &ConfigError{Field: "response_types_supported", Reason: `must include "code"`}
	}

	if len(cfg.SubjectTypesSupported) == 0 {
		return nil, &ConfigError{Field: "subject_types_supported", Reason: "at least one value required"}
	}
	if !contains(cfg.SubjectTypesSupported, "public") {
		return nil, &ConfigError{Field: "subject_types_supported", Reason: `must include "public"`}
	}

	if len(cfg.IDTokenSigningAlgValuesSupported) == 0 {
		return nil, &ConfigError{Field: "id_token_signing_alg_values_supported", Reason: "at least one value required"}
	}
	if !contains(cfg.IDTokenSigningAlgValuesSupported, "RS256") {
		return nil, &ConfigError{Field: "id_token_signing_alg_values_supported", Reason: `must include "RS256"`}
	}

	if len(cfg.ScopesSupported) == 0 {
		return nil, &ConfigError{Field: "scopes_supported", Reason: "at least one value required"}
	}
	if !contains(cfg.ScopesSupported, "openid") {
		return nil, &ConfigError{Field: "scopes_supported", Reason: `must include "openid"`}
	}
	for _, s := range cfg.ScopesSupported {
		if !validation.ValidScopeName(s) {
			return nil, &ConfigError{Field: "scopes_supported", Reason: fmt.Sprintf("invalid scope name %q", s)}
		}
	}

	return &Provider{cfg: cfg}, nil
}

// Accessors. The underlying slices are not copied; callers must not mutate.

func (p *Provider) Issuer() string                 { return p.cfg.Issuer }
func (p *Provider) AuthorizationEndpoint() string  { return p.cfg.AuthorizationEndpoint }
func (p *Provider) TokenEndpoint() string          { return p.cfg.TokenEndpoint }
func (p *Provider) UserinfoEndpoint() string       { return p.cfg.UserinfoEndpoint }
func (p *Provider) JWKSURI() string                { return p.cfg.JWKSURI }
func (p *Provider) ResponseTypesSupported() []string {
	return p.cfg.ResponseTypesSupported
}
func (p *Provider) SubjectTypesSupported() []string { return p.cfg.SubjectTypesSupported }
func (p *Provider) IDTokenSigningAlgValuesSupported() []string {
	return p.cfg.IDTokenSigningAlgValuesSupported
}
func (p *Provider) ScopesSupported() []string { return p.cfg.ScopesSupported }
func (p *Provider) ClaimsSupported() []string { return p.cfg.ClaimsSupported }
func (p *Provider) TokenEndpointAuthMethodsSupported() []string {
	return p.cfg.TokenEndpointAuthMethodsSupported
}
func (p *Provider) GrantTypesSupported() []string { return p.cfg.GrantTypesSupported }
func (p *Provider) CodeChallengeMethodsSupported() []string {
	return p.cfg.CodeChallengeMethodsSupported
}

// IsOpenIDIncluded reports whether the space-delimited scope value contains
// "openid" (case-insensitive).
func (p *Provider) IsOpenIDIncluded(scope string) bool {
	for _, s := range validation.SplitScopes(scope) {
		if s == "openid" {
			return true
		}
	}
	return false
}

// IsScopeSupported checks every requested scope token against
// scopes_supported. The second return value lists the unsupported tokens in
// request order, duplicates included.
func (p *Provider) IsScopeSupported(scope string) (bool, []string) {
	supported := make(map[string]struct{}, len(p.cfg.ScopesSupported))
	for _, s := range p.cfg.ScopesSupported {
		supported[strings.ToLower(s)] = struct{}{}
	}

	var unsupported []string
	for _, s := range validation.SplitScopes(scope) {
		if _, ok := supported[s]; !ok {
			unsupported = append(unsupported, s)
		}
	}
	return len(unsupported) == 0, unsupported
}

// IsResponseTypeSupported reports whether the requested response_type matches
// one of response_types_supported after set normalization.
func (p *Provider) IsResponseTypeSupported(responseType string) bool {
	requested := validation.NormalizeResponseType(responseType)
	for _, allowed := range p.cfg.ResponseTypesSupported {
		if validation.NormalizeResponseType(allowed) == requested {
			return true
		}
	}
	return false
}

// DiscoveryDocument derives the externally published discovery projection,
// substituting defaults for absent optional fields. A fresh value is built on
// every call; the provider itself is never mutated.
func (p *Provider) DiscoveryDocument() DiscoveryDocument {
	doc := DiscoveryDocument{
		Issuer:                            p.cfg.Issuer,
		AuthorizationEndpoint:             p.cfg.AuthorizationEndpoint,
		TokenEndpoint:                     p.cfg.TokenEndpoint,
		UserinfoEndpoint:                  p.cfg.UserinfoEndpoint,
		JWKSURI:                           p.cfg.JWKSURI,
		ResponseTypesSupported:            p.cfg.ResponseTypesSupported,
		SubjectTypesSupported:             p.cfg.SubjectTypesSupported,
		IDTokenSigningAlgValuesSupported:  p.cfg.IDTokenSigningAlgValuesSupported,
		ScopesSupported:                   p.cfg.ScopesSupported,
		ClaimsSupported:                   p.cfg.ClaimsSupported,
		TokenEndpointAuthMethodsSupported: p.cfg.TokenEndpointAuthMethodsSupported,
		GrantTypesSupported:               p.cfg.GrantTypesSupported,
		CodeChallengeMethodsSupported:     p.cfg.CodeChallengeMethodsSupported,
	}
	if len(doc.TokenEndpointAuthMethodsSupported) == 0 {
		doc.TokenEndpointAuthMethodsSupported = defaultTokenEndpointAuthMethods
	}
	if len(doc.GrantTypesSupported) == 0 {
		doc.GrantTypesSupported = defaultGrantTypes
	}
	if len(doc.CodeChallengeMethodsSupported) == 0 {
		doc.CodeChallengeMethodsSupported = defaultCodeChallengeMethods
	}
	return doc
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
