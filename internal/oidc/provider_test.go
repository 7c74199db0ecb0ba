package oidc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() ProviderConfig {
	return ProviderConfig{
		Issuer:                           "https://id.example.com",
		AuthorizationEndpoint:            "https://id.example.com/oauth2/authorize",
		TokenEndpoint:                    "https://id.example.com/oauth2/token",
		UserinfoEndpoint:                 "https://id.example.com/userinfo",
		JWKSURI:                          "https://id.example.com/.well-known/jwks.json",
		ResponseTypesSupported:           []string{"code", "code id_token token"},
		SubjectTypesSupported:            []string{"public"},
		IDTokenSigningAlgValuesSupported: []string{"RS256"},
		ScopesSupported:                  []string{"openid", "profile"},
	}
}

func TestNewProvider_Valid(t *testing.T) {
	p, err := NewProvider(validConfig())
	require.NoError(t, err)
	assert.Equal(t, "https://id.example.com", p.Issuer())
	assert.Equal(t, []string{"openid", "profile"}, p.ScopesSupported())
}

func TestNewProvider_FailsFastInFieldOrder(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*ProviderConfig)
		wantField string
	}{
		{"missing issuer", func(c *ProviderConfig) { c.Issuer = "" }, "issuer"},
		{"relative issuer", func(c *ProviderConfig) { c.Issuer = "/idp" }, "issuer"},
		{"missing authorization endpoint", func(c *ProviderConfig) { c.AuthorizationEndpoint = "" }, "authorization_endpoint"},
		{"bad token endpoint", func(c *ProviderConfig) { c.TokenEndpoint = "not a url" }, "token_endpoint"},
		{"missing userinfo endpoint", func(c *ProviderConfig) { c.UserinfoEndpoint = "" }, "userinfo_endpoint"},
		{"missing jwks", func(c *ProviderConfig) { c.JWKSURI = "" }, "jwks_uri"},
		{"empty response types", func(c *ProviderConfig) { c.ResponseTypesSupported = nil }, "response_types_supported"},
		{"response types without code", func(c *ProviderConfig) { c.ResponseTypesSupported = []string{"token"} }, "response_types_supported"},
		{"empty subject types", func(c *ProviderConfig) { c.SubjectTypesSupported = nil }, "subject_types_supported"},
		{"subject types without public", func(c *ProviderConfig) { c.SubjectTypesSupported = []string{"pairwise"} }, "subject_types_supported"},
		{"empty algs", func(c *ProviderConfig) { c.IDTokenSigningAlgValuesSupported = nil }, "id_token_signing_alg_values_supported"},
		{"algs without RS256", func(c *ProviderConfig) { c.IDTokenSigningAlgValuesSupported = []string{"ES256"} }, "id_token_signing_alg_values_supported"},
		{"empty scopes", func(c *ProviderConfig) { c.ScopesSupported = nil }, "scopes_supported"},
		{"scopes without openid", func(c *ProviderConfig) { c.ScopesSupported = []string{"profile"} }, "scopes_supported"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			_, err := NewProvider(cfg)
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.wantField, cfgErr.Field)
		})
	}
}

func TestNewProvider_MissingRS256MentionsRS256(t *testing.T) {
	cfg := validConfig()
	cfg.IDTokenSigningAlgValuesSupported = []string{"ES256", "HS256"}
	_, err := NewProvider(cfg)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "RS256"), "error should mention RS256: %v", err)
}

func TestNewProvider_RejectsMalformedScopeNames(t *testing.T) {
	cfg := validConfig()
	cfg.ScopesSupported = []string{"openid", "BAD SCOPE"}
	_, err := NewProvider(cfg)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "scopes_supported", cfgErr.Field)
}

func TestIsOpenIDIncluded(t *testing.T) {
	p, err := NewProvider(validConfig())
	require.NoError(t, err)

	assert.True(t, p.IsOpenIDIncluded("openid profile"))
	assert.True(t, p.IsOpenIDIncluded("profile OPENID"))
	assert.False(t, p.IsOpenIDIncluded("email profile"))
	assert.False(t, p.IsOpenIDIncluded(""))
}

func TestIsScopeSupported(t *testing.T) {
	p, err := NewProvider(validConfig())
	require.NoError(t, err)

	ok, unsupported := p.IsScopeSupported("openid profile")
	assert.True(t, ok)
	assert.Empty(t, unsupported)

	ok, unsupported = p.IsScopeSupported("openid email offline_access")
	assert.False(t, ok)
	assert.Equal(t, []string{"email", "offline_access"}, unsupported)

	// Duplicates in the request are reported as often as they appear.
	ok, unsupported = p.IsScopeSupported("email email")
	assert.False(t, ok)
	assert.Equal(t, []string{"email", "email"}, unsupported)
}

func TestIsResponseTypeSupported(t *testing.T) {
	p, err := NewProvider(validConfig())
	require.NoError(t, err)

	assert.True(t, p.IsResponseTypeSupported("code"))
	assert.True(t, p.IsResponseTypeSupported("token id_token code"), "order must not matter")
	assert.False(t, p.IsResponseTypeSupported("id_token"))
	assert.False(t, p.IsResponseTypeSupported(""))
}

func TestDiscoveryDocument_Defaults(t *testing.T) {
	p, err := NewProvider(validConfig())
	require.NoError(t, err)

	doc := p.DiscoveryDocument()
	assert.Equal(t, []string{"client_secret_basic"}, doc.TokenEndpointAuthMethodsSupported)
	assert.Equal(t, []string{"authorization_code", "client_credentials", "refresh_token"}, doc.GrantTypesSupported)
	assert.Equal(t, []string{"S256"}, doc.CodeChallengeMethodsSupported)
	assert.Empty(t, doc.ClaimsSupported)
}

func TestDiscoveryDocument_ConfiguredValuesWin(t *testing.T) {
	cfg := validConfig()
	cfg.TokenEndpointAuthMethodsSupported = []string{"private_key_jwt"}
	cfg.GrantTypesSupported = []string{"authorization_code"}
	cfg.CodeChallengeMethodsSupported = []string{"S256", "plain"}
	cfg.ClaimsSupported = []string{"sub", "email"}

	p, err := NewProvider(cfg)
	require.NoError(t, err)

	doc := p.DiscoveryDocument()
	assert.Equal(t, []string{"private_key_jwt"}, doc.TokenEndpointAuthMethodsSupported)
	assert.Equal(t, []string{"authorization_code"}, doc.GrantTypesSupported)
	assert.Equal(t, []string{"S256", "plain"}, doc.CodeChallengeMethodsSupported)
	assert.Equal(t, []string{"sub", "email"}, doc.ClaimsSupported)
}
