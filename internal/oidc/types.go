package oidc

// AuthorizationRequest contains the parsed parameters of an authorization
// request. It is transient: built per inbound call, never persisted.
type AuthorizationRequest struct {
	ClientID            string `json:"client_id"`
	RedirectURI         string `json:"redirect_uri"`
	Scope               string `json:"scope"`
	ResponseType        string `json:"response_type"`
	State               string `json:"state,omitempty"`
	Nonce               string `json:"nonce,omitempty"`
	CodeChallenge       string `json:"code_challenge,omitempty"`
	CodeChallengeMethod string `json:"code_challenge_method,omitempty"`
}

// AuthorizationResponse is the flow-appropriate success payload. Code-flow
// responses carry Code; implicit carries token parts; hybrid carries both.
// State is echoed whenever the request supplied one.
type AuthorizationResponse struct {
	Code string `json:"code,omitempty"`

	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	IDToken     string `json:"id_token,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`

	State string `json:"state,omitempty"`
}

// TokenGrant is the token subset produced by an external token issuer for
// implicit and hybrid responses. Signing is out of this module's scope.
type TokenGrant struct {
	AccessToken string
	TokenType   string
	IDToken     string
	ExpiresIn   int64
}
