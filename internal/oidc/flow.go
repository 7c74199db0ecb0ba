package oidc

import (
	"strings"

	"github.com/dropDatabas3/oidcore/internal/validation"
)

// Flow is the OIDC authorization flow resolved from a response_type value.
type Flow string

const (
	FlowAuthorizationCode Flow = "authorization_code"
	FlowImplicit          Flow = "implicit"
	FlowHybrid            Flow = "hybrid"
)

// ResolveFlow classifies a response_type value. It never fails: token sets
// containing none of code/token/id_token fall through to implicit. This is a
// permissive default, not validation; response-type support must be checked
// separately before trusting the result for issuance.
func ResolveFlow(responseType string) Flow {
	parts := strings.Fields(validation.NormalizeResponseType(responseType))

	var hasCode, hasToken, hasIDToken bool
	for _, p := range parts {
		switch p {
		case "code":
			hasCode = true
		case "token":
			hasToken = true
		case "id_token":
			hasIDToken = true
		}
	}

	switch {
	case hasCode && (hasToken || hasIDToken):
		return FlowHybrid
	case hasCode:
		return FlowAuthorizationCode
	default:
		return FlowImplicit
	}
}
