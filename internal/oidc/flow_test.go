package oidc

import "testing"

func TestResolveFlow(t *testing.T) {
	cases := []struct {
		responseType string
		want         Flow
	}{
		{"code", FlowAuthorizationCode},
		{"token", FlowImplicit},
		{"id_token", FlowImplicit},
		{"id_token token", FlowImplicit},
		{"code id_token", FlowHybrid},
		{"code token", FlowHybrid},
		{"code id_token token", FlowHybrid},
		{"token id_token code", FlowHybrid}, // order-insensitive
		{"CODE", FlowAuthorizationCode},
		{"  code  ", FlowAuthorizationCode},
		// Unrecognized token sets fall through to implicit.
		{"", FlowImplicit},
		{"something_else", FlowImplicit},
	}
	for _, c := range cases {
		if got := ResolveFlow(c.responseType); got != c.want {
			t.Fatalf("ResolveFlow(%q) = %v, want %v", c.responseType, got, c.want)
		}
	}
}

func TestResolveFlow_PermutationsAgree(t *testing.T) {
	perms := []string{
		"code id_token token",
		"code token id_token",
		"id_token code token",
		"id_token token code",
		"token code id_token",
		"token id_token code",
	}
	for _, p := range perms {
		if got := ResolveFlow(p); got != FlowHybrid {
			t.Fatalf("ResolveFlow(%q) = %v, want %v", p, got, FlowHybrid)
		}
	}
}
