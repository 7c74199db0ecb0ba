package validation

import "testing"

func TestNormalizeResponseType_OrderInsensitive(t *testing.T) {
	perms := []string{
		"code id_token token",
		"code token id_token",
		"id_token code token",
		"id_token token code",
		"token code id_token",
		"token id_token code",
	}
	want := "code id_token token"
	for _, p := range perms {
		if got := NormalizeResponseType(p); got != want {
			t.Fatalf("NormalizeResponseType(%q) = %q, want %q", p, got, want)
		}
	}
}

func TestNormalizeResponseType_CaseAndWhitespace(t *testing.T) {
	cases := map[string]string{
		"CODE":                  "code",
		"  id_token \t token ":  "id_token token",
		"Code   ID_Token":       "code id_token",
		"":                      "",
		"   \t  ":               "",
		"token token":           "token token", // duplicates are kept
	}
	for in, want := range cases {
		if got := NormalizeResponseType(in); got != want {
			t.Fatalf("NormalizeResponseType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitScopes(t *testing.T) {
	got := SplitScopes("  OpenID email  Email ")
	want := []string{"openid", "email", "email"}
	if len(got) != len(want) {
		t.Fatalf("SplitScopes: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SplitScopes[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
