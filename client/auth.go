package client

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthBearer attaches the credential as an Authorization bearer header.
	AuthBearer AuthType = iota
	// AuthAPIKey attaches the credential under a named header.
	AuthAPIKey
	// AuthCustom applies a caller-supplied request modifier.
	AuthCustom
)

// AuthConfig configures how the credential is attached to each request.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the opaque credential (AuthBearer, AuthAPIKey).
	Token string
	// Header is the header name for AuthAPIKey. Defaults to "X-API-Key".
	Header string
	// Apply is a custom request modifier (AuthCustom).
	Apply func(*http.Request)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// APIKeyAuth creates an API key auth config with a custom header name.
func APIKeyAuth(token, header string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Token: token, Header: header}
}

// CustomAuth creates an auth config from a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// apply attaches the credential to an outbound request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthAPIKey:
		header := a.Header
		if header == "" {
			header = "X-API-Key"
		}
		req.Header.Set(header, a.Token)
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
}
