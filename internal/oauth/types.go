package oauth

import "fmt"

// DefaultScope is the scope requested for a home user session.
const DefaultScope = "home.user"

// Endpoints holds the API base URLs discovered at bootstrap.
type Endpoints struct {
	OAuth string `json:"oauth"`
}

// TokenURL returns the token endpoint below the OAuth base URL.
func (e Endpoints) TokenURL() string {
	return e.OAuth + "/token"
}

// GrantType is the OAuth grant_type form value.
type GrantType string

const (
	GrantPassword     GrantType = "password"
	GrantRefreshToken GrantType = "refresh_token"
)

// TokenRequest is the form sent to the token endpoint.
type TokenRequest struct {
	ClientID     string
	ClientSecret string
	GrantType    GrantType
	Scope        string

	// Username and Password are used by GrantPassword.
	Username string
	Password string

	// RefreshToken is used by GrantRefreshToken.
	RefreshToken string
}

func (r *TokenRequest) validate() error {
	if r.ClientID == "" {
		return fmt.Errorf("client id is required")
	}
	switch r.GrantType {
	case GrantPassword:
		if r.Username == "" || r.Password == "" {
			return fmt.Errorf("username and password are required for %s grant", r.GrantType)
		}
	case GrantRefreshToken:
		if r.RefreshToken == "" {
			return fmt.Errorf("refresh token is required for %s grant", r.GrantType)
		}
	default:
		return fmt.Errorf("unsupported grant type %q", r.GrantType)
	}
	return nil
}

// TokenResponse is the token endpoint's answer.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
	JTI          string `json:"jti"`
}
