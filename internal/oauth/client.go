package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Client requests tokens from one OAuth endpoint.
type Client interface {
	RequestToken(ctx context.Context, req *TokenRequest) (*TokenResponse, error)
}

// Factory builds a Client once the endpoints are known.
type Factory func(endpoints Endpoints) Client

type clientImpl struct {
	endpoints  Endpoints
	httpClient *http.Client
}

// New returns a Client for endpoints. A nil httpClient falls back to
// http.DefaultClient.
func New(endpoints Endpoints, httpClient *http.Client) Client {
	return &clientImpl{endpoints: endpoints, httpClient: httpClient}
}

// NewFactory returns a Factory whose clients share httpClient.
func NewFactory(httpClient *http.Client) Factory {
	return func(endpoints Endpoints) Client {
		return New(endpoints, httpClient)
	}
}

func (c *clientImpl) RequestToken(ctx context.Context, req *TokenRequest) (*TokenResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	conf := &oauth2.Config{
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.endpoints.TokenURL(),
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: strings.Fields(req.Scope),
	}
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	var (
		tok *oauth2.Token
		err error
	)
	switch req.GrantType {
	case GrantPassword:
		tok, err = conf.PasswordCredentialsToken(ctx, req.Username, req.Password)
	case GrantRefreshToken:
		tok, err = conf.TokenSource(ctx, &oauth2.Token{RefreshToken: req.RefreshToken}).Token()
	}
	if err != nil {
		return nil, fmt.Errorf("token endpoint %s: %w", conf.Endpoint.TokenURL, err)
	}
	return fromToken(tok), nil
}

func fromToken(tok *oauth2.Token) *TokenResponse {
	resp := &TokenResponse{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Scope:        extraString(tok, "scope"),
		JTI:          extraString(tok, "jti"),
	}
	if n, ok := extraInt64(tok, "expires_in"); ok {
		resp.ExpiresIn = n
	} else if !tok.Expiry.IsZero() {
		resp.ExpiresIn = int64(time.Until(tok.Expiry).Round(time.Second) / time.Second)
	}
	return resp
}

func extraString(tok *oauth2.Token, key string) string {
	switch v := tok.Extra(key).(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func extraInt64(tok *oauth2.Token, key string) (int64, bool) {
	switch v := tok.Extra(key).(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
