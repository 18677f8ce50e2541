package extractor

import "github.com/seitarof/tado-env/internal/oauth"

// ClientInfo is what the web app's env document tells a client about
// itself: the app version and the OAuth client it should log in as.
type ClientInfo struct {
	Version      string          `json:"version"`
	ClientID     string          `json:"client_id"`
	ClientSecret string          `json:"client_secret"`
	Endpoints    oauth.Endpoints `json:"endpoints"`
}
