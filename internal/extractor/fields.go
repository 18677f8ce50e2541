package extractor

// Dotted paths of the required fields in the env document.
const (
	PathVersion      = "config.version"
	PathClientID     = "config.oauth.clientId"
	PathClientSecret = "config.oauth.clientSecret"
	PathOAuthAPI     = "config.oauth.apiEndpoint"
)

// DefaultFields returns the required fields in lookup order.
func DefaultFields() []Field {
	return []Field{
		{Path: PathVersion, Set: func(i *ClientInfo, v string) { i.Version = v }},
		{Path: PathClientID, Set: func(i *ClientInfo, v string) { i.ClientID = v }},
		{Path: PathClientSecret, Set: func(i *ClientInfo, v string) { i.ClientSecret = v }},
		{Path: PathOAuthAPI, Set: func(i *ClientInfo, v string) { i.Endpoints.OAuth = v }},
	}
}
