// Package oauth exchanges the bootstrap client credentials for an access token.
//
// Requests are form-encoded POSTs to {endpoints.oauth}/token with the client
// id and secret carried in the form body. Two grants are supported:
//
//	client := oauth.New(oauth.Endpoints{OAuth: "https://auth.tado.com/oauth"}, http.DefaultClient)
//	resp, err := client.RequestToken(ctx, &oauth.TokenRequest{
//		ClientID:     info.ClientID,
//		ClientSecret: info.ClientSecret,
//		GrantType:    oauth.GrantPassword,
//		Scope:        oauth.DefaultScope,
//		Username:     "user@example.com",
//		Password:     "secret",
//	})
//
// A GrantRefreshToken request carries RefreshToken instead of the user's
// credentials.
package oauth
