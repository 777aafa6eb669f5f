package soundcloud

import (
	"context"
	"fmt"

	"github.com/contre95/soundbridge/src/music"
	"golang.org/x/oauth2"
)

// oauthConfig builds the authorization-code flow configuration for the
// registered application.
func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.ConnectURL,
			TokenURL: c.BaseURL + "/oauth2/token",
		},
	}
}

// AuthorizeURL returns the URL the host should redirect the user's browser
// to. The state is echoed back on the callback and must be single-use.
func (c *Client) AuthorizeURL(state string) string {
	return c.oauthConfig().AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTP)
	token, err := c.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", music.ErrOAuthExchange, err)
	}
	return token.AccessToken, nil
}
