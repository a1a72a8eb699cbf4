// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sw360

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/l3montree-dev/sw360bridge/common"
	"github.com/l3montree-dev/sw360bridge/shared"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

var v = validator.New()

type ConnectionSettings struct {
	URL string `validate:"required,url"`
	// TokenURL of the sw360 authorization server. Only used without Token.
	TokenURL     string `validate:"omitempty,url"`
	ClientID     string
	ClientSecret string
	User         string
	Password     string
	// Token is a sw360 rest api token. If set it is used instead of oauth2.
	Token   string
	Proxy   common.ProxySettings
	Timeout time.Duration
}

// ConnectionConfiguration bundles everything needed to talk to one sw360
// instance: the authorization and the three adapters.
type ConnectionConfiguration struct {
	settings    ConnectionSettings
	oauthConfig *oauth2.Config
	tokenClient *http.Client

	mu          sync.Mutex
	tokenSource oauth2.TokenSource

	licenseAdapter *LicenseAdapter
	releaseAdapter *ReleaseAdapter
	projectAdapter *ProjectAdapter
}

var _ shared.HeaderProvider = (*ConnectionConfiguration)(nil)

func NewConnectionConfiguration(settings ConnectionSettings) (*ConnectionConfiguration, error) {
	if err := v.Struct(settings); err != nil {
		return nil, errors.Wrap(err, "invalid sw360 connection settings")
	}
	if settings.Token == "" && (settings.TokenURL == "" || settings.User == "") {
		return nil, errors.New("either a sw360 token or a token url and a user are required")
	}

	c := &ConnectionConfiguration{
		settings: settings,
		oauthConfig: &oauth2.Config{
			ClientID:     settings.ClientID,
			ClientSecret: settings.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  settings.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		tokenClient: &http.Client{
			Transport: common.NewTransport(settings.Proxy),
			Timeout:   30 * time.Second,
		},
	}

	client, err := NewClient(ClientConfig{
		BaseURL: settings.URL,
		Proxy:   settings.Proxy,
		Timeout: settings.Timeout,
	}, c)
	if err != nil {
		return nil, err
	}

	c.licenseAdapter = NewLicenseAdapter(client)
	c.releaseAdapter = NewReleaseAdapter(client)
	c.projectAdapter = NewProjectAdapter(client)
	return c, nil
}

// HTTPHeaders returns the Authorization header for sw360. The oauth2 token is
// fetched with the password grant on first use and refreshed when expired.
func (c *ConnectionConfiguration) HTTPHeaders(ctx context.Context) (http.Header, error) {
	if c.settings.Token != "" {
		return http.Header{"Authorization": []string{"Token " + c.settings.Token}}, nil
	}

	tokenSource, err := c.getTokenSource(ctx)
	if err != nil {
		return nil, err
	}

	token, err := tokenSource.Token()
	if err != nil {
		return nil, errors.Wrap(err, "could not get sw360 access token")
	}

	return http.Header{"Authorization": []string{token.Type() + " " + token.AccessToken}}, nil
}

func (c *ConnectionConfiguration) getTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tokenSource != nil {
		return c.tokenSource, nil
	}

	// the token source outlives ctx, refreshes must not be canceled with it
	tokenCtx := context.WithValue(context.WithoutCancel(ctx), oauth2.HTTPClient, c.tokenClient)

	token, err := c.oauthConfig.PasswordCredentialsToken(tokenCtx, c.settings.User, c.settings.Password)
	if err != nil {
		return nil, errors.Wrap(err, "could not authenticate against sw360")
	}

	c.tokenSource = oauth2.ReuseTokenSource(token, c.oauthConfig.TokenSource(tokenCtx, token))
	return c.tokenSource, nil
}

func (c *ConnectionConfiguration) LicenseClientAdapter() *LicenseAdapter {
	return c.licenseAdapter
}

func (c *ConnectionConfiguration) ReleaseClientAdapter() *ReleaseAdapter {
	return c.releaseAdapter
}

func (c *ConnectionConfiguration) ProjectClientAdapter() *ProjectAdapter {
	return c.projectAdapter
}
