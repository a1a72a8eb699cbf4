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

package config

import (
	"log/slog"
	"time"

	"github.com/l3montree-dev/sw360bridge/common"
	"github.com/l3montree-dev/sw360bridge/sw360"
	"github.com/l3montree-dev/sw360bridge/utils"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

type baseConfig struct {
	SW360URL          string `json:"sw360Url" mapstructure:"sw360Url"`
	SW360TokenURL     string `json:"sw360TokenUrl" mapstructure:"sw360TokenUrl"`
	SW360ClientID     string `json:"sw360ClientId" mapstructure:"sw360ClientId"`
	SW360ClientSecret string `json:"sw360ClientSecret" mapstructure:"sw360ClientSecret"`
	SW360User         string `json:"sw360User" mapstructure:"sw360User"`
	SW360Password     string `json:"sw360Password" mapstructure:"sw360Password"`
	SW360Token        string `json:"sw360Token" mapstructure:"sw360Token"`

	common.ProxySettings `mapstructure:",squash"`

	RepositoryURL string `json:"repositoryUrl" mapstructure:"repositoryUrl"`
	TargetDir     string `json:"targetDir" mapstructure:"targetDir"`
	SourcesDir    string `json:"sourcesDir" mapstructure:"sourcesDir"`
	Sources       bool   `json:"sources" mapstructure:"sources"`
	ShowProgress  bool   `json:"showProgress" mapstructure:"showProgress"`

	ProjectName    string `json:"projectName" mapstructure:"projectName"`
	ProjectVersion string `json:"projectVersion" mapstructure:"projectVersion"`
	UpdateReleases bool   `json:"updateReleases" mapstructure:"updateReleases"`
	UploadSources  bool   `json:"uploadSources" mapstructure:"uploadSources"`

	// Timeout in seconds
	Timeout int `json:"timeout" mapstructure:"timeout"`
}

var RuntimeBaseConfig baseConfig

func ParseBaseConfig() error {
	RuntimeBaseConfig = baseConfig{}
	if err := viper.Unmarshal(&RuntimeBaseConfig); err != nil {
		return errors.Wrap(err, "could not parse config")
	}

	if RuntimeBaseConfig.SW360URL != "" {
		RuntimeBaseConfig.SW360URL = sanitizeURL(RuntimeBaseConfig.SW360URL)
	}
	if RuntimeBaseConfig.SW360TokenURL != "" {
		RuntimeBaseConfig.SW360TokenURL = sanitizeURL(RuntimeBaseConfig.SW360TokenURL)
	}
	if RuntimeBaseConfig.RepositoryURL != "" {
		repositoryURL, err := validateRepositoryURL(RuntimeBaseConfig.RepositoryURL)
		if err != nil {
			return err
		}
		RuntimeBaseConfig.RepositoryURL = repositoryURL
	}

	if RuntimeBaseConfig.TargetDir == "" {
		RuntimeBaseConfig.TargetDir = "."
	}
	if RuntimeBaseConfig.SourcesDir == "" {
		RuntimeBaseConfig.SourcesDir = RuntimeBaseConfig.TargetDir
	}

	if RuntimeBaseConfig.Timeout <= 0 {
		RuntimeBaseConfig.Timeout = 300
	}

	if RuntimeBaseConfig.UseProxy && RuntimeBaseConfig.Host == "" {
		return errors.New("useProxy is set but no proxyHost is configured")
	}

	return nil
}

// RepositoryURL returns the user configured maven repository, if any.
func RepositoryURL() utils.Optional[string] {
	if RuntimeBaseConfig.RepositoryURL == "" {
		return utils.EmptyOptional[string]()
	}
	return utils.NewOptional(RuntimeBaseConfig.RepositoryURL)
}

// ConnectionSettings builds the sw360 connection out of the runtime config.
// A missing password is looked up in the keyring.
func ConnectionSettings() (sw360.ConnectionSettings, error) {
	if RuntimeBaseConfig.SW360URL == "" {
		return sw360.ConnectionSettings{}, errors.New("sw360Url is required")
	}

	password := RuntimeBaseConfig.SW360Password
	if password == "" && RuntimeBaseConfig.SW360Token == "" && RuntimeBaseConfig.SW360User != "" {
		var err error
		password, err = getPasswordFromKeyring(RuntimeBaseConfig.SW360URL, RuntimeBaseConfig.SW360User)
		if err != nil {
			slog.Debug("could not get password from keyring", "err", err)
		}
	}

	return sw360.ConnectionSettings{
		URL:          RuntimeBaseConfig.SW360URL,
		TokenURL:     RuntimeBaseConfig.SW360TokenURL,
		ClientID:     RuntimeBaseConfig.SW360ClientID,
		ClientSecret: RuntimeBaseConfig.SW360ClientSecret,
		User:         RuntimeBaseConfig.SW360User,
		Password:     password,
		Token:        RuntimeBaseConfig.SW360Token,
		Proxy:        RuntimeBaseConfig.ProxySettings,
		Timeout:      time.Duration(RuntimeBaseConfig.Timeout) * time.Second,
	}, nil
}

func keyringService(sw360URL string) string {
	return "sw360bridge/" + sw360URL
}

func StorePasswordInKeyring(sw360URL, user, password string) error {
	return keyring.Set(keyringService(sanitizeURL(sw360URL)), user, password)
}

func getPasswordFromKeyring(sw360URL, user string) (string, error) {
	password, err := keyring.Get(keyringService(sw360URL), user)
	if err != nil {
		return "", err
	}
	return password, nil
}
