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

package commands

import (
	"log/slog"

	"github.com/l3montree-dev/sw360bridge/cmd/sw360bridge/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "login",
		Args:              cobra.NoArgs,
		Short:             "Store the SW360 password in the keyring",
		DisableAutoGenTag: true,
		Long: `Store the SW360 password in the keyring of the operating system.

The password is stored per SW360 url and user. 'sync' uses it whenever no
password is configured.`,
		Example: `  sw360bridge login --sw360Url https://sw360.example.com/resource/api --sw360User admin@sw360.org --sw360Password 12345`,
		RunE:    runLogin,
	}

	cmd.Flags().String("sw360Url", "", "The url of the SW360 rest api (required)")
	cmd.Flags().String("sw360User", "", "The SW360 user (required)")
	cmd.Flags().String("sw360Password", "", "The SW360 password (required)")
	cmd.MarkFlagRequired("sw360Url")      // nolint:errcheck
	cmd.MarkFlagRequired("sw360User")     // nolint:errcheck
	cmd.MarkFlagRequired("sw360Password") // nolint:errcheck
	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	err := config.StorePasswordInKeyring(config.RuntimeBaseConfig.SW360URL, config.RuntimeBaseConfig.SW360User, config.RuntimeBaseConfig.SW360Password)
	if err != nil {
		return errors.Wrap(err, "could not store password in keyring")
	}

	slog.Info("password stored in keyring", "url", config.RuntimeBaseConfig.SW360URL, "user", config.RuntimeBaseConfig.SW360User)
	return nil
}
