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
	"github.com/spf13/cobra"
)

func addProxyFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("useProxy", false, "Use the configured proxy instead of the HTTP_PROXY environment variables")
	cmd.Flags().String("proxyHost", "", "The proxy host")
	cmd.Flags().Int("proxyPort", 3128, "The proxy port")
}

func addRepositoryFlags(cmd *cobra.Command) {
	cmd.Flags().String("repositoryUrl", "", "Base url of a maven repository which is asked before maven central, e.g. https://nexus.example.com/repository/maven-public")
	cmd.Flags().Bool("showProgress", false, "Show a progress bar while downloading")
	addProxyFlags(cmd)
}

func addSW360Flags(cmd *cobra.Command) {
	cmd.Flags().String("sw360Url", "", "The url of the SW360 rest api, e.g. https://sw360.example.com/resource/api")
	cmd.Flags().String("sw360TokenUrl", "", "The oauth2 token url of the SW360 authorization server, e.g. https://sw360.example.com/authorization/oauth/token")
	cmd.Flags().String("sw360ClientId", "", "The oauth2 client id")
	cmd.Flags().String("sw360ClientSecret", "", "The oauth2 client secret")
	cmd.Flags().String("sw360User", "", "The SW360 user")
	cmd.Flags().String("sw360Password", "", "The SW360 password. Falls back to the password stored with 'login'")
	cmd.Flags().String("sw360Token", "", "A SW360 rest api token. Used instead of oauth2 if set")
	cmd.Flags().Int("timeout", 300, "Timeout in seconds for the whole run")
}
