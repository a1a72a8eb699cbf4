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
	"fmt"

	"github.com/l3montree-dev/sw360bridge/cmd/sw360bridge/config"
	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/normalize"
	"github.com/l3montree-dev/sw360bridge/services"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewFetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "fetch <purl>",
		Args:              cobra.ExactArgs(1),
		Short:             "Download the jar of a maven artifact",
		DisableAutoGenTag: true,
		Long: `Download the jar of a maven artifact.

The target directory is checked first. If the jar is not there, the repository
given with --repositoryUrl and afterwards maven central are asked. The path of
the jar is printed to stdout. The command fails if no source has the jar.`,
		Example: `  # Download a jar into the current directory
  sw360bridge fetch pkg:maven/org.apache.commons/commons-lang3@3.14.0

  # Download the sources jar through a company mirror
  sw360bridge fetch pkg:maven/org.apache.commons/commons-lang3@3.14.0 --sources --repositoryUrl https://nexus.example.com/repository/maven-public`,
		RunE: runFetch,
	}

	cmd.Flags().Bool("sources", false, "Download the sources jar instead of the binary jar")
	cmd.Flags().String("targetDir", ".", "The directory the jar is stored in")
	addRepositoryFlags(cmd)
	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	coordinates, err := normalize.MavenCoordinatesFromPurl(args[0])
	if err != nil {
		return err
	}

	classifierInformation := dtos.DefaultJar
	if config.RuntimeBaseConfig.Sources {
		classifierInformation = dtos.DefaultSourceJar
	}

	resolver := services.NewArtifactResolver(
		services.NewHTTPHelper(config.RuntimeBaseConfig.ProxySettings, config.RuntimeBaseConfig.ShowProgress),
		config.RepositoryURL(),
	)

	file, ok := resolver.Resolve(cmd.Context(), coordinates, config.RuntimeBaseConfig.TargetDir, classifierInformation).Get()
	if !ok {
		return errors.Errorf("could not find %s in any repository", dtos.ExpectedJarBaseName(coordinates, classifierInformation))
	}

	fmt.Fprintln(cmd.OutOrStdout(), file)
	return nil
}
