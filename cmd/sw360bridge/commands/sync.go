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
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/sw360bridge/cmd/sw360bridge/config"
	"github.com/l3montree-dev/sw360bridge/normalize"
	"github.com/l3montree-dev/sw360bridge/services"
	"github.com/l3montree-dev/sw360bridge/sw360"
	"github.com/l3montree-dev/sw360bridge/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "sync <sbom.json>",
		Args:              cobra.ExactArgs(1),
		Short:             "Synchronize a CycloneDX SBOM into SW360",
		DisableAutoGenTag: true,
		Long: `Synchronize a CycloneDX SBOM into SW360.

For every component of the SBOM the release is looked up in SW360 and created
if it does not exist. Only licenses SW360 already knows are linked to the
release. With --uploadSources the sources jar of every maven component is
downloaded and attached. Finally all releases are linked to the project, which
is created if needed. Project name and version default to the root component
of the SBOM.`,
		Example: `  # Synchronize with oauth2 credentials
  sw360bridge sync bom.json --sw360Url https://sw360.example.com/resource/api --sw360TokenUrl https://sw360.example.com/authorization/oauth/token --sw360ClientId trusted-sw360-client --sw360ClientSecret secret --sw360User admin@sw360.org

  # Synchronize with an api token and upload the sources
  sw360bridge sync bom.json --sw360Url https://sw360.example.com/resource/api --sw360Token abc --uploadSources --sourcesDir ./sources`,
		RunE: runSync,
	}

	cmd.Flags().String("projectName", "", "The name of the SW360 project. Defaults to the root component of the SBOM")
	cmd.Flags().String("projectVersion", "", "The version of the SW360 project. Defaults to the root component of the SBOM")
	cmd.Flags().Bool("updateReleases", false, "Update existing releases with the information from the SBOM")
	cmd.Flags().Bool("uploadSources", false, "Download the sources jar of maven components and attach it to the release")
	cmd.Flags().String("sourcesDir", "", "The directory source jars are downloaded to. Defaults to the current directory")
	addSW360Flags(cmd)
	addRepositoryFlags(cmd)
	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
	bom, err := readBOM(args[0])
	if err != nil {
		return err
	}

	projectName, projectVersion, err := projectOf(bom)
	if err != nil {
		return err
	}

	settings, err := config.ConnectionSettings()
	if err != nil {
		return err
	}
	connection, err := sw360.NewConnectionConfiguration(settings)
	if err != nil {
		return err
	}

	reconciler := services.NewMetadataReconciler(
		connection.ProjectClientAdapter(),
		connection.LicenseClientAdapter(),
		connection.ReleaseClientAdapter(),
		connection,
		services.ReconcilerConfig{
			UpdateReleases: config.RuntimeBaseConfig.UpdateReleases,
			UploadSources:  config.RuntimeBaseConfig.UploadSources,
		},
	)
	resolver := services.NewArtifactResolver(
		services.NewHTTPHelper(config.RuntimeBaseConfig.ProxySettings, config.RuntimeBaseConfig.ShowProgress),
		config.RepositoryURL(),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(config.RuntimeBaseConfig.Timeout)*time.Second)
	defer cancel()

	var s *spinner.Spinner
	if !utils.RunsInCI() {
		s = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = " sw360bridge: synchronizing " + projectName
		s.Start()
	}

	result, err := services.NewSBOMSyncService(reconciler, resolver, config.RuntimeBaseConfig.SourcesDir).Sync(ctx, bom, projectName, projectVersion)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		slog.Error("sync failed", "synced", len(result.Releases), "err", err)
		return err
	}

	for _, purl := range result.MissingSources {
		slog.Warn("no sources uploaded", "purl", purl)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSyncResult(result))
	return nil
}

func renderSyncResult(result services.SyncResult) string {
	tw := table.NewWriter()
	tw.SetAllowedRowLength(130)
	tw.SetTitle(fmt.Sprintf("%s (%s)", result.ProjectName, result.ProjectVersion))
	tw.AppendHeader(table.Row{"Release", "Version", "Licenses", "Attachments", "ID"})

	for _, release := range result.Releases {
		tw.AppendRow(table.Row{
			release.Name,
			release.Version,
			strings.Join(release.MainLicenseIDs, ", "),
			len(release.Attachments()),
			text.FgGreen.Sprint(release.ID()),
		})
	}
	tw.AppendFooter(table.Row{"", "", "", "Total", len(result.Releases)})
	return tw.Render()
}

func readBOM(path string) (*cdx.BOM, error) {
	if err := config.IsValidPath(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open sbom")
	}
	defer file.Close()

	return normalize.ReadBOM(file)
}

func projectOf(bom *cdx.BOM) (string, string, error) {
	name := config.RuntimeBaseConfig.ProjectName
	version := config.RuntimeBaseConfig.ProjectVersion

	if bom.Metadata != nil && bom.Metadata.Component != nil {
		if name == "" {
			name = bom.Metadata.Component.Name
		}
		if version == "" {
			version = bom.Metadata.Component.Version
		}
	}

	if name == "" || version == "" {
		return "", "", errors.New("projectName and projectVersion are required if the sbom has no root component")
	}
	return name, version, nil
}
