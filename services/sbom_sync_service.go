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

package services

import (
	"context"
	"log/slog"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/normalize"
	"github.com/l3montree-dev/sw360bridge/shared"
	"github.com/l3montree-dev/sw360bridge/utils"
	"github.com/pkg/errors"
)

type SyncResult struct {
	ProjectName    string
	ProjectVersion string
	Releases       []dtos.SW360Release
	// purls of the components whose source jar could not be found
	MissingSources []string
}

// SBOMSyncService pushes the components of a cyclonedx bom into sw360:
// licenses, releases, source attachments and finally the project.
type SBOMSyncService struct {
	updater    shared.MetadataUpdater
	resolver   shared.ArtifactRequester
	sourcesDir string
}

func NewSBOMSyncService(updater shared.MetadataUpdater, resolver shared.ArtifactRequester, sourcesDir string) *SBOMSyncService {
	return &SBOMSyncService{
		updater:    updater,
		resolver:   resolver,
		sourcesDir: sourcesDir,
	}
}

// Sync aborts on the first failed write. Releases created until then stay in
// sw360.
func (s *SBOMSyncService) Sync(ctx context.Context, bom *cdx.BOM, projectName string, projectVersion string) (SyncResult, error) {
	result := SyncResult{ProjectName: projectName, ProjectVersion: projectVersion}

	components := normalize.ComponentsForSync(bom)
	slog.Info("syncing components", "amount", len(components), "project", projectName, "version", projectVersion)

	for _, component := range components {
		release, err := s.syncComponent(ctx, component, &result)
		if err != nil {
			return result, err
		}
		result.Releases = append(result.Releases, release)
	}

	if err := s.updater.CreateProject(ctx, projectName, projectVersion, result.Releases); err != nil {
		return result, errors.Wrap(err, "could not create project")
	}

	return result, nil
}

func (s *SBOMSyncService) syncComponent(ctx context.Context, component cdx.Component, result *SyncResult) (dtos.SW360Release, error) {
	licenses, err := s.updater.GetLicenses(ctx, normalize.LicensesFromComponent(component))
	if err != nil {
		return dtos.SW360Release{}, errors.Wrapf(err, "could not get licenses of %s", component.Name)
	}

	local := normalize.ReleaseFromComponent(component)
	local.MainLicenseIDs = utils.Map(licenses, func(l dtos.SW360License) string {
		return l.ShortName
	})

	release, err := s.updater.GetOrCreateRelease(ctx, local)
	if err != nil {
		return dtos.SW360Release{}, errors.Wrapf(err, "could not get or create release %s (%s)", local.Name, local.Version)
	}

	if !s.updater.IsUploadSources() || !strings.HasPrefix(component.PackageURL, "pkg:maven/") {
		return release, nil
	}

	coordinates, err := normalize.MavenCoordinatesFromPurl(component.PackageURL)
	if err != nil {
		slog.Warn("could not read maven coordinates", "purl", component.PackageURL, "err", err)
		return release, nil
	}

	sourceJar, ok := s.resolver.Resolve(ctx, coordinates, s.sourcesDir, dtos.DefaultSourceJar).Get()
	if !ok {
		slog.Warn("no source jar found, skipping upload", "artifact", coordinates.String())
		result.MissingSources = append(result.MissingSources, component.PackageURL)
		return release, nil
	}

	release, err = s.updater.UploadAttachments(ctx, release, map[string]dtos.SW360AttachmentType{
		sourceJar: dtos.SW360AttachmentTypeSource,
	})
	if err != nil {
		return dtos.SW360Release{}, errors.Wrapf(err, "could not upload sources of %s", coordinates.String())
	}
	return release, nil
}
