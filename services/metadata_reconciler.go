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
	"net/http"
	"strings"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/shared"
	"github.com/l3montree-dev/sw360bridge/utils"
	"github.com/pkg/errors"
)

type ReconcilerConfig struct {
	UpdateReleases bool
	UploadSources  bool
}

// MetadataReconciler makes the sw360 catalog consistent with locally
// discovered licenses, releases and projects.
type MetadataReconciler struct {
	projectClientAdapter shared.ProjectClientAdapter
	licenseClientAdapter shared.LicenseClientAdapter
	releaseClientAdapter shared.ReleaseClientAdapter
	headerProvider       shared.HeaderProvider

	config ReconcilerConfig
}

var _ shared.MetadataUpdater = (*MetadataReconciler)(nil)

func NewMetadataReconciler(projectClientAdapter shared.ProjectClientAdapter, licenseClientAdapter shared.LicenseClientAdapter, releaseClientAdapter shared.ReleaseClientAdapter, headerProvider shared.HeaderProvider, config ReconcilerConfig) *MetadataReconciler {
	return &MetadataReconciler{
		projectClientAdapter: projectClientAdapter,
		licenseClientAdapter: licenseClientAdapter,
		releaseClientAdapter: releaseClientAdapter,
		headerProvider:       headerProvider,
		config:               config,
	}
}

func (m *MetadataReconciler) Config() ReconcilerConfig {
	return m.config
}

func (m *MetadataReconciler) IsUploadSources() bool {
	return m.config.UploadSources
}

// GetLicenses returns the sw360 counterparts of the given licenses. Licenses
// sw360 does not know are left out, they are never created.
func (m *MetadataReconciler) GetLicenses(ctx context.Context, licenses []dtos.License) ([]dtos.SW360License, error) {
	header, err := m.headerProvider.HTTPHeaders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not get sw360 authorization header")
	}

	res := make([]dtos.SW360License, 0, len(licenses))
	for _, license := range licenses {
		remote, ok := m.lookupLicense(ctx, license, header).Get()
		if !ok {
			continue
		}
		res = append(res, remote)
	}

	return utils.UniqBy(res, func(l dtos.SW360License) string {
		return strings.ToLower(l.ShortName)
	}), nil
}

func (m *MetadataReconciler) lookupLicense(ctx context.Context, license dtos.License, header http.Header) utils.Optional[dtos.SW360License] {
	available, err := m.licenseClientAdapter.IsLicenseAvailable(ctx, license.ID, header)
	if err != nil {
		slog.Debug("could not check license presence in SW360", "license", license.ID, "err", err)
		return utils.EmptyOptional[dtos.SW360License]()
	}
	if !available {
		slog.Debug("license unknown in SW360", "license", license.ID)
		return utils.EmptyOptional[dtos.SW360License]()
	}

	remote, err := m.licenseClientAdapter.GetLicenseByID(ctx, license.ID, header)
	if err != nil {
		slog.Debug("could not get license from SW360", "license", license.ID, "err", err)
		return utils.EmptyOptional[dtos.SW360License]()
	}
	if !remote.IsSet() {
		slog.Debug("license unknown in SW360", "license", license.ID)
		return remote
	}

	slog.Debug("license found in SW360", "license", license.ID)
	return remote
}

func (m *MetadataReconciler) GetOrCreateRelease(ctx context.Context, release dtos.SW360Release) (dtos.SW360Release, error) {
	return m.releaseClientAdapter.GetOrCreateRelease(ctx, release, m.config.UpdateReleases)
}

// CreateProject reuses the project with the given name and version or creates
// it and links the releases to it. Existing projects are not updated.
func (m *MetadataReconciler) CreateProject(ctx context.Context, name string, version string, releases []dtos.SW360Release) error {
	existing, err := m.projectClientAdapter.GetProjectIDByNameAndVersion(ctx, name, version)
	if err != nil {
		return errors.Wrapf(err, "could not look up project %s (%s)", name, version)
	}

	projectID, found := existing.Get()
	if found {
		slog.Debug("could not update project, because the endpoint is not available", "project", name, "version", version, "projectID", projectID)
	} else {
		projectID, err = m.projectClientAdapter.CreateProject(ctx, name, version)
		if err != nil {
			return errors.Wrapf(err, "could not create project %s (%s)", name, version)
		}
		slog.Info("created project", "project", name, "version", version, "projectID", projectID)
	}

	if err := m.projectClientAdapter.AttachReleasesToProject(ctx, projectID, releases); err != nil {
		return errors.Wrapf(err, "could not link releases to project %s", projectID)
	}
	return nil
}

func (m *MetadataReconciler) UploadAttachments(ctx context.Context, release dtos.SW360Release, attachments map[string]dtos.SW360AttachmentType) (dtos.SW360Release, error) {
	return m.releaseClientAdapter.UploadAttachments(ctx, release, attachments)
}
