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

package shared

import (
	"context"
	"net/http"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/utils"
)

type DownloadHelper interface {
	// DownloadFile stores the response body of url as targetDir/fileName and
	// returns the path of the written file.
	DownloadFile(ctx context.Context, url string, targetDir string, fileName string) (string, error)
}

type ArtifactRequester interface {
	Resolve(ctx context.Context, coordinates dtos.ArtifactCoordinates, targetDirectory string, classifierInformation dtos.ClassifierInformation) utils.Optional[string]
}

type HeaderProvider interface {
	HTTPHeaders(ctx context.Context) (http.Header, error)
}

type LicenseClientAdapter interface {
	IsLicenseAvailable(ctx context.Context, id string, header http.Header) (bool, error)
	GetLicenseByID(ctx context.Context, id string, header http.Header) (utils.Optional[dtos.SW360License], error)
}

type ReleaseClientAdapter interface {
	GetOrCreateRelease(ctx context.Context, release dtos.SW360Release, updateExisting bool) (dtos.SW360Release, error)
	UploadAttachments(ctx context.Context, release dtos.SW360Release, attachments map[string]dtos.SW360AttachmentType) (dtos.SW360Release, error)
}

type ProjectClientAdapter interface {
	GetProjectIDByNameAndVersion(ctx context.Context, name string, version string) (utils.Optional[string], error)
	CreateProject(ctx context.Context, name string, version string) (string, error)
	AttachReleasesToProject(ctx context.Context, projectID string, releases []dtos.SW360Release) error
}

type MetadataUpdater interface {
	GetLicenses(ctx context.Context, licenses []dtos.License) ([]dtos.SW360License, error)
	GetOrCreateRelease(ctx context.Context, release dtos.SW360Release) (dtos.SW360Release, error)
	CreateProject(ctx context.Context, name string, version string, releases []dtos.SW360Release) error
	UploadAttachments(ctx context.Context, release dtos.SW360Release, attachments map[string]dtos.SW360AttachmentType) (dtos.SW360Release, error)
	IsUploadSources() bool
}
