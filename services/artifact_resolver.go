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
	"path/filepath"
	"strings"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/shared"
	"github.com/l3montree-dev/sw360bridge/utils"
)

const (
	groupIDPlaceholder    = "{groupId}"
	artifactIDPlaceholder = "{artifactId}"
	versionPlaceholder    = "{version}"

	mavenRepositoryLayout = groupIDPlaceholder + "/" + artifactIDPlaceholder + "/" + versionPlaceholder + "/"

	MavenCentralURL = "https://repo1.maven.org/maven2/" + mavenRepositoryLayout
)

type artifactSource struct {
	name  string
	fetch func(ctx context.Context, coordinates dtos.ArtifactCoordinates, targetDirectory string, jarBaseName string) utils.Optional[string]
}

// ArtifactResolver downloads jar files of maven artifacts. The local
// directory, the user configured repository and maven central are asked in
// that order, the first hit wins.
type ArtifactResolver struct {
	downloadHelper      shared.DownloadHelper
	sourceRepositoryURL utils.Optional[string]
	publicRepositoryURL string
}

var _ shared.ArtifactRequester = (*ArtifactResolver)(nil)

func NewArtifactResolver(downloadHelper shared.DownloadHelper, sourceRepositoryURL utils.Optional[string]) *ArtifactResolver {
	return &ArtifactResolver{
		downloadHelper:      downloadHelper,
		sourceRepositoryURL: sourceRepositoryURL,
		publicRepositoryURL: MavenCentralURL,
	}
}

// Resolve returns the path of the requested jar or an empty optional if no
// source could provide it. It never fails, the caller decides whether a
// missing artifact is fatal.
func (r *ArtifactResolver) Resolve(ctx context.Context, coordinates dtos.ArtifactCoordinates, targetDirectory string, classifierInformation dtos.ClassifierInformation) utils.Optional[string] {
	jarBaseName := dtos.ExpectedJarBaseName(coordinates, classifierInformation)

	for _, source := range r.sources() {
		if file := source.fetch(ctx, coordinates, targetDirectory, jarBaseName); file.IsSet() {
			return file
		}
		slog.Debug("artifact not available", "source", source.name, "artifact", coordinates.String())
	}

	return utils.EmptyOptional[string]()
}

func (r *ArtifactResolver) sources() []artifactSource {
	sources := []artifactSource{{name: "local directory", fetch: r.fromLocalDirectory}}

	if repositoryURL, ok := r.sourceRepositoryURL.Get(); ok {
		sources = append(sources, artifactSource{
			name:  "user repository",
			fetch: r.fromRepository(repositoryTemplate(repositoryURL)),
		})
	}

	return append(sources, artifactSource{
		name:  "public repository",
		fetch: r.fromRepository(normalizeTemplate(r.publicRepositoryURL)),
	})
}

func (r *ArtifactResolver) fromLocalDirectory(_ context.Context, _ dtos.ArtifactCoordinates, targetDirectory string, jarBaseName string) utils.Optional[string] {
	localJarFile := filepath.Join(targetDirectory, jarBaseName)
	if utils.FileExists(localJarFile) {
		slog.Info("file already exists and won't be downloaded again", "file", localJarFile)
		return utils.NewOptional(localJarFile)
	}
	return utils.EmptyOptional[string]()
}

func (r *ArtifactResolver) fromRepository(template string) func(ctx context.Context, coordinates dtos.ArtifactCoordinates, targetDirectory string, jarBaseName string) utils.Optional[string] {
	return func(ctx context.Context, coordinates dtos.ArtifactCoordinates, targetDirectory string, jarBaseName string) utils.Optional[string] {
		jarURL := expandTemplate(template, coordinates, jarBaseName)
		return r.tryFileDownload(ctx, jarURL, targetDirectory, jarBaseName)
	}
}

func (r *ArtifactResolver) tryFileDownload(ctx context.Context, jarURL string, targetDirectory string, jarBaseName string) utils.Optional[string] {
	slog.Info("downloading artifact", "url", jarURL)

	file, err := r.downloadHelper.DownloadFile(ctx, jarURL, targetDirectory, jarBaseName)
	if err != nil {
		slog.Warn("failed to find jar", "url", jarURL, "err", err)
		return utils.EmptyOptional[string]()
	}
	if file == "" {
		return utils.EmptyOptional[string]()
	}
	return utils.NewOptional(file)
}

// repositoryTemplate turns a user supplied repository base url into a
// template. Urls without placeholders get the standard maven layout appended.
func repositoryTemplate(repositoryURL string) string {
	template := normalizeTemplate(repositoryURL)
	if !strings.Contains(template, groupIDPlaceholder) {
		template += mavenRepositoryLayout
	}
	return template
}

func normalizeTemplate(template string) string {
	return strings.TrimRight(template, "/") + "/"
}

// expandTemplate substitutes the coordinates into the template. Dots in the
// group id delimit directories.
func expandTemplate(template string, coordinates dtos.ArtifactCoordinates, fileName string) string {
	expanded := strings.NewReplacer(
		groupIDPlaceholder, strings.ReplaceAll(coordinates.GroupID, ".", "/"),
		artifactIDPlaceholder, coordinates.ArtifactID,
		versionPlaceholder, coordinates.Version,
	).Replace(normalizeTemplate(template))

	return expanded + fileName
}
