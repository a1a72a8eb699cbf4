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
	"log/slog"
	"net/http"
	"net/url"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/shared"
	"github.com/l3montree-dev/sw360bridge/utils"
)

type ProjectAdapter struct {
	client *Client
}

var _ shared.ProjectClientAdapter = (*ProjectAdapter)(nil)

func NewProjectAdapter(client *Client) *ProjectAdapter {
	return &ProjectAdapter{client: client}
}

func (a *ProjectAdapter) GetProjectIDByNameAndVersion(ctx context.Context, name string, version string) (utils.Optional[string], error) {
	u := a.client.url("projects")
	u.RawQuery = url.Values{"name": {name}}.Encode()

	var list dtos.SW360ProjectList
	if err := a.client.getJSON(ctx, u, nil, &list); err != nil {
		return utils.EmptyOptional[string](), err
	}

	project, ok := utils.Find(list.Embedded.Projects, func(p dtos.SW360Project) bool {
		return p.Name == name && p.Version == version
	})
	if !ok {
		return utils.EmptyOptional[string](), nil
	}
	return utils.NewOptional(project.ID()), nil
}

func (a *ProjectAdapter) CreateProject(ctx context.Context, name string, version string) (string, error) {
	var created dtos.SW360Project
	err := a.client.sendJSON(ctx, http.MethodPost, a.client.url("projects"), dtos.SW360Project{
		Name:        name,
		Version:     version,
		ProjectType: dtos.SW360ProjectTypeProduct,
		Visibility:  dtos.SW360VisibilityEveryone,
	}, &created)
	if err != nil {
		return "", err
	}
	return created.ID(), nil
}

// AttachReleasesToProject links the releases which are not linked yet.
// Existing links are kept.
func (a *ProjectAdapter) AttachReleasesToProject(ctx context.Context, projectID string, releases []dtos.SW360Release) error {
	var linked dtos.SW360ReleaseList
	if err := a.client.getJSON(ctx, a.client.url("projects", projectID, "releases"), nil, &linked); err != nil {
		return err
	}

	releaseID := func(r dtos.SW360Release) string { return r.ID() }
	missing := utils.UniqBy(utils.CompareSlices(releases, linked.Embedded.Releases, releaseID).OnlyInA, releaseID)
	if len(missing) == 0 {
		slog.Debug("all releases already linked", "projectID", projectID)
		return nil
	}

	links := utils.Map(missing, func(r dtos.SW360Release) string {
		return a.client.ResourceURL("releases", r.ID())
	})
	if err := a.client.sendJSON(ctx, http.MethodPost, a.client.url("projects", projectID, "releases"), links, nil); err != nil {
		return err
	}

	slog.Info("linked releases to project", "projectID", projectID, "amount", len(links))
	return nil
}
