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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"maps"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"slices"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/shared"
	"github.com/l3montree-dev/sw360bridge/utils"
	"github.com/pkg/errors"
)

// ReleaseAdapter manages releases and their components. A release is
// identified by its name, which is the component name, and its version.
type ReleaseAdapter struct {
	client *Client
}

var _ shared.ReleaseClientAdapter = (*ReleaseAdapter)(nil)

func NewReleaseAdapter(client *Client) *ReleaseAdapter {
	return &ReleaseAdapter{client: client}
}

func (a *ReleaseAdapter) GetOrCreateRelease(ctx context.Context, release dtos.SW360Release, updateExisting bool) (dtos.SW360Release, error) {
	component, err := a.getOrCreateComponent(ctx, release.Name)
	if err != nil {
		return dtos.SW360Release{}, err
	}

	existing, found := findRelease(component, release.Version).Get()
	switch {
	case !found:
		return a.createRelease(ctx, component.ID(), release)
	case updateExisting:
		return a.updateRelease(ctx, existing.ID(), release)
	default:
		slog.Debug("release already exists", "release", release.Name, "version", release.Version)
		return a.getRelease(ctx, existing.ID())
	}
}

func findRelease(component dtos.SW360Component, version string) utils.Optional[dtos.SW360Release] {
	release, ok := utils.Find(component.Releases(), func(r dtos.SW360Release) bool {
		return r.Version == version
	})
	if !ok {
		return utils.EmptyOptional[dtos.SW360Release]()
	}
	return utils.NewOptional(release)
}

func (a *ReleaseAdapter) getOrCreateComponent(ctx context.Context, name string) (dtos.SW360Component, error) {
	u := a.client.url("components")
	u.RawQuery = url.Values{"name": {name}}.Encode()

	var list dtos.SW360ComponentList
	if err := a.client.getJSON(ctx, u, nil, &list); err != nil {
		return dtos.SW360Component{}, err
	}

	// the name filter of sw360 is a prefix search
	if match, ok := utils.Find(list.Embedded.Components, func(c dtos.SW360Component) bool {
		return c.Name == name
	}); ok {
		var component dtos.SW360Component
		if err := a.client.getJSON(ctx, a.client.url("components", match.ID()), nil, &component); err != nil {
			return dtos.SW360Component{}, err
		}
		return component, nil
	}

	var created dtos.SW360Component
	err := a.client.sendJSON(ctx, http.MethodPost, a.client.url("components"), dtos.SW360Component{
		Name:          name,
		ComponentType: dtos.SW360ComponentTypeOSS,
	}, &created)
	if err != nil {
		return dtos.SW360Component{}, err
	}
	slog.Info("created component", "component", name, "componentID", created.ID())
	return created, nil
}

func (a *ReleaseAdapter) getRelease(ctx context.Context, id string) (dtos.SW360Release, error) {
	var release dtos.SW360Release
	if err := a.client.getJSON(ctx, a.client.url("releases", id), nil, &release); err != nil {
		return dtos.SW360Release{}, err
	}
	return release, nil
}

func (a *ReleaseAdapter) createRelease(ctx context.Context, componentID string, release dtos.SW360Release) (dtos.SW360Release, error) {
	payload := release
	payload.SW360HalResource = dtos.SW360HalResource{}
	payload.Embedded = nil
	payload.ComponentID = componentID

	var created dtos.SW360Release
	if err := a.client.sendJSON(ctx, http.MethodPost, a.client.url("releases"), payload, &created); err != nil {
		return dtos.SW360Release{}, err
	}
	slog.Info("created release", "release", release.Name, "version", release.Version, "releaseID", created.ID())
	return created, nil
}

func (a *ReleaseAdapter) updateRelease(ctx context.Context, id string, local dtos.SW360Release) (dtos.SW360Release, error) {
	remote, err := a.getRelease(ctx, id)
	if err != nil {
		return dtos.SW360Release{}, err
	}

	payload := remote.MergeWith(local)
	payload.SW360HalResource = dtos.SW360HalResource{}
	payload.Embedded = nil

	var updated dtos.SW360Release
	if err := a.client.sendJSON(ctx, http.MethodPatch, a.client.url("releases", id), payload, &updated); err != nil {
		return dtos.SW360Release{}, err
	}
	slog.Info("updated release", "release", local.Name, "version", local.Version, "releaseID", id)
	return updated, nil
}

// UploadAttachments uploads every file that is not yet attached to the
// release, matched by file name, and returns the release as sw360 sees it
// afterwards.
func (a *ReleaseAdapter) UploadAttachments(ctx context.Context, release dtos.SW360Release, attachments map[string]dtos.SW360AttachmentType) (dtos.SW360Release, error) {
	attached := utils.Map(release.Attachments(), func(attachment dtos.SW360Attachment) string {
		return attachment.Filename
	})

	for _, path := range slices.Sorted(maps.Keys(attachments)) {
		if utils.Contains(attached, filepath.Base(path)) {
			slog.Debug("attachment already exists", "file", filepath.Base(path), "releaseID", release.ID())
			continue
		}
		if err := a.uploadAttachment(ctx, release.ID(), path, attachments[path]); err != nil {
			return dtos.SW360Release{}, err
		}
		slog.Info("uploaded attachment", "file", path, "releaseID", release.ID())
	}

	return a.getRelease(ctx, release.ID())
}

func (a *ReleaseAdapter) uploadAttachment(ctx context.Context, releaseID string, path string, attachmentType dtos.SW360AttachmentType) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not open attachment")
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	meta, err := json.Marshal(dtos.SW360Attachment{
		Filename:       filepath.Base(path),
		AttachmentType: attachmentType,
	})
	if err != nil {
		return errors.Wrap(err, "could not marshal attachment")
	}

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Disposition", `form-data; name="attachment"`)
	metaHeader.Set("Content-Type", "application/json")
	metaPart, err := writer.CreatePart(metaHeader)
	if err != nil {
		return errors.Wrap(err, "could not create multipart body")
	}
	if _, err := metaPart.Write(meta); err != nil {
		return errors.Wrap(err, "could not create multipart body")
	}

	filePart, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "could not create multipart body")
	}
	if _, err := io.Copy(filePart, file); err != nil {
		return errors.Wrap(err, "could not read attachment")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "could not create multipart body")
	}

	return a.client.sendMultipart(ctx, a.client.url("releases", releaseID, "attachments"), writer.FormDataContentType(), body, nil)
}
