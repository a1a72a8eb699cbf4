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
	"net/http"
	"strings"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/shared"
	"github.com/l3montree-dev/sw360bridge/utils"
)

type LicenseAdapter struct {
	client *Client
}

var _ shared.LicenseClientAdapter = (*LicenseAdapter)(nil)

func NewLicenseAdapter(client *Client) *LicenseAdapter {
	return &LicenseAdapter{client: client}
}

// IsLicenseAvailable reports whether sw360 knows a license with the short
// name id. The comparison ignores case.
func (a *LicenseAdapter) IsLicenseAvailable(ctx context.Context, id string, header http.Header) (bool, error) {
	shortName, err := a.remoteShortName(ctx, id, header)
	if err != nil {
		return false, err
	}
	return shortName.IsSet(), nil
}

// GetLicenseByID looks the license up under the short name sw360 uses for
// id, so a local "apache-2.0" finds the remote "Apache-2.0".
func (a *LicenseAdapter) GetLicenseByID(ctx context.Context, id string, header http.Header) (utils.Optional[dtos.SW360License], error) {
	shortName, err := a.remoteShortName(ctx, id, header)
	if err != nil {
		return utils.EmptyOptional[dtos.SW360License](), err
	}

	var license dtos.SW360License
	err = a.client.getJSON(ctx, a.client.url("licenses", shortName.OrElse(id)), header, &license)
	if isNotFound(err) {
		return utils.EmptyOptional[dtos.SW360License](), nil
	}
	if err != nil {
		return utils.EmptyOptional[dtos.SW360License](), err
	}
	return utils.NewOptional(license), nil
}

// remoteShortName matches id against the cached license list ignoring case.
func (a *LicenseAdapter) remoteShortName(ctx context.Context, id string, header http.Header) (utils.Optional[string], error) {
	var list dtos.SW360LicenseList
	if err := a.client.getJSON(ctx, a.client.url("licenses"), header, &list); err != nil {
		return utils.EmptyOptional[string](), err
	}

	license, found := utils.Find(list.Embedded.Licenses, func(l dtos.SW360License) bool {
		return strings.EqualFold(l.ShortName, id)
	})
	if !found {
		return utils.EmptyOptional[string](), nil
	}
	return utils.NewOptional(license.ShortName), nil
}
