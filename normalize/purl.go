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

package normalize

import (
	"fmt"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/package-url/packageurl-go"
	"github.com/pkg/errors"
)

// BeautifyPURL returns namespace/name of the purl, or only the name if the
// purl has no namespace.
func BeautifyPURL(pURL string) (string, error) {
	p, err := packageurl.FromString(pURL)
	if err != nil {
		return pURL, err
	}
	if p.Namespace == "" {
		return p.Name, nil
	}
	return p.Namespace + "/" + p.Name, nil
}

func MavenCoordinatesFromPurl(pURL string) (dtos.ArtifactCoordinates, error) {
	p, err := packageurl.FromString(pURL)
	if err != nil {
		return dtos.ArtifactCoordinates{}, errors.Wrap(err, "could not parse purl")
	}

	if p.Type != packageurl.TypeMaven {
		return dtos.ArtifactCoordinates{}, fmt.Errorf("purl %s is not a maven purl", pURL)
	}

	if p.Namespace == "" || p.Name == "" || p.Version == "" {
		return dtos.ArtifactCoordinates{}, fmt.Errorf("purl %s needs a group id, an artifact id and a version", pURL)
	}

	return dtos.ArtifactCoordinates{
		GroupID:    p.Namespace,
		ArtifactID: p.Name,
		Version:    p.Version,
		Classifier: p.Qualifiers.Map()["classifier"],
	}, nil
}

// ReleaseName returns the name a release of the purl gets in the catalog.
// Maven artifacts use groupId:artifactId, everything else namespace/name.
func ReleaseName(pURL string) (string, error) {
	p, err := packageurl.FromString(pURL)
	if err != nil {
		return "", errors.Wrap(err, "could not parse purl")
	}
	if p.Type == packageurl.TypeMaven && p.Namespace != "" {
		return p.Namespace + ":" + p.Name, nil
	}
	return BeautifyPURL(pURL)
}
