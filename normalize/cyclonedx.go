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
	"io"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/utils"
	"github.com/package-url/packageurl-go"
	"github.com/pkg/errors"
)

func ReadBOM(r io.Reader) (*cdx.BOM, error) {
	var bom cdx.BOM
	if err := cdx.NewBOMDecoder(r, cdx.BOMFileFormatJSON).Decode(&bom); err != nil {
		return nil, errors.Wrap(err, "could not decode cyclonedx bom")
	}
	return &bom, nil
}

// ComponentsForSync returns all components of the bom including nested ones.
// The root component of the metadata is excluded. Components without a
// version cannot become a release and are dropped. Duplicates are removed
// by purl, falling back to name@version.
func ComponentsForSync(bom *cdx.BOM) []cdx.Component {
	if bom == nil || bom.Components == nil {
		return nil
	}

	rootRef := ""
	if bom.Metadata != nil && bom.Metadata.Component != nil {
		rootRef = bom.Metadata.Component.BOMRef
	}

	var flat []cdx.Component
	var walk func(components []cdx.Component)
	walk = func(components []cdx.Component) {
		for _, c := range components {
			if rootRef == "" || c.BOMRef != rootRef {
				flat = append(flat, c)
			}
			if c.Components != nil {
				walk(*c.Components)
			}
		}
	}
	walk(*bom.Components)

	flat = utils.Filter(flat, func(c cdx.Component) bool {
		return componentVersion(c) != ""
	})

	return utils.UniqBy(flat, func(c cdx.Component) string {
		if c.PackageURL != "" {
			return c.PackageURL
		}
		return c.Name + "@" + c.Version
	})
}

// LicensesFromComponent extracts the declared licenses. Expressions are
// split into their license identifiers.
func LicensesFromComponent(component cdx.Component) []dtos.License {
	if component.Licenses == nil {
		return nil
	}

	var res []dtos.License
	for _, choice := range *component.Licenses {
		switch {
		case choice.License != nil && choice.License.ID != "":
			res = append(res, dtos.License{ID: choice.License.ID, Name: choice.License.Name})
		case choice.License != nil && choice.License.Name != "":
			res = append(res, dtos.License{ID: choice.License.Name, Name: choice.License.Name})
		case choice.Expression != "":
			for _, id := range licenseIDsFromExpression(choice.Expression) {
				res = append(res, dtos.License{ID: id})
			}
		}
	}

	return utils.UniqBy(res, func(l dtos.License) string { return l.ID })
}

func licenseIDsFromExpression(expression string) []string {
	expression = strings.NewReplacer("(", " ", ")", " ").Replace(expression)

	var ids []string
	skipNext := false
	for _, token := range strings.Fields(expression) {
		if skipNext {
			// the token after WITH is an exception, not a license
			skipNext = false
			continue
		}
		switch strings.ToUpper(token) {
		case "AND", "OR":
			continue
		case "WITH":
			skipNext = true
			continue
		}
		ids = append(ids, token)
	}
	return ids
}

// ReleaseFromComponent builds the local release descriptor of a component.
// The remote license ids are filled in later once the licenses are known to
// the catalog.
func ReleaseFromComponent(component cdx.Component) dtos.SW360Release {
	name := component.Name
	if component.Group != "" {
		name = component.Group + ":" + component.Name
	}

	release := dtos.SW360Release{
		Name:    name,
		Version: componentVersion(component),
	}

	if component.PackageURL != "" {
		if releaseName, err := ReleaseName(component.PackageURL); err == nil {
			release.Name = releaseName
		}
		release.ExternalIDs = map[string]string{
			dtos.SW360ExternalIDPackageURL: component.PackageURL,
		}
	}

	if component.ExternalReferences != nil {
		for _, ref := range *component.ExternalReferences {
			if ref.Type == cdx.ERTypeDistribution && release.BinaryDownloadURL == "" {
				release.BinaryDownloadURL = ref.URL
			}
			if ref.Type == cdx.ERTypeVCS && release.SourceCodeDownloadURL == "" {
				release.SourceCodeDownloadURL = ref.URL
			}
		}
	}

	return release
}

func componentVersion(component cdx.Component) string {
	if component.Version != "" {
		return component.Version
	}
	if component.PackageURL == "" {
		return ""
	}
	// some generators only put the version into the purl
	p, err := packageurl.FromString(component.PackageURL)
	if err != nil {
		return ""
	}
	return p.Version
}
