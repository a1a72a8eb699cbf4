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

package dtos

import (
	"maps"

	"github.com/l3montree-dev/sw360bridge/utils"
)

type SW360AttachmentType string

const (
	SW360AttachmentTypeSource                  SW360AttachmentType = "SOURCE"
	SW360AttachmentTypeSourceSelf              SW360AttachmentType = "SOURCE_SELF"
	SW360AttachmentTypeBinary                  SW360AttachmentType = "BINARY"
	SW360AttachmentTypeBinarySelf              SW360AttachmentType = "BINARY_SELF"
	SW360AttachmentTypeDocument                SW360AttachmentType = "DOCUMENT"
	SW360AttachmentTypeClearingReport          SW360AttachmentType = "CLEARING_REPORT"
	SW360AttachmentTypeComponentLicenseInfoXML SW360AttachmentType = "COMPONENT_LICENSE_INFO_XML"
	SW360AttachmentTypeOther                   SW360AttachmentType = "OTHER"
)

const (
	SW360ExternalIDPackageURL = "package-url"
	SW360ComponentTypeOSS     = "OSS"
	SW360ProjectTypeProduct   = "PRODUCT"
	SW360VisibilityEveryone   = "EVERYONE"
)

type SW360Link struct {
	Href string `json:"href"`
}

type SW360Links struct {
	Self SW360Link `json:"self"`
}

// SW360HalResource carries the hal links every sw360 resource returns.
type SW360HalResource struct {
	Links *SW360Links `json:"_links,omitempty"`
}

// ID returns the sw360 id, which is the last segment of the self link.
func (r SW360HalResource) ID() string {
	if r.Links == nil {
		return ""
	}
	return utils.LastPathSegment(r.Links.Self.Href)
}

func (r SW360HalResource) SelfHref() string {
	if r.Links == nil {
		return ""
	}
	return r.Links.Self.Href
}

type SW360License struct {
	SW360HalResource
	ShortName string `json:"shortName"`
	FullName  string `json:"fullName,omitempty"`
	Text      string `json:"text,omitempty"`
}

type SW360Attachment struct {
	SW360HalResource
	Filename       string              `json:"filename"`
	AttachmentType SW360AttachmentType `json:"attachmentType"`
	Sha1           string              `json:"sha1,omitempty"`
}

type SW360ReleaseEmbedded struct {
	Attachments []SW360Attachment `json:"sw360:attachments,omitempty"`
}

type SW360Release struct {
	SW360HalResource
	Name                  string                `json:"name"`
	Version               string                `json:"version"`
	ComponentID           string                `json:"componentId,omitempty"`
	MainLicenseIDs        []string              `json:"mainLicenseIds,omitempty"`
	ExternalIDs           map[string]string     `json:"externalIds,omitempty"`
	AdditionalData        map[string]string     `json:"additionalData,omitempty"`
	SourceCodeDownloadURL string                `json:"sourceCodeDownloadurl,omitempty"`
	BinaryDownloadURL     string                `json:"binaryDownloadurl,omitempty"`
	ClearingState         string                `json:"clearingState,omitempty"`
	Embedded              *SW360ReleaseEmbedded `json:"_embedded,omitempty"`
}

// Attachments returns the attachments embedded in the release.
func (r SW360Release) Attachments() []SW360Attachment {
	if r.Embedded == nil {
		return nil
	}
	return r.Embedded.Attachments
}

// MergeWith returns a copy of r where every non empty field of local
// overwrites the corresponding field. Identity and links stay untouched.
func (r SW360Release) MergeWith(local SW360Release) SW360Release {
	merged := r
	if len(local.MainLicenseIDs) > 0 {
		merged.MainLicenseIDs = append([]string{}, local.MainLicenseIDs...)
	}
	if len(local.ExternalIDs) > 0 {
		merged.ExternalIDs = mergeMaps(r.ExternalIDs, local.ExternalIDs)
	}
	if len(local.AdditionalData) > 0 {
		merged.AdditionalData = mergeMaps(r.AdditionalData, local.AdditionalData)
	}
	if local.SourceCodeDownloadURL != "" {
		merged.SourceCodeDownloadURL = local.SourceCodeDownloadURL
	}
	if local.BinaryDownloadURL != "" {
		merged.BinaryDownloadURL = local.BinaryDownloadURL
	}
	if local.ClearingState != "" {
		merged.ClearingState = local.ClearingState
	}
	return merged
}

func mergeMaps(base, override map[string]string) map[string]string {
	res := make(map[string]string, len(base)+len(override))
	maps.Copy(res, base)
	maps.Copy(res, override)
	return res
}

type SW360ComponentEmbedded struct {
	Releases []SW360Release `json:"sw360:releases,omitempty"`
}

type SW360Component struct {
	SW360HalResource
	Name          string                  `json:"name"`
	ComponentType string                  `json:"componentType,omitempty"`
	Homepage      string                  `json:"homepage,omitempty"`
	Embedded      *SW360ComponentEmbedded `json:"_embedded,omitempty"`
}

func (c SW360Component) Releases() []SW360Release {
	if c.Embedded == nil {
		return nil
	}
	return c.Embedded.Releases
}

type SW360Project struct {
	SW360HalResource
	Name        string `json:"name"`
	Version     string `json:"version"`
	ProjectType string `json:"projectType,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
	Description string `json:"description,omitempty"`
}

type SW360LicenseList struct {
	Embedded struct {
		Licenses []SW360License `json:"sw360:licenses"`
	} `json:"_embedded"`
}

type SW360ComponentList struct {
	Embedded struct {
		Components []SW360Component `json:"sw360:components"`
	} `json:"_embedded"`
}

type SW360ReleaseList struct {
	Embedded struct {
		Releases []SW360Release `json:"sw360:releases"`
	} `json:"_embedded"`
}

type SW360ProjectList struct {
	Embedded struct {
		Projects []SW360Project `json:"sw360:projects"`
	} `json:"_embedded"`
}
