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

import "fmt"

// ArtifactCoordinates identify exactly one binary artifact inside a maven
// style repository.
type ArtifactCoordinates struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
	Classifier string `json:"classifier,omitempty"`
}

func (c ArtifactCoordinates) String() string {
	if c.Classifier != "" {
		return fmt.Sprintf("%s:%s:%s:%s", c.GroupID, c.ArtifactID, c.Version, c.Classifier)
	}
	return fmt.Sprintf("%s:%s:%s", c.GroupID, c.ArtifactID, c.Version)
}

type ClassifierInformation struct {
	Classifier string
	IsSource   bool
}

var (
	DefaultJar       = ClassifierInformation{}
	DefaultSourceJar = ClassifierInformation{Classifier: "sources", IsSource: true}
)

// ExpectedJarBaseName returns artifactId-version[-classifier].jar.
// The classifier of the classifier information takes precedence over the one
// of the coordinates.
func ExpectedJarBaseName(coordinates ArtifactCoordinates, classifierInformation ClassifierInformation) string {
	classifier := classifierInformation.Classifier
	if classifier == "" {
		classifier = coordinates.Classifier
	}

	name := coordinates.ArtifactID + "-" + coordinates.Version
	if classifier != "" {
		name += "-" + classifier
	}
	return name + ".jar"
}
