package normalize

import (
	"testing"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/stretchr/testify/assert"
)

func TestBeautifyPURL(t *testing.T) {
	t.Run("should return namespace and name", func(t *testing.T) {
		res, err := BeautifyPURL("pkg:npm/@angular/core@1.0.0")
		assert.NoError(t, err)
		assert.Equal(t, "@angular/core", res)
	})

	t.Run("should return only the name without namespace", func(t *testing.T) {
		res, err := BeautifyPURL("pkg:npm/lodash@4.17.21")
		assert.NoError(t, err)
		assert.Equal(t, "lodash", res)
	})

	t.Run("should return the input on invalid purls", func(t *testing.T) {
		res, err := BeautifyPURL("not a purl")
		assert.Error(t, err)
		assert.Equal(t, "not a purl", res)
	})
}

func TestMavenCoordinatesFromPurl(t *testing.T) {
	t.Run("should parse group, artifact and version", func(t *testing.T) {
		coordinates, err := MavenCoordinatesFromPurl("pkg:maven/org.apache.commons/commons-lang3@3.12.0")
		assert.NoError(t, err)
		assert.Equal(t, dtos.ArtifactCoordinates{
			GroupID:    "org.apache.commons",
			ArtifactID: "commons-lang3",
			Version:    "3.12.0",
		}, coordinates)
	})

	t.Run("should read the classifier qualifier", func(t *testing.T) {
		coordinates, err := MavenCoordinatesFromPurl("pkg:maven/org.example/lib@1.0?classifier=jdk11&type=jar")
		assert.NoError(t, err)
		assert.Equal(t, "jdk11", coordinates.Classifier)
	})

	t.Run("should reject non maven purls", func(t *testing.T) {
		_, err := MavenCoordinatesFromPurl("pkg:npm/lodash@4.17.21")
		assert.Error(t, err)
	})

	t.Run("should reject maven purls without version", func(t *testing.T) {
		_, err := MavenCoordinatesFromPurl("pkg:maven/org.example/lib")
		assert.Error(t, err)
	})
}

func TestReleaseName(t *testing.T) {
	name, err := ReleaseName("pkg:maven/org.example/lib@1.0")
	assert.NoError(t, err)
	assert.Equal(t, "org.example:lib", name)

	name, err = ReleaseName("pkg:golang/github.com/pkg/errors@v0.9.1")
	assert.NoError(t, err)
	assert.Equal(t, "github.com/pkg/errors", name)
}
