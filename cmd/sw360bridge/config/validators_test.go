package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://sw360.example.com/resource/api/", "https://sw360.example.com/resource/api"},
		{"http://sw360.example.com/", "http://sw360.example.com"},
		{"sw360.example.com", "https://sw360.example.com"},
		{" https://sw360.example.com ", "https://sw360.example.com"},
		{"https://sw360.example.com", "https://sw360.example.com"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, sanitizeURL(test.input))
	}
}

func TestValidateRepositoryURL(t *testing.T) {
	t.Run("should trim the trailing slash of a valid url", func(t *testing.T) {
		repositoryURL, err := validateRepositoryURL("https://nexus.example.com/repository/maven-public/")
		assert.NoError(t, err)
		assert.Equal(t, "https://nexus.example.com/repository/maven-public", repositoryURL)
	})

	t.Run("should not prefix a scheme", func(t *testing.T) {
		_, err := validateRepositoryURL("nexus.example.com")
		assert.Error(t, err)
	})

	t.Run("should reject a mistyped scheme", func(t *testing.T) {
		_, err := validateRepositoryURL("htp://nexus.example.com")
		assert.Error(t, err)
	})
}

func TestIsValidPath(t *testing.T) {
	t.Run("should accept existing directories", func(t *testing.T) {
		assert.NoError(t, IsValidPath(t.TempDir()))
	})

	t.Run("should reject empty paths", func(t *testing.T) {
		assert.Error(t, IsValidPath(""))
	})

	t.Run("should reject invalid characters", func(t *testing.T) {
		assert.Error(t, IsValidPath("bom?.json"))
	})

	t.Run("should reject paths which do not exist", func(t *testing.T) {
		assert.Error(t, IsValidPath(filepath.Join(t.TempDir(), "missing.json")))
	})
}
