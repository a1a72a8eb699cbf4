package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("should use the provided config values", func(t *testing.T) {
		viper.Reset()
		viper.Set("sw360Url", "https://sw360.example.com/resource/api")
		viper.Set("projectName", "my-product")
		viper.Set("updateReleases", true)
		viper.Set("useProxy", true)
		viper.Set("proxyHost", "proxy.local")
		viper.Set("proxyPort", 3128)

		require.NoError(t, ParseBaseConfig())
		assert.Equal(t, "https://sw360.example.com/resource/api", RuntimeBaseConfig.SW360URL)
		assert.Equal(t, "my-product", RuntimeBaseConfig.ProjectName)
		assert.True(t, RuntimeBaseConfig.UpdateReleases)
		assert.True(t, RuntimeBaseConfig.UseProxy)
		assert.Equal(t, "proxy.local", RuntimeBaseConfig.Host)
		assert.Equal(t, 3128, RuntimeBaseConfig.Port)
	})

	t.Run("should sanitize the urls", func(t *testing.T) {
		viper.Reset()
		viper.Set("sw360Url", "sw360.example.com/resource/api/")
		viper.Set("repositoryUrl", "https://nexus.example.com/repository/maven-public/")

		require.NoError(t, ParseBaseConfig())
		assert.Equal(t, "https://sw360.example.com/resource/api", RuntimeBaseConfig.SW360URL)
		assert.Equal(t, "https://nexus.example.com/repository/maven-public", RuntimeBaseConfig.RepositoryURL)
		assert.Equal(t, "https://nexus.example.com/repository/maven-public", RepositoryURL().OrElse(""))
	})

	t.Run("should reject a repository url with a mistyped or missing scheme", func(t *testing.T) {
		for _, repositoryURL := range []string{"htp://nexus.example.com", "nexus.example.com/repository", "ftp://nexus.example.com"} {
			viper.Reset()
			viper.Set("repositoryUrl", repositoryURL)

			assert.Error(t, ParseBaseConfig(), repositoryURL)
		}
	})

	t.Run("should keep a plain http repository url", func(t *testing.T) {
		viper.Reset()
		viper.Set("repositoryUrl", " http://127.0.0.1:8081/maven/{groupId}/{artifactId}/{version}/ ")

		require.NoError(t, ParseBaseConfig())
		assert.Equal(t, "http://127.0.0.1:8081/maven/{groupId}/{artifactId}/{version}", RuntimeBaseConfig.RepositoryURL)
	})

	t.Run("should apply defaults", func(t *testing.T) {
		viper.Reset()

		require.NoError(t, ParseBaseConfig())
		assert.Equal(t, ".", RuntimeBaseConfig.TargetDir)
		assert.Equal(t, ".", RuntimeBaseConfig.SourcesDir)
		assert.Equal(t, 300, RuntimeBaseConfig.Timeout)
		assert.False(t, RepositoryURL().IsSet())
	})

	t.Run("should fail if a proxy is enabled without host", func(t *testing.T) {
		viper.Reset()
		viper.Set("useProxy", true)

		assert.Error(t, ParseBaseConfig())
	})
}

func TestConnectionSettings(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("should require the sw360 url", func(t *testing.T) {
		viper.Reset()
		require.NoError(t, ParseBaseConfig())

		_, err := ConnectionSettings()
		assert.Error(t, err)
	})

	t.Run("should carry credentials, proxy and timeout", func(t *testing.T) {
		viper.Reset()
		viper.Set("sw360Url", "https://sw360.example.com/resource/api")
		viper.Set("sw360Token", "secret")
		viper.Set("timeout", 10)
		viper.Set("useProxy", true)
		viper.Set("proxyHost", "proxy.local")
		require.NoError(t, ParseBaseConfig())

		settings, err := ConnectionSettings()
		require.NoError(t, err)
		assert.Equal(t, "secret", settings.Token)
		assert.Equal(t, 10*time.Second, settings.Timeout)
		assert.Equal(t, "proxy.local", settings.Proxy.Host)
	})
}
