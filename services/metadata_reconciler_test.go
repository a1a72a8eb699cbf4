package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/mocks"
	"github.com/l3montree-dev/sw360bridge/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func remoteRelease(id, name, version string) dtos.SW360Release {
	return dtos.SW360Release{
		SW360HalResource: dtos.SW360HalResource{Links: &dtos.SW360Links{Self: dtos.SW360Link{Href: "https://sw360/resource/api/releases/" + id}}},
		Name:             name,
		Version:          version,
	}
}

type reconcilerMocks struct {
	project *mocks.ProjectClientAdapter
	license *mocks.LicenseClientAdapter
	release *mocks.ReleaseClientAdapter
	header  *mocks.HeaderProvider
}

func newTestReconciler(t *testing.T, config ReconcilerConfig) (*MetadataReconciler, reconcilerMocks) {
	m := reconcilerMocks{
		project: mocks.NewProjectClientAdapter(t),
		license: mocks.NewLicenseClientAdapter(t),
		release: mocks.NewReleaseClientAdapter(t),
		header:  mocks.NewHeaderProvider(t),
	}
	return NewMetadataReconciler(m.project, m.license, m.release, m.header, config), m
}

func TestMetadataReconcilerConfig(t *testing.T) {
	reconciler, _ := newTestReconciler(t, ReconcilerConfig{UpdateReleases: true, UploadSources: true})

	config := reconciler.Config()
	config.UploadSources = false

	assert.False(t, config.UploadSources)
	assert.True(t, reconciler.IsUploadSources())
	assert.Equal(t, ReconcilerConfig{UpdateReleases: true, UploadSources: true}, reconciler.Config())
}

func TestMetadataReconcilerGetLicenses(t *testing.T) {
	ctx := context.Background()
	header := http.Header{"Authorization": []string{"Bearer token"}}
	apache := dtos.SW360License{ShortName: "Apache-2.0", FullName: "Apache License 2.0"}

	t.Run("should only return licenses known to sw360", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{})
		m.header.On("HTTPHeaders", ctx).Return(header, nil)
		m.license.On("IsLicenseAvailable", ctx, "Apache-2.0", header).Return(true, nil)
		m.license.On("GetLicenseByID", ctx, "Apache-2.0", header).Return(utils.NewOptional(apache), nil)
		m.license.On("IsLicenseAvailable", ctx, "Proprietary-Thing", header).Return(false, nil)

		licenses, err := reconciler.GetLicenses(ctx, []dtos.License{{ID: "Apache-2.0"}, {ID: "Proprietary-Thing"}})

		assert.NoError(t, err)
		assert.Equal(t, []dtos.SW360License{apache}, licenses)
		m.license.AssertNotCalled(t, "GetLicenseByID", ctx, "Proprietary-Thing", header)
	})

	t.Run("should exclude licenses whose lookup fails", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{})
		m.header.On("HTTPHeaders", ctx).Return(header, nil)
		m.license.On("IsLicenseAvailable", ctx, "MIT", header).Return(false, errors.New("connection reset"))
		m.license.On("IsLicenseAvailable", ctx, "BSD-3-Clause", header).Return(true, nil)
		m.license.On("GetLicenseByID", ctx, "BSD-3-Clause", header).Return(utils.EmptyOptional[dtos.SW360License](), nil)
		m.license.On("IsLicenseAvailable", ctx, "Apache-2.0", header).Return(true, nil)
		m.license.On("GetLicenseByID", ctx, "Apache-2.0", header).Return(utils.EmptyOptional[dtos.SW360License](), errors.New("500"))

		licenses, err := reconciler.GetLicenses(ctx, []dtos.License{{ID: "MIT"}, {ID: "BSD-3-Clause"}, {ID: "Apache-2.0"}})

		assert.NoError(t, err)
		assert.Empty(t, licenses)
	})

	t.Run("should collapse licenses with the same short name", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{})
		m.header.On("HTTPHeaders", ctx).Return(header, nil)
		m.license.On("IsLicenseAvailable", ctx, mock.Anything, header).Return(true, nil)
		m.license.On("GetLicenseByID", ctx, "Apache-2.0", header).Return(utils.NewOptional(apache), nil)
		m.license.On("GetLicenseByID", ctx, "apache-2.0", header).Return(utils.NewOptional(dtos.SW360License{ShortName: "apache-2.0"}), nil)

		licenses, err := reconciler.GetLicenses(ctx, []dtos.License{{ID: "Apache-2.0"}, {ID: "apache-2.0"}})

		assert.NoError(t, err)
		assert.Len(t, licenses, 1)
		assert.Equal(t, "Apache-2.0", licenses[0].ShortName)
	})

	t.Run("should return an error if no authorization header can be obtained", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{})
		m.header.On("HTTPHeaders", ctx).Return(nil, errors.New("invalid credentials"))

		_, err := reconciler.GetLicenses(ctx, []dtos.License{{ID: "MIT"}})

		assert.Error(t, err)
		m.license.AssertNotCalled(t, "IsLicenseAvailable", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMetadataReconcilerGetOrCreateRelease(t *testing.T) {
	ctx := context.Background()
	local := dtos.SW360Release{Name: "org.example:lib", Version: "1.0", MainLicenseIDs: []string{"MIT"}}

	t.Run("should pass the update flag to the adapter", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{UpdateReleases: true})
		updated := remoteRelease("r1", "org.example:lib", "1.0")
		updated.MainLicenseIDs = []string{"MIT"}
		m.release.On("GetOrCreateRelease", ctx, local, true).Return(updated, nil).Once()

		release, err := reconciler.GetOrCreateRelease(ctx, local)

		assert.NoError(t, err)
		assert.Equal(t, []string{"MIT"}, release.MainLicenseIDs)
		assert.Equal(t, "r1", release.ID())
	})

	t.Run("should return the same release twice without updating it", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{UpdateReleases: false})
		existing := remoteRelease("r1", "org.example:lib", "1.0")
		m.release.On("GetOrCreateRelease", ctx, local, false).Return(existing, nil).Twice()

		first, err := reconciler.GetOrCreateRelease(ctx, local)
		assert.NoError(t, err)
		second, err := reconciler.GetOrCreateRelease(ctx, local)
		assert.NoError(t, err)

		assert.Equal(t, first.ID(), second.ID())
		m.release.AssertNotCalled(t, "GetOrCreateRelease", ctx, local, true)
	})

	t.Run("should propagate remote failures", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{})
		m.release.On("GetOrCreateRelease", ctx, local, false).Return(dtos.SW360Release{}, errors.New("remote operation failed"))

		_, err := reconciler.GetOrCreateRelease(ctx, local)

		assert.Error(t, err)
	})
}

func TestMetadataReconcilerCreateProject(t *testing.T) {
	ctx := context.Background()
	releases := []dtos.SW360Release{remoteRelease("r1", "a", "1"), remoteRelease("r2", "b", "2")}

	t.Run("should create the project once and link the releases on every call", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{})
		m.project.On("GetProjectIDByNameAndVersion", ctx, "P", "1.0").Return(utils.EmptyOptional[string](), nil).Once()
		m.project.On("CreateProject", ctx, "P", "1.0").Return("p1", nil).Once()
		m.project.On("GetProjectIDByNameAndVersion", ctx, "P", "1.0").Return(utils.NewOptional("p1"), nil).Once()
		m.project.On("AttachReleasesToProject", ctx, "p1", releases).Return(nil).Twice()

		assert.NoError(t, reconciler.CreateProject(ctx, "P", "1.0", releases))
		assert.NoError(t, reconciler.CreateProject(ctx, "P", "1.0", releases))

		m.project.AssertNumberOfCalls(t, "CreateProject", 1)
	})

	t.Run("should reuse an existing project without creating one", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{})
		m.project.On("GetProjectIDByNameAndVersion", ctx, "P", "1.0").Return(utils.NewOptional("existing"), nil)
		m.project.On("AttachReleasesToProject", ctx, "existing", releases).Return(nil)

		assert.NoError(t, reconciler.CreateProject(ctx, "P", "1.0", releases))
		m.project.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should keep the created project if linking fails", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{})
		m.project.On("GetProjectIDByNameAndVersion", ctx, "P", "1.0").Return(utils.EmptyOptional[string](), nil)
		m.project.On("CreateProject", ctx, "P", "1.0").Return("p1", nil)
		m.project.On("AttachReleasesToProject", ctx, "p1", releases).Return(errors.New("403"))

		err := reconciler.CreateProject(ctx, "P", "1.0", releases)

		assert.Error(t, err)
	})

	t.Run("should not link releases if the project cannot be created", func(t *testing.T) {
		reconciler, m := newTestReconciler(t, ReconcilerConfig{})
		m.project.On("GetProjectIDByNameAndVersion", ctx, "P", "1.0").Return(utils.EmptyOptional[string](), nil)
		m.project.On("CreateProject", ctx, "P", "1.0").Return("", errors.New("409"))

		err := reconciler.CreateProject(ctx, "P", "1.0", releases)

		assert.Error(t, err)
		m.project.AssertNotCalled(t, "AttachReleasesToProject", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMetadataReconcilerUploadAttachments(t *testing.T) {
	ctx := context.Background()
	reconciler, m := newTestReconciler(t, ReconcilerConfig{UploadSources: true})

	release := remoteRelease("r1", "a", "1")
	attachments := map[string]dtos.SW360AttachmentType{"/tmp/a-1-sources.jar": dtos.SW360AttachmentTypeSource}
	withAttachment := release
	withAttachment.Embedded = &dtos.SW360ReleaseEmbedded{Attachments: []dtos.SW360Attachment{{Filename: "a-1-sources.jar", AttachmentType: dtos.SW360AttachmentTypeSource}}}
	m.release.On("UploadAttachments", ctx, release, attachments).Return(withAttachment, nil)

	updated, err := reconciler.UploadAttachments(ctx, release, attachments)

	assert.NoError(t, err)
	assert.Len(t, updated.Attachments(), 1)
}
