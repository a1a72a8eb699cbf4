package sw360

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/l3montree-dev/sw360bridge/dtos"
	"github.com/l3montree-dev/sw360bridge/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const apiPath = "/resource/api"

// fakeSW360 keeps a tiny in memory catalog and counts the requests per route.
type fakeSW360 struct {
	t      *testing.T
	server *httptest.Server

	mu         sync.Mutex
	nextID     int
	licenses   []dtos.SW360License
	components map[string]dtos.SW360Component
	releases   map[string]dtos.SW360Release
	projects   map[string]dtos.SW360Project
	links      map[string][]string
	calls      map[string]int
}

func newFakeSW360(t *testing.T) *fakeSW360 {
	f := &fakeSW360{
		t:          t,
		components: map[string]dtos.SW360Component{},
		releases:   map[string]dtos.SW360Release{},
		projects:   map[string]dtos.SW360Project{},
		links:      map[string][]string{},
		calls:      map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+apiPath+"/licenses", f.listLicenses)
	mux.HandleFunc("GET "+apiPath+"/licenses/{id}", f.getLicense)
	mux.HandleFunc("GET "+apiPath+"/components", f.listComponents)
	mux.HandleFunc("GET "+apiPath+"/components/{id}", f.getComponent)
	mux.HandleFunc("POST "+apiPath+"/components", f.createComponent)
	mux.HandleFunc("GET "+apiPath+"/releases/{id}", f.getRelease)
	mux.HandleFunc("POST "+apiPath+"/releases", f.createRelease)
	mux.HandleFunc("PATCH "+apiPath+"/releases/{id}", f.updateRelease)
	mux.HandleFunc("POST "+apiPath+"/releases/{id}/attachments", f.uploadAttachment)
	mux.HandleFunc("GET "+apiPath+"/projects", f.listProjects)
	mux.HandleFunc("POST "+apiPath+"/projects", f.createProject)
	mux.HandleFunc("GET "+apiPath+"/projects/{id}/releases", f.listProjectReleases)
	mux.HandleFunc("POST "+apiPath+"/projects/{id}/releases", f.linkReleases)

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		pattern := r.Method + " " + strings.TrimPrefix(r.URL.Path, apiPath)
		f.calls[pattern]++
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeSW360) url() string {
	return f.server.URL + apiPath
}

func (f *fakeSW360) client() *Client {
	headers := mocks.NewHeaderProvider(f.t)
	headers.On("HTTPHeaders", mock.Anything).Return(http.Header{"Authorization": []string{"Token secret"}}, nil).Maybe()

	client, err := NewClient(ClientConfig{BaseURL: f.url()}, headers)
	require.NoError(f.t, err)
	return client
}

func (f *fakeSW360) callCount(pattern string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[pattern]
}

func (f *fakeSW360) link(collection, id string) *dtos.SW360Links {
	return &dtos.SW360Links{Self: dtos.SW360Link{Href: f.url() + "/" + collection + "/" + id}}
}

func (f *fakeSW360) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s%d", prefix, f.nextID)
}

func (f *fakeSW360) write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", halJSON)
	w.WriteHeader(status)
	require.NoError(f.t, json.NewEncoder(w).Encode(v))
}

func (f *fakeSW360) read(r *http.Request, v any) {
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(v))
}

func (f *fakeSW360) addLicense(shortName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.licenses = append(f.licenses, dtos.SW360License{SW360HalResource: dtos.SW360HalResource{Links: f.link("licenses", shortName)}, ShortName: shortName})
}

func (f *fakeSW360) listLicenses(w http.ResponseWriter, r *http.Request) {
	var list dtos.SW360LicenseList
	list.Embedded.Licenses = f.licenses
	f.write(w, http.StatusOK, list)
}

func (f *fakeSW360) getLicense(w http.ResponseWriter, r *http.Request) {
	for _, l := range f.licenses {
		if l.ShortName == r.PathValue("id") {
			f.write(w, http.StatusOK, l)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *fakeSW360) listComponents(w http.ResponseWriter, r *http.Request) {
	var list dtos.SW360ComponentList
	for _, c := range f.components {
		if strings.HasPrefix(c.Name, r.URL.Query().Get("name")) {
			list.Embedded.Components = append(list.Embedded.Components, dtos.SW360Component{SW360HalResource: c.SW360HalResource, Name: c.Name})
		}
	}
	if len(list.Embedded.Components) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	f.write(w, http.StatusOK, list)
}

func (f *fakeSW360) getComponent(w http.ResponseWriter, r *http.Request) {
	c, ok := f.components[r.PathValue("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	f.write(w, http.StatusOK, c)
}

func (f *fakeSW360) createComponent(w http.ResponseWriter, r *http.Request) {
	var c dtos.SW360Component
	f.read(r, &c)
	id := f.newID("c")
	c.SW360HalResource = dtos.SW360HalResource{Links: f.link("components", id)}
	f.components[id] = c
	f.write(w, http.StatusCreated, c)
}

func (f *fakeSW360) getRelease(w http.ResponseWriter, r *http.Request) {
	release, ok := f.releases[r.PathValue("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	f.write(w, http.StatusOK, release)
}

func (f *fakeSW360) createRelease(w http.ResponseWriter, r *http.Request) {
	var release dtos.SW360Release
	f.read(r, &release)
	component, ok := f.components[release.ComponentID]
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	id := f.newID("r")
	release.SW360HalResource = dtos.SW360HalResource{Links: f.link("releases", id)}
	f.releases[id] = release

	if component.Embedded == nil {
		component.Embedded = &dtos.SW360ComponentEmbedded{}
	}
	component.Embedded.Releases = append(component.Embedded.Releases, dtos.SW360Release{SW360HalResource: release.SW360HalResource, Name: release.Name, Version: release.Version})
	f.components[release.ComponentID] = component

	f.write(w, http.StatusCreated, release)
}

func (f *fakeSW360) updateRelease(w http.ResponseWriter, r *http.Request) {
	existing, ok := f.releases[r.PathValue("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var patch dtos.SW360Release
	f.read(r, &patch)
	patch.SW360HalResource = existing.SW360HalResource
	patch.Embedded = existing.Embedded
	f.releases[r.PathValue("id")] = patch
	f.write(w, http.StatusOK, patch)
}

func (f *fakeSW360) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	release, ok := f.releases[r.PathValue("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var attachment dtos.SW360Attachment
	require.NoError(f.t, json.Unmarshal([]byte(r.FormValue("attachment")), &attachment))
	file, _, err := r.FormFile("file")
	require.NoError(f.t, err)
	content, err := io.ReadAll(file)
	require.NoError(f.t, err)
	require.NotEmpty(f.t, content)

	if release.Embedded == nil {
		release.Embedded = &dtos.SW360ReleaseEmbedded{}
	}
	release.Embedded.Attachments = append(release.Embedded.Attachments, attachment)
	f.releases[r.PathValue("id")] = release
	f.write(w, http.StatusCreated, release)
}

func (f *fakeSW360) listProjects(w http.ResponseWriter, r *http.Request) {
	var list dtos.SW360ProjectList
	for _, p := range f.projects {
		if strings.HasPrefix(p.Name, r.URL.Query().Get("name")) {
			list.Embedded.Projects = append(list.Embedded.Projects, p)
		}
	}
	f.write(w, http.StatusOK, list)
}

func (f *fakeSW360) createProject(w http.ResponseWriter, r *http.Request) {
	var p dtos.SW360Project
	f.read(r, &p)
	id := f.newID("p")
	p.SW360HalResource = dtos.SW360HalResource{Links: f.link("projects", id)}
	f.projects[id] = p
	f.write(w, http.StatusCreated, p)
}

func (f *fakeSW360) listProjectReleases(w http.ResponseWriter, r *http.Request) {
	var list dtos.SW360ReleaseList
	for _, id := range f.links[r.PathValue("id")] {
		list.Embedded.Releases = append(list.Embedded.Releases, f.releases[id])
	}
	f.write(w, http.StatusOK, list)
}

func (f *fakeSW360) linkReleases(w http.ResponseWriter, r *http.Request) {
	var hrefs []string
	f.read(r, &hrefs)
	for _, href := range hrefs {
		id := href[strings.LastIndex(href, "/")+1:]
		f.links[r.PathValue("id")] = append(f.links[r.PathValue("id")], id)
	}
	w.WriteHeader(http.StatusCreated)
}

func (f *fakeSW360) linkedReleases(projectID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.links[projectID]...)
}
