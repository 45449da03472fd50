package piston

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testMappings = `a.b.C -> x:
    void run() -> r
`

// newTestServer serves a minimal piston-meta tree: a manifest, one version
// detail document, and the mappings text it points at.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/mc/game/version_manifest_v2.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"latest": {"release": "1.21.4", "snapshot": "25w05a"},
			"versions": [
				{"id": "25w05a", "type": "snapshot", "url": "%[1]s/v1/packages/25w05a.json", "releaseTime": "2025-01-29T14:00:00+00:00"},
				{"id": "1.21.4", "type": "release", "url": "%[1]s/v1/packages/1.21.4.json", "releaseTime": "2024-12-03T10:12:57+00:00"},
				{"id": "1.0", "type": "release", "url": "%[1]s/v1/packages/1.0.json", "releaseTime": "2011-11-17T22:00:00+00:00"}
			]
		}`, srv.URL)
	})

	mux.HandleFunc("/v1/packages/1.21.4.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"downloads": {
				"client": {"url": "%[1]s/objects/client.jar", "sha1": "aaaa", "size": 1},
				"client_mappings": {"url": "%[1]s/objects/client.txt", "sha1": "bbbb", "size": %[2]d}
			}
		}`, srv.URL, len(testMappings))
	})

	// Old versions predate published mappings.
	mux.HandleFunc("/v1/packages/1.0.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"downloads": {"client": {"url": "%s/objects/client.jar", "sha1": "aaaa", "size": 1}}}`, srv.URL)
	})

	mux.HandleFunc("/objects/client.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testMappings)
	})

	return srv
}

func newTestClient(t *testing.T, manifestURL string) *Client {
	t.Helper()
	t.Setenv("MOJMAP_MANIFEST_URL", manifestURL)
	return NewClient()
}

func TestClient_Manifest(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv.URL+"/mc/game/version_manifest_v2.json")

	manifest, err := c.Manifest(context.Background())
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}

	if len(manifest.Versions) != 3 {
		t.Errorf("got %d versions, want 3", len(manifest.Versions))
	}
	if manifest.Latest.Release != "1.21.4" {
		t.Errorf("latest release = %q, want 1.21.4", manifest.Latest.Release)
	}
	if got := len(manifest.Releases()); got != 2 {
		t.Errorf("got %d releases, want 2", got)
	}
}

func TestClient_ClientMappings(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv.URL+"/mc/game/version_manifest_v2.json")

	text, err := c.ClientMappings(context.Background(), "1.21.4")
	if err != nil {
		t.Fatalf("ClientMappings: %v", err)
	}
	if text != testMappings {
		t.Errorf("mappings text = %q, want %q", text, testMappings)
	}
}

func TestClient_ClientMappings_UnknownVersion(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv.URL+"/mc/game/version_manifest_v2.json")

	_, err := c.ClientMappings(context.Background(), "9.9.9")
	if err == nil {
		t.Fatal("ClientMappings succeeded for unknown version")
	}
	if !strings.Contains(err.Error(), "not found in manifest") {
		t.Errorf("error = %v, want a not-found message", err)
	}
}

func TestClient_ClientMappings_NoMappingsDownload(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv.URL+"/mc/game/version_manifest_v2.json")

	_, err := c.ClientMappings(context.Background(), "1.0")
	if err == nil {
		t.Fatal("ClientMappings succeeded for a version without mappings")
	}
	if !strings.Contains(err.Error(), "no client mappings download") {
		t.Errorf("error = %v, want a missing-download message", err)
	}
}

func TestClient_Manifest_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv.URL)

	_, err := c.Manifest(context.Background())
	if err == nil {
		t.Fatal("Manifest succeeded against a failing server")
	}
	if !strings.Contains(err.Error(), "unexpected status 500") {
		t.Errorf("error = %v, want a status message", err)
	}
}

func TestClient_Manifest_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{not json")
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv.URL)

	_, err := c.Manifest(context.Background())
	if err == nil {
		t.Fatal("Manifest succeeded on malformed JSON")
	}
	if !strings.Contains(err.Error(), "decoding version manifest") {
		t.Errorf("error = %v, want a decode message", err)
	}
}
