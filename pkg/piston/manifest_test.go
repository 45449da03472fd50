package piston

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testManifest() *Manifest {
	return &Manifest{
		Latest: Latest{Release: "1.21.4", Snapshot: "25w05a"},
		Versions: []Version{
			{ID: "25w05a", Type: "snapshot", URL: "https://example.test/25w05a.json"},
			{ID: "1.21.4", Type: "release", URL: "https://example.test/1.21.4.json"},
			{ID: "1.21.3", Type: "release", URL: "https://example.test/1.21.3.json"},
			{ID: "24w44a", Type: "snapshot", URL: "https://example.test/24w44a.json"},
			{ID: "1.21", Type: "release", URL: "https://example.test/1.21.json"},
		},
	}
}

func TestManifest_Releases(t *testing.T) {
	releases := testManifest().Releases()

	var ids []string
	for _, v := range releases {
		ids = append(ids, v.ID)
	}
	want := []string{"1.21.4", "1.21.3", "1.21"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("Releases mismatch (-want +got):\n%s", diff)
	}
}

func TestManifest_Version(t *testing.T) {
	m := testManifest()

	v, ok := m.Version("1.21.3")
	if !ok {
		t.Fatal("Version(1.21.3) not found")
	}
	if v.URL != "https://example.test/1.21.3.json" {
		t.Errorf("URL = %q", v.URL)
	}

	if _, ok := m.Version("9.9.9"); ok {
		t.Error("Version(9.9.9) found, want miss")
	}
}

func TestManifest_LatestRelease_Pointer(t *testing.T) {
	v, ok := testManifest().LatestRelease()
	if !ok {
		t.Fatal("LatestRelease not found")
	}
	if v.ID != "1.21.4" {
		t.Errorf("LatestRelease = %q, want 1.21.4", v.ID)
	}
}

func TestManifest_LatestRelease_Fallback(t *testing.T) {
	m := testManifest()
	m.Latest.Release = ""

	v, ok := m.LatestRelease()
	if !ok {
		t.Fatal("LatestRelease not found")
	}
	if v.ID != "1.21.4" {
		t.Errorf("LatestRelease fallback = %q, want 1.21.4", v.ID)
	}
}

func TestManifest_LatestRelease_Empty(t *testing.T) {
	m := &Manifest{}
	if _, ok := m.LatestRelease(); ok {
		t.Error("LatestRelease on empty manifest reported a version")
	}
}

func TestCompareVersionIDs(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"patch_greater", "1.21.4", "1.21.3", 1},
		{"patch_less", "1.21.3", "1.21.4", -1},
		{"equal", "1.21.4", "1.21.4", 0},
		{"minor_vs_patch", "1.21", "1.20.6", 1},
		{"invalid_sorts_low", "25w05a", "1.21.4", -1},
		{"both_invalid", "25w05a", "24w44a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareVersionIDs(tt.a, tt.b); got != tt.want {
				t.Errorf("compareVersionIDs(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
