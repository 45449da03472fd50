package piston

import (
	"golang.org/x/mod/semver"
)

// VersionTypeRelease marks stable versions in the manifest; other types
// include "snapshot", "old_beta" and "old_alpha".
const VersionTypeRelease = "release"

// Manifest is the piston-meta version manifest, listing every published
// Minecraft version from newest to oldest.
type Manifest struct {
	Latest   Latest    `json:"latest"`
	Versions []Version `json:"versions"`
}

// Latest points at the newest release and snapshot version ids.
type Latest struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// Version is one manifest entry. URL points at the per-version detail
// document that carries the download locations.
type Version struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	ReleaseTime string `json:"releaseTime"`
}

// Releases returns the stable versions in manifest order (newest first).
func (m *Manifest) Releases() []Version {
	var releases []Version
	for _, v := range m.Versions {
		if v.Type == VersionTypeRelease {
			releases = append(releases, v)
		}
	}
	return releases
}

// Version returns the manifest entry with the given id.
func (m *Manifest) Version(id string) (Version, bool) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return Version{}, false
}

// LatestRelease resolves the newest stable version. It follows the manifest's
// latest.release pointer when that id exists; otherwise it falls back to
// scanning the releases and picking the highest version by semver ordering.
func (m *Manifest) LatestRelease() (Version, bool) {
	if m.Latest.Release != "" {
		if v, ok := m.Version(m.Latest.Release); ok {
			return v, true
		}
	}

	var best Version
	found := false
	for _, v := range m.Releases() {
		if !found {
			best, found = v, true
			continue
		}
		if compareVersionIDs(v.ID, best.ID) > 0 {
			best = v
		}
	}
	return best, found
}

// compareVersionIDs orders two Minecraft version ids like "1.21.4". Ids that
// do not form valid versions sort below ones that do.
func compareVersionIDs(a, b string) int {
	va, vb := "v"+a, "v"+b
	switch {
	case semver.IsValid(va) && semver.IsValid(vb):
		return semver.Compare(va, vb)
	case semver.IsValid(va):
		return 1
	case semver.IsValid(vb):
		return -1
	default:
		return 0
	}
}
