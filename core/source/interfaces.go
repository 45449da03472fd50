package source

import (
	"context"
)

// TypeRelease is the version type of stable releases.
const TypeRelease = "release"

// Version identifies one published game version.
type Version struct {
	ID          string
	Type        string
	ReleaseTime string
}

// Provider supplies the list of available versions and the raw obfuscation
// mapping text for one of them. The conversion core never fetches anything
// itself; it is only invoked on text a Provider already delivered in full.
type Provider interface {
	// ListVersions returns every known version, newest first.
	ListVersions(ctx context.Context) ([]Version, error)

	// LatestRelease returns the newest stable version.
	LatestRelease(ctx context.Context) (Version, error)

	// FetchMappings returns the complete ProGuard mapping text for the
	// given version id.
	FetchMappings(ctx context.Context, versionID string) (string, error)
}

// Releases filters versions down to stable releases, preserving order.
func Releases(versions []Version) []Version {
	var releases []Version
	for _, v := range versions {
		if v.Type == TypeRelease {
			releases = append(releases, v)
		}
	}
	return releases
}
