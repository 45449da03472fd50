package mojang

import (
	"context"
	"fmt"

	"github.com/craftmap/mojmap/core/source"
	"github.com/craftmap/mojmap/pkg/piston"
)

var _ source.Provider = (*Driver)(nil)

// Driver implements source.Provider on top of Mojang's piston-meta service.
type Driver struct {
	client *piston.Client
}

// NewDriver creates a Driver with a default piston.Client.
func NewDriver() *Driver {
	return &Driver{
		client: piston.NewClient(),
	}
}

// ListVersions fetches the version manifest and returns its entries.
func (d *Driver) ListVersions(ctx context.Context) ([]source.Version, error) {
	manifest, err := d.client.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	versions := make([]source.Version, 0, len(manifest.Versions))
	for _, v := range manifest.Versions {
		versions = append(versions, source.Version{
			ID:          v.ID,
			Type:        v.Type,
			ReleaseTime: v.ReleaseTime,
		})
	}
	return versions, nil
}

// LatestRelease resolves the newest stable version from the manifest.
func (d *Driver) LatestRelease(ctx context.Context) (source.Version, error) {
	manifest, err := d.client.Manifest(ctx)
	if err != nil {
		return source.Version{}, err
	}

	v, ok := manifest.LatestRelease()
	if !ok {
		return source.Version{}, fmt.Errorf("manifest lists no stable release")
	}
	return source.Version{ID: v.ID, Type: v.Type, ReleaseTime: v.ReleaseTime}, nil
}

// FetchMappings downloads the client mappings text for the given version.
func (d *Driver) FetchMappings(ctx context.Context, versionID string) (string, error) {
	return d.client.ClientMappings(ctx, versionID)
}
