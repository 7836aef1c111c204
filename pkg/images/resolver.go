package images

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/containers/image/v5/docker/reference"
	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
)

// DigestFunc returns the manifest digest ("sha256:...") a fully qualified
// image reference currently points at.
type DigestFunc func(ctx context.Context, ref string) (string, error)

// Resolver pins image references to digests. Results are cached per
// normalised reference.
type Resolver struct {
	digest DigestFunc

	cache   map[string]string
	cacheMu sync.RWMutex
}

func NewResolver() *Resolver {
	return NewWithClient(RegistryDigest)
}

func NewWithClient(digest DigestFunc) *Resolver {
	return &Resolver{
		digest: digest,
		cache:  make(map[string]string),
	}
}

// Resolve returns image pinned by digest, e.g. "postgres:16" becomes
// "postgres:16@sha256:...". Images that are already pinned, or that contain
// an expression, are returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, image string) (string, error) {
	if image == "" || strings.Contains(image, "${{") {
		return image, nil
	}

	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return "", fmt.Errorf("parsing image reference %q: %w", image, err)
	}

	if _, ok := named.(reference.Canonical); ok {
		slog.Debug("image already pinned", "image", image)
		return image, nil
	}

	tagged := reference.TagNameOnly(named)
	cacheKey := tagged.String()

	r.cacheMu.RLock()
	if cached, ok := r.cache[cacheKey]; ok {
		r.cacheMu.RUnlock()
		slog.Debug("resolved image from cache", "image", image, "digest", cached)
		return pin(tagged, cached), nil
	}
	r.cacheMu.RUnlock()

	digest, err := r.digest(ctx, cacheKey)
	if err != nil {
		return "", err
	}

	r.cacheMu.Lock()
	r.cache[cacheKey] = digest
	r.cacheMu.Unlock()

	slog.Debug("resolved image from registry", "image", image, "digest", digest)
	return pin(tagged, digest), nil
}

func pin(ref reference.Named, digest string) string {
	return fmt.Sprintf("%s@%s", reference.FamiliarString(ref), digest)
}

// RegistryDigest looks the reference up in its registry, using credentials
// from the default docker keychain.
func RegistryDigest(ctx context.Context, ref string) (string, error) {
	parsed, err := name.ParseReference(ref)
	if err != nil {
		return "", fmt.Errorf("parsing image reference %q: %w", ref, err)
	}

	desc, err := remote.Get(parsed,
		remote.WithContext(ctx),
		remote.WithAuthFromKeychain(authn.DefaultKeychain),
	)
	if err != nil {
		return "", fmt.Errorf("fetching image from registry: %w", err)
	}

	return desc.Digest.String(), nil
}
