package images

import (
	"context"
	"errors"
	"testing"
)

const testDigest = "sha256:2d1f6c1a0b1cfbd1c0b2ab3a7e0a3ad2a4e0c1f9d2b4c6a8e0f1a3b5c7d9e1f3"

type mockRegistry struct {
	digests map[string]string
	err     error
	calls   []string
}

func (m *mockRegistry) Digest(ctx context.Context, ref string) (string, error) {
	m.calls = append(m.calls, ref)
	if m.err != nil {
		return "", m.err
	}
	return m.digests[ref], nil
}

func TestResolver_Resolve(t *testing.T) {
	registry := &mockRegistry{digests: map[string]string{
		"docker.io/library/postgres:16":      testDigest,
		"docker.io/library/alpine:latest":    testDigest,
		"ghcr.io/greboid/app:latest":         testDigest,
		"registry.example.com:5000/tool:1.2": testDigest,
	}}
	resolver := NewWithClient(registry.Digest)

	tests := []struct {
		image string
		want  string
	}{
		{"postgres:16", "postgres:16@" + testDigest},
		{"alpine", "alpine:latest@" + testDigest},
		{"ghcr.io/greboid/app", "ghcr.io/greboid/app:latest@" + testDigest},
		{"registry.example.com:5000/tool:1.2", "registry.example.com:5000/tool:1.2@" + testDigest},
		{"alpine@" + testDigest, "alpine@" + testDigest},
		{"alpine:3.20@" + testDigest, "alpine:3.20@" + testDigest},
		{"${{ matrix.image }}", "${{ matrix.image }}"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.image, func(t *testing.T) {
			got, err := resolver.Resolve(context.Background(), tt.image)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.image, got, tt.want)
			}
		})
	}
}

func TestResolver_Caches(t *testing.T) {
	registry := &mockRegistry{digests: map[string]string{"docker.io/library/postgres:16": testDigest}}
	resolver := NewWithClient(registry.Digest)

	for _, image := range []string{"postgres:16", "docker.io/postgres:16", "library/postgres:16"} {
		if _, err := resolver.Resolve(context.Background(), image); err != nil {
			t.Fatalf("Resolve(%q) error = %v", image, err)
		}
	}

	if len(registry.calls) != 1 {
		t.Errorf("registry called %d times (%v), want 1", len(registry.calls), registry.calls)
	}
}

func TestResolver_Errors(t *testing.T) {
	t.Run("invalid reference", func(t *testing.T) {
		resolver := NewWithClient((&mockRegistry{}).Digest)
		if _, err := resolver.Resolve(context.Background(), "Not A Valid Ref"); err == nil {
			t.Error("Resolve() error = nil, want error")
		}
	})

	t.Run("registry failure", func(t *testing.T) {
		registry := &mockRegistry{err: errors.New("unauthorized")}
		resolver := NewWithClient(registry.Digest)

		_, err := resolver.Resolve(context.Background(), "postgres:16")
		if !errors.Is(err, registry.err) {
			t.Errorf("Resolve() error = %v, want %v", err, registry.err)
		}
	})
}

func TestRegistryDigest_InvalidReference(t *testing.T) {
	if _, err := RegistryDigest(context.Background(), "Not A Valid Ref"); err == nil {
		t.Error("RegistryDigest() error = nil, want error")
	}
}
