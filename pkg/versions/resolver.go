package versions

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/csmith/latest"
)

type TagClient func(ctx context.Context, repo string, options *latest.TagOptions) (string, error)

// Resolver finds the newest tag of action repositories. Results are cached
// per repository for the lifetime of the Resolver.
type Resolver struct {
	tagClient TagClient

	mu    sync.Mutex
	cache map[string]string
}

func New() *Resolver {
	return NewWithClient(latest.GitTag)
}

func NewWithClient(client TagClient) *Resolver {
	return &Resolver{
		tagClient: client,
		cache:     make(map[string]string),
	}
}

// Resolve returns uses with its ref moved to the newest tag of the action's
// repository, at the same precision as the current ref. References that are
// local, container based, pinned to a commit or following a branch are
// returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, uses string) (string, error) {
	action, ok := ParseActionRef(uses)
	if !ok {
		slog.Debug("skipping non-remote action", "uses", uses)
		return uses, nil
	}

	if action.IsCommit() || !action.IsVersion() {
		slog.Debug("skipping action not pinned to a version tag", "uses", uses)
		return uses, nil
	}

	tag, err := r.latestTag(ctx, action.RepoURL())
	if err != nil {
		return "", err
	}

	action.Ref = withPrecision(action.Ref, tag)
	slog.Debug("resolved action", "uses", uses, "latest", tag, "resolved", action.String())
	return action.String(), nil
}

func (r *Resolver) latestTag(ctx context.Context, repo string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tag, ok := r.cache[repo]; ok {
		return tag, nil
	}

	tag, err := r.tagClient(ctx, repo, &latest.TagOptions{TrimPrefixes: []string{"v"}})
	if err != nil {
		return "", fmt.Errorf("resolving git tag for %s: %w", repo, err)
	}

	r.cache[repo] = tag
	return tag, nil
}
