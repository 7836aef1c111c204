package updater

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/greboid/workflowgen/pkg/workflow"
)

// Resolver maps a reference to its newest form. Both versions.Resolver and
// images.Resolver satisfy it.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// Options selects what Update refreshes. A nil resolver skips that kind of
// reference.
type Options struct {
	Actions Resolver
	Images  Resolver
}

// Change records a single rewritten reference.
type Change struct {
	Job   string
	Field string
	Old   string
	New   string
}

func (c Change) String() string {
	return fmt.Sprintf("jobs.%s.%s: %s -> %s", c.Job, c.Field, c.Old, c.New)
}

// Update returns a copy of w with action references refreshed and container
// images pinned. w itself is not modified. Jobs are visited in name order so
// the returned changes are stable.
func Update(ctx context.Context, w workflow.Workflow, opts Options) (workflow.Workflow, []Change, error) {
	if len(w.Jobs) == 0 {
		return w, nil, nil
	}

	u := &updater{opts: opts}
	jobs := make(map[string]workflow.Job, len(w.Jobs))
	for _, id := range slices.Sorted(maps.Keys(w.Jobs)) {
		job, err := u.job(ctx, id, w.Jobs[id])
		if err != nil {
			return workflow.Workflow{}, nil, err
		}
		jobs[id] = job
	}

	w.Jobs = jobs
	return w, u.changes, nil
}

type updater struct {
	opts    Options
	changes []Change
}

func (u *updater) job(ctx context.Context, id string, job workflow.Job) (workflow.Job, error) {
	if u.opts.Actions != nil {
		if uses, ok := job.Uses.(string); ok {
			resolved, err := u.resolve(ctx, u.opts.Actions, id, "uses", uses)
			if err != nil {
				return job, err
			}
			job.Uses = resolved
		}

		if len(job.Steps) > 0 {
			steps := slices.Clone(job.Steps)
			for i := range steps {
				if steps[i].Uses == "" {
					continue
				}
				resolved, err := u.resolve(ctx, u.opts.Actions, id, fmt.Sprintf("steps[%d].uses", i), steps[i].Uses)
				if err != nil {
					return job, err
				}
				steps[i].Uses = resolved
			}
			job.Steps = steps
		}
	}

	if u.opts.Images != nil {
		var err error
		if job.Container, err = u.container(ctx, id, "container.image", job.Container); err != nil {
			return job, err
		}

		if len(job.Services) > 0 {
			services := make(map[string]workflow.Container, len(job.Services))
			for _, name := range slices.Sorted(maps.Keys(job.Services)) {
				if services[name], err = u.container(ctx, id, "services."+name+".image", job.Services[name]); err != nil {
					return job, err
				}
			}
			job.Services = services
		}
	}

	return job, nil
}

func (u *updater) container(ctx context.Context, id, field string, c workflow.Container) (workflow.Container, error) {
	image, ok := c.Image.(string)
	if !ok {
		return c, nil
	}

	resolved, err := u.resolve(ctx, u.opts.Images, id, field, image)
	if err != nil {
		return c, err
	}
	c.Image = resolved
	return c, nil
}

func (u *updater) resolve(ctx context.Context, r Resolver, id, field, ref string) (string, error) {
	resolved, err := r.Resolve(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("updating jobs.%s.%s: %w", id, field, err)
	}

	if resolved != ref {
		change := Change{Job: id, Field: field, Old: ref, New: resolved}
		slog.Info("updated reference", "job", id, "field", field, "old", ref, "new", resolved)
		u.changes = append(u.changes, change)
	}
	return resolved, nil
}
