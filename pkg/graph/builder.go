package graph

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/greboid/workflowgen/pkg/config"
	"github.com/greboid/workflowgen/pkg/workflow"
)

// FromWorkflow builds the job graph of w, with each job's needs as its edges.
func FromWorkflow(w workflow.Workflow) *Graph {
	graph := &Graph{
		Nodes: make(map[string]*Node, len(w.Jobs)),
	}

	for id, job := range w.Jobs {
		graph.add(id, job.Needs)
	}

	return graph
}

// FromConfig builds the container graph of a generator config.
func FromConfig(cfg *config.Config) *Graph {
	graph := &Graph{
		Nodes: make(map[string]*Node, len(cfg.Containers)),
	}

	for name, container := range cfg.Containers {
		graph.add(name, container.DependsOn)
	}

	for _, name := range graph.names() {
		for _, dep := range graph.Nodes[name].Dependencies {
			if _, exists := graph.Nodes[dep]; !exists {
				slog.Warn("dependency not found in graph",
					"container", name,
					"dependency", dep,
					"note", "might be external image")
			}
		}
	}

	return graph
}

func (g *Graph) add(name string, deps []string) {
	g.Nodes[name] = &Node{
		Name:         name,
		Dependencies: dedupe(deps),
	}

	slog.Debug("added node to graph",
		"name", name,
		"dependencies", g.Nodes[name].Dependencies)
}

// Validate reports every dependency that names a node missing from the graph.
func (g *Graph) Validate() error {
	var errs []error
	for _, name := range g.names() {
		for _, dep := range g.Nodes[name].Dependencies {
			if _, exists := g.Nodes[dep]; !exists {
				errs = append(errs, &UnknownDependencyError{Node: name, Dependency: dep})
			}
		}
	}
	return errors.Join(errs...)
}

func (g *Graph) names() []string {
	names := make([]string, 0, len(g.Nodes))
	for name := range g.Nodes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func dedupe(deps []string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, dep := range deps {
		if !seen[dep] {
			seen[dep] = true
			out = append(out, dep)
		}
	}

	return out
}
