package graph

import (
	"fmt"
	"strings"
)

// Node is a job or container together with the names it must wait for.
type Node struct {
	Name         string
	Dependencies []string
}

type Graph struct {
	Nodes map[string]*Node
}

type CircularDependencyError struct {
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected: %s",
		strings.Join(e.Chain, " -> "))
}

// UnknownDependencyError reports a dependency naming a node that is not in
// the graph, e.g. a job that needs a job id that was never defined.
type UnknownDependencyError struct {
	Node       string
	Dependency string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("%s depends on unknown %q", e.Node, e.Dependency)
}
