package graph

import "sort"

// TopologicalSort groups the nodes into layers: every node appears after all
// of its dependencies, and names within a layer are sorted. Dependencies on
// nodes outside the graph are ignored.
func (g *Graph) TopologicalSort() ([][]string, error) {
	inDegree := make(map[string]int)
	adjList := make(map[string][]string)

	for name := range g.Nodes {
		inDegree[name] = 0
	}

	for name, node := range g.Nodes {
		for _, dep := range node.Dependencies {
			if _, exists := g.Nodes[dep]; exists {
				adjList[dep] = append(adjList[dep], name)
				inDegree[name]++
			}
		}
	}

	var layers [][]string
	processed := make(map[string]bool)

	for len(processed) < len(g.Nodes) {
		var currentLayer []string
		for name := range g.Nodes {
			if !processed[name] && inDegree[name] == 0 {
				currentLayer = append(currentLayer, name)
			}
		}

		if len(currentLayer) == 0 {
			cycle := g.findCycle(processed)
			return nil, &CircularDependencyError{Chain: cycle}
		}

		sort.Strings(currentLayer)

		for _, name := range currentLayer {
			processed[name] = true

			for _, dependent := range adjList[name] {
				inDegree[dependent]--
			}
		}

		layers = append(layers, currentLayer)
	}

	return layers, nil
}

func (g *Graph) findCycle(processed map[string]bool) []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	parent := make(map[string]string)

	var dfs func(node string) string
	dfs = func(node string) string {
		visited[node] = true
		recStack[node] = true

		for _, dep := range g.Nodes[node].Dependencies {
			if _, exists := g.Nodes[dep]; !exists {
				continue
			}

			if !visited[dep] {
				parent[dep] = node
				if cycleStart := dfs(dep); cycleStart != "" {
					return cycleStart
				}
			} else if recStack[dep] {
				parent[dep] = node
				return dep
			}
		}

		recStack[node] = false
		return ""
	}

	for _, name := range g.names() {
		if processed[name] || visited[name] {
			continue
		}

		if cycleStart := dfs(name); cycleStart != "" {
			return buildCyclePath(cycleStart, parent)
		}
	}

	return []string{"unknown cycle"}
}

// buildCyclePath walks parent links back to start, giving a chain in which
// each name depends on the next, e.g. [a b c a].
func buildCyclePath(start string, parent map[string]string) []string {
	path := []string{start}
	current := parent[start]

	for current != start {
		path = append([]string{current}, path...)
		current = parent[current]
	}

	return append([]string{start}, path...)
}
