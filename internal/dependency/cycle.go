package dependency

// WouldCreateCycle reports whether making taskUUID depend on dependencyUUID
// would close a loop, i.e. whether dependencyUUID already reaches taskUUID.
// Nodes missing from g end their branch.
func WouldCreateCycle(taskUUID, dependencyUUID string, g Graph) bool {
	if taskUUID == dependencyUUID {
		return true
	}

	visited := make(map[string]bool)
	onStack := make(map[string]bool)

	var reaches func(id string) bool
	reaches = func(id string) bool {
		if id == taskUUID {
			return true
		}
		// A node on the current path is a pre-existing loop that does not
		// pass through taskUUID yet; it adds nothing new.
		if visited[id] || onStack[id] {
			return false
		}
		node, ok := g[id]
		if !ok {
			visited[id] = true
			return false
		}

		onStack[id] = true
		for _, dep := range node.Dependencies {
			if reaches(dep) {
				return true
			}
		}
		onStack[id] = false
		visited[id] = true
		return false
	}

	return reaches(dependencyUUID)
}

// FindCycle returns the UUIDs of one existing cycle in g, first node repeated
// at the end, or nil when g is acyclic. Nodes are explored in sorted order so
// the result is stable.
func FindCycle(g Graph) []string {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var path []string

	var dfs func(id string) []string
	dfs = func(id string) []string {
		visited[id] = true
		onStack[id] = true
		path = append(path, id)

		if node, ok := g[id]; ok {
			for _, dep := range node.Dependencies {
				if onStack[dep] {
					for i, p := range path {
						if p == dep {
							cycle := append([]string{}, path[i:]...)
							return append(cycle, dep)
						}
					}
				}
				if visited[dep] {
					continue
				}
				if cycle := dfs(dep); cycle != nil {
					return cycle
				}
			}
		}

		onStack[id] = false
		path = path[:len(path)-1]
		return nil
	}

	for _, id := range sortedKeys(g) {
		if visited[id] {
			continue
		}
		if cycle := dfs(id); cycle != nil {
			return cycle
		}
	}
	return nil
}
