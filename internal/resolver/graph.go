package resolver

import "github.com/addonmodel/cli/internal/addon"

// identity is the graph vertex key: records are the same vertex only when
// id, file version and semantic version all match.
type identity struct {
	id          string
	fileVersion int
	version     string
}

func identityOf(a *addon.AddOn) identity {
	return identity{id: a.ID, fileVersion: a.FileVersion, version: a.Version.String()}
}

// depGraph is the dependency graph built during one resolution call.
// Vertices and edge lists keep insertion order so that traversal results
// are deterministic and follow declaration order.
type depGraph struct {
	vertices []*addon.AddOn
	index    map[identity]int
	edges    [][]int
}

func newDepGraph() *depGraph {
	return &depGraph{index: make(map[identity]int)}
}

// addVertex adds the record as a vertex, returning its index. Adding the
// same identity twice is a no-op.
func (g *depGraph) addVertex(a *addon.AddOn) int {
	key := identityOf(a)
	if i, ok := g.index[key]; ok {
		return i
	}
	i := len(g.vertices)
	g.vertices = append(g.vertices, a)
	g.edges = append(g.edges, nil)
	g.index[key] = i
	return i
}

// addEdge inserts a directed edge parent -> node, adding either endpoint
// as a vertex if needed. It reports whether the new edge closed a cycle.
func (g *depGraph) addEdge(parent, node *addon.AddOn) bool {
	p := g.addVertex(parent)
	n := g.addVertex(node)
	g.edges[p] = append(g.edges[p], n)

	// Edges are only ever added, so the new edge closes a cycle exactly
	// when node already reached parent.
	return g.reachable(n, p)
}

// reachable reports whether to can be reached from from. A vertex always
// reaches itself.
func (g *depGraph) reachable(from, to int) bool {
	if from == to {
		return true
	}
	seen := make([]bool, len(g.vertices))
	stack := []int{from}
	seen[from] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range g.edges[v] {
			if w == to {
				return true
			}
			if !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}
	return false
}

// cycleVertices returns every vertex that participates in some cycle,
// in insertion order: the members of strongly connected components with
// more than one vertex, plus vertices with a self edge.
func (g *depGraph) cycleVertices() []*addon.AddOn {
	n := len(g.vertices)
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}

	// Iterative Tarjan.
	idx := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range idx {
		idx[i] = -1
	}
	var sccStack []int
	next := 0
	comps := 0

	type dfsFrame struct {
		v, ei int
	}
	for root := 0; root < n; root++ {
		if idx[root] != -1 {
			continue
		}
		stack := []dfsFrame{{v: root}}
		idx[root], low[root] = next, next
		next++
		sccStack = append(sccStack, root)
		onStack[root] = true

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.ei < len(g.edges[f.v]) {
				w := g.edges[f.v][f.ei]
				f.ei++
				if idx[w] == -1 {
					idx[w], low[w] = next, next
					next++
					sccStack = append(sccStack, w)
					onStack[w] = true
					stack = append(stack, dfsFrame{v: w})
				} else if onStack[w] && idx[w] < low[f.v] {
					low[f.v] = idx[w]
				}
				continue
			}

			if low[f.v] == idx[f.v] {
				for {
					w := sccStack[len(sccStack)-1]
					sccStack = sccStack[:len(sccStack)-1]
					onStack[w] = false
					comp[w] = comps
					if w == f.v {
						break
					}
				}
				comps++
			}
			v := f.v
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				u := stack[len(stack)-1].v
				if low[v] < low[u] {
					low[u] = low[v]
				}
			}
		}
	}

	size := make(map[int]int)
	for _, c := range comp {
		size[c]++
	}
	selfLoop := make([]bool, n)
	for v, succs := range g.edges {
		for _, w := range succs {
			if w == v {
				selfLoop[v] = true
			}
		}
	}

	var cyclic []*addon.AddOn
	for v, a := range g.vertices {
		if size[comp[v]] > 1 || selfLoop[v] {
			cyclic = append(cyclic, a)
		}
	}
	return cyclic
}

// closure returns every vertex reachable from root excluding root itself,
// ordered so that a record always appears after the records it depends on.
func (g *depGraph) closure(root int) []*addon.AddOn {
	visited := make([]bool, len(g.vertices))
	var order []*addon.AddOn

	type dfsFrame struct {
		v, ei int
	}
	stack := []dfsFrame{{v: root}}
	visited[root] = true
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.ei < len(g.edges[f.v]) {
			w := g.edges[f.v][f.ei]
			f.ei++
			if !visited[w] {
				visited[w] = true
				stack = append(stack, dfsFrame{v: w})
			}
			continue
		}
		if f.v != root {
			order = append(order, g.vertices[f.v])
		}
		stack = stack[:len(stack)-1]
	}
	return order
}
