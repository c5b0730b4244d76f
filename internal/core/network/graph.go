package network

// Graph is an undirected simple graph over protein identifiers. Nodes and
// neighbour lists keep first-seen order so that every algorithm walking the
// graph is deterministic.
type Graph struct {
	nodes []string
	index map[string]int
	adj   [][]int
	edges int
}

func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddNode inserts id if it is not present and returns its index.
func (g *Graph) AddNode(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, id)
	g.index[id] = i
	g.adj = append(g.adj, nil)
	return i
}

// AddEdge inserts both endpoints and the undirected edge between them.
// Repeating an edge, in either orientation, is a no-op.
func (g *Graph) AddEdge(a, b string) {
	u := g.AddNode(a)
	v := g.AddNode(b)
	if g.hasEdge(u, v) {
		return
	}
	g.adj[u] = append(g.adj[u], v)
	if u != v {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edges++
}

func (g *Graph) hasEdge(u, v int) bool {
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}

func (g *Graph) HasEdge(a, b string) bool {
	u, ok := g.index[a]
	if !ok {
		return false
	}
	v, ok := g.index[b]
	if !ok {
		return false
	}
	return g.hasEdge(u, v)
}

func (g *Graph) NodeCount() int { return len(g.nodes) }
func (g *Graph) EdgeCount() int { return g.edges }

// Nodes returns a copy of the node identifiers in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Node returns the identifier stored at index i.
func (g *Graph) Node(i int) string { return g.nodes[i] }

// Index returns the position of id in Nodes().
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Adjacent returns the neighbour indices of node i. A self-loop appears
// once. The slice must not be modified.
func (g *Graph) Adjacent(i int) []int { return g.adj[i] }

// Neighbors returns the neighbour identifiers of id.
func (g *Graph) Neighbors(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.adj[i]))
	for _, j := range g.adj[i] {
		out = append(out, g.nodes[j])
	}
	return out
}

// Degree counts incident edge ends, so a self-loop contributes 2.
func (g *Graph) Degree(i int) int {
	d := len(g.adj[i])
	if g.hasEdge(i, i) {
		d++
	}
	return d
}

// Edge is an unordered node pair as first inserted.
type Edge struct {
	A, B string
}

// Edges lists every edge once, ordered by its first endpoint's position.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if v >= u {
				out = append(out, Edge{A: g.nodes[u], B: g.nodes[v]})
			}
		}
	}
	return out
}
