package netresolve

// NodeID indexes a raw graph node, before net resolution: one per
// distinct wire endpoint, component pin, or outer port position.
type NodeID int

// Edge is an undirected connection between two raw graph nodes, typically
// contributed by a single wire segment.
type Edge struct {
	A, B NodeID
}

// Resolver accumulates edges between raw graph nodes and groups them into
// nets.
type Resolver struct {
	dsu *dsu
	n   int
}

// NewResolver prepares a Resolver over numNodes raw graph nodes, each
// initially in its own net.
func NewResolver(numNodes int) *Resolver {
	return &Resolver{dsu: newDSU(numNodes), n: numNodes}
}

// Union merges the nets containing a and b.
func (r *Resolver) Union(a, b NodeID) {
	r.dsu.union(int(a), int(b))
}

// UnionAll merges every pair of nodes named by edges.
func (r *Resolver) UnionAll(edges []Edge) {
	for _, e := range edges {
		r.Union(e.A, e.B)
	}
}

// Nets returns, for every raw graph node, the compact net index it
// belongs to (0..numNets), and the total net count. Net indices are
// assigned in order of each net's first-encountered node, so the result
// is deterministic for a fixed node numbering.
func (r *Resolver) Nets() (netOf []int, numNets int) {
	netOf = make([]int, r.n)
	assigned := make(map[int]int, r.n)
	for i := 0; i < r.n; i++ {
		root := r.dsu.find(i)
		id, ok := assigned[root]
		if !ok {
			id = numNets
			assigned[root] = id
			numNets++
		}
		netOf[i] = id
	}

	return netOf, numNets
}
