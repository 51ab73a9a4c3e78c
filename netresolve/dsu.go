package netresolve

// dsu is a disjoint-set union over the integers [0, n), with path
// compression and union by rank, grounded on the same algorithm as
// prim_kruskal's string-keyed DSU, specialized to the dense integer
// domain of graph node indices.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &dsu{parent: parent, rank: make([]int, n)}
}

// find returns the representative of x's set, compressing the path
// traversed along the way.
func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets containing x and y and reports whether they were
// previously distinct.
func (d *dsu) union(x, y int) bool {
	rootX, rootY := d.find(x), d.find(y)
	if rootX == rootY {
		return false
	}

	if d.rank[rootX] < d.rank[rootY] {
		rootX, rootY = rootY, rootX
	}
	d.parent[rootY] = rootX
	if d.rank[rootX] == d.rank[rootY] {
		d.rank[rootX]++
	}

	return true
}
