// Package netresolve groups a circuit's raw graph nodes into electrical
// nets with a union-find over wire adjacency, then extracts, per net, the
// set of pins driving it and the set of pins consuming it.
//
// A net may have more than one driver: this package does not arbitrate
// between them, it only reports them, since combining possibly-conflicting
// drivers is a simulation-time concern, not a graph-resolution concern.
package netresolve
