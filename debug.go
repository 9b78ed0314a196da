package chalk

import "fmt"

// globalDebug enables invariant checking on tree operations and after every
// reconciliation. Off by default; flip it in tests or while developing a new
// layout.
var globalDebug bool

// SetDebug toggles the package-wide debug checks.
func SetDebug(on bool) {
	globalDebug = on
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("chalk debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckReconciled verifies the structural invariants that must hold after
// every updateValue: one visual cell per atom, and for linked lists exactly
// one outgoing connector per non-tail node.
func debugCheckReconciled(c *core) {
	if len(c.cells) != len(c.data) {
		panic(fmt.Sprintf("chalk debug: %d cells for %d atoms", len(c.cells), len(c.data)))
	}
	conns := 0
	for _, cell := range c.cells {
		if cell.conn != nil {
			conns++
		}
	}
	if conns > 0 && conns != len(c.cells)-1 {
		panic(fmt.Sprintf("chalk debug: %d connectors for %d nodes", conns, len(c.cells)))
	}
}
