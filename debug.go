package wheel

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set debug flag so that node
// operations (which lack a Picker pointer) can check it cheaply. Only valid
// with a single Picker; multiple Pickers with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and geometry, gesture, snap and change activity is logged to
// stderr.
func (p *Picker) SetDebugMode(enabled bool) {
	p.debug = enabled
	globalDebug = enabled
}

// debugf prints a prefixed line to stderr when debug mode is on.
func (p *Picker) debugf(format string, args ...any) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[wheel] "+format+"\n", args...)
}

// debugLogGeometry prints the layout produced by a geometry pass.
func (p *Picker) debugLogGeometry() {
	if !p.debug {
		return
	}
	g := p.geom
	p.debugf("geometry: items=%d itemHeight=%v min=%v max=%v view=%v indicator=%v offset=%v",
		len(p.items), g.ItemHeight, g.Min, g.Max, g.ViewHeight, g.IndicatorTop, p.offset)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("wheel debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}
