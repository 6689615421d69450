// Package connectivity defines the repair strategies and shared helpers
// for the connectivity subpackage of github.com/katalvlaran/mazeforge.
package connectivity

import "github.com/katalvlaran/mazeforge/grid"

// Repairer forces b to become reachable from a by opening cells of g.
// It reports whether any cell was changed. Implementations must leave
// IsConnected(g, a, b) true on return.
type Repairer func(g *grid.Grid, a, b grid.Position) bool

// Staircase is the default Repairer: see ForceConnect.
var Staircase Repairer = ForceConnect

// MinimalCarve is a Repairer that opens the fewest interior walls needed
// to join a and b: see CarveMinimal.
var MinimalCarve Repairer = CarveMinimal
