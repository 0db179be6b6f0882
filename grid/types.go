// Package grid defines the node, mask and grid types shared by the search
// packages of github.com/katalvlaran/jumppoint.
package grid

// Mask is a bitset of traversal classes.
//
// On a cell it lists the classes a walker must hold to enter it; on a query it
// lists the classes the walker holds. A zero cell mask is open to everyone.
type Mask uint32

// Solid is the class reserved for walls. Queries never grant it, so a cell
// carrying Solid is blocked for every query that follows that convention.
const Solid Mask = 1 << 31

// NodeStatus holds the open/closed flags of a node during one search.
type NodeStatus uint8

const (
	// Unvisited is the default status between searches.
	Unvisited NodeStatus = 0
	// Opened marks a node that has been pushed to the open list at least once.
	Opened NodeStatus = 1 << 0
	// Closed marks a node that has been extracted and expanded. Closed implies Opened.
	Closed NodeStatus = 1 << 1
)

// NoParent is the Parent handle of a node without predecessor.
const NoParent = -1

// Node is one grid cell.
//
// X, Y, Mask and Data are permanent and never written by a search.
// G, H, F, Status, Parent and HeapIndex belong to the running search and hold
// their zero defaults (Parent == NoParent) between searches.
type Node struct {
	X, Y int  // Coordinates within the grid
	Mask Mask // Classes required to enter this cell
	Data any  // Caller payload, untouched by the library

	G, H, F   float64    // Path cost, heuristic estimate, G+H
	Status    NodeStatus // Opened / Closed flags
	Parent    int        // Index of the predecessor jump point, or NoParent
	HeapIndex int        // Live position in the open list while Opened and not Closed
}

// Grid is a Width×Height arena of nodes stored row-major in Nodes.
type Grid struct {
	Width, Height int
	Nodes         []Node
}

// Offsets lists the eight neighbor directions clockwise from north.
var Offsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
