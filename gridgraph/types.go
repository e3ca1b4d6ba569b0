package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn8,
	}
}

// Offset is a single neighbor step together with its Euclidean length
// (1 for orthogonal steps, √2 for diagonal ones).
type Offset struct {
	DX, DY int
	Length float64
}

// GridGraph treats a 2D cost grid as a graph. It is immutable once built.
// Width and Height define dimensions; costs are stored row-major, so the
// cost of (x,y) lives at index y*Width+x. A +Inf cost marks a wall.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity
	costs         []float64
	offsets       []Offset
}
