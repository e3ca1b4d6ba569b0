package gridgraph

import "github.com/katalvlaran/gridpath/pq"

// ConnectedComponents finds all contiguous regions of passable cells
// (finite cost), according to gg.Conn connectivity.
// Components are returned in row-major order of their first cell; cells
// within a component are in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]pq.Coord {
	seen := make([]bool, gg.Size())
	var comps [][]pq.Coord

	for i0 := range gg.costs {
		if seen[i0] || !gg.Passable(gg.Coordinate(i0)) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []pq.Coord

		for qi := 0; qi < len(queue); qi++ {
			u := gg.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range gg.offsets {
				v := u.Add(d.DX, d.DY)
				if !gg.Passable(v) {
					continue
				}
				vi := gg.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
