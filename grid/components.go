package grid

// Labels maps every cell to the 8-connected component of traversable cells it
// belongs to, for one query mask. Blocked cells carry label -1.
type Labels struct {
	Mask   Mask
	ids    []int32
	counts []int
}

// Label finds all contiguous regions of cells traversable under m, using the
// same 8-connectivity the search moves with (diagonal steps between two
// blocked orthogonal cells included).
//
// Time:   O(W·H·8).
// Memory: O(W·H) for labels and the BFS queue.
func (g *Grid) Label(m Mask) *Labels {
	total := g.Width * g.Height
	l := &Labels{Mask: m, ids: make([]int32, total)}
	for i := range l.ids {
		l.ids[i] = -1
	}
	queue := make([]int, 0, 64)

	for i0 := 0; i0 < total; i0++ {
		if l.ids[i0] >= 0 || !Traversable(&g.Nodes[i0], m) {
			continue
		}
		id := int32(len(l.counts))
		l.ids[i0] = id
		queue = append(queue[:0], i0)

		// BFS to collect the component
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range Offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.Walkable(vx, vy, m) {
					continue
				}
				vi := g.index(vx, vy)
				if l.ids[vi] < 0 {
					l.ids[vi] = id
					queue = append(queue, vi)
				}
			}
		}
		l.counts = append(l.counts, len(queue))
	}

	return l
}

// Count returns the number of components.
func (l *Labels) Count() int {
	return len(l.counts)
}

// Len returns the number of labelled cells (W×H of the labelled grid).
func (l *Labels) Len() int {
	return len(l.ids)
}

// Size returns the number of cells in component id, or 0 if id is out of range.
func (l *Labels) Size(id int) int {
	if id < 0 || id >= len(l.counts) {
		return 0
	}
	return l.counts[id]
}

// Of returns the component of the cell at row-major index idx, or -1 when the
// cell is blocked.
func (l *Labels) Of(idx int) int {
	return int(l.ids[idx])
}

// Connected reports whether cells idxA and idxB are both traversable and lie
// in the same component.
func (l *Labels) Connected(idxA, idxB int) bool {
	a := l.ids[idxA]
	return a >= 0 && a == l.ids[idxB]
}
