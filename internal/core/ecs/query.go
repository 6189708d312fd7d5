package ecs

// Join helpers for systems and debug views that walk entities holding
// several components at once. The smallest store drives the walk, so the
// probe cost tracks the rarest component. Iteration order is undefined.

// Each2 calls fn for every entity holding both A and B.
func Each2[A, B any](sa *PtrComponentStore[A], sb *PtrComponentStore[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for id, a := range sa.data {
			if b, ok := sb.data[id]; ok {
				fn(id, a, b)
			}
		}
		return
	}
	for id, b := range sb.data {
		if a, ok := sa.data[id]; ok {
			fn(id, a, b)
		}
	}
}

// Each3 calls fn for every entity holding A, B, and C.
func Each3[A, B, C any](sa *PtrComponentStore[A], sb *PtrComponentStore[B], sc *PtrComponentStore[C], fn func(EntityID, *A, *B, *C)) {
	la, lb, lc := sa.Len(), sb.Len(), sc.Len()
	switch {
	case la <= lb && la <= lc:
		for id, a := range sa.data {
			b, ok := sb.data[id]
			if !ok {
				continue
			}
			if c, ok := sc.data[id]; ok {
				fn(id, a, b, c)
			}
		}
	case lb <= lc:
		for id, b := range sb.data {
			a, ok := sa.data[id]
			if !ok {
				continue
			}
			if c, ok := sc.data[id]; ok {
				fn(id, a, b, c)
			}
		}
	default:
		for id, c := range sc.data {
			a, ok := sa.data[id]
			if !ok {
				continue
			}
			if b, ok := sb.data[id]; ok {
				fn(id, a, b, c)
			}
		}
	}
}
