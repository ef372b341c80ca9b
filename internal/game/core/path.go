package core

// Both searches below are greedy hill-climbs over the 8-connected grid.
// Neither backtracks, so they can stop at a local optimum and report
// ErrNoPath even when some route exists. Each accepted step strictly
// lowers the distance to the target, which bounds the loop.

// PathStraight returns the directions leading from p1 to p2 by always
// taking the neighbor closest to p2. Elevation is ignored. On equal
// distances the earlier entry in Directions wins.
func (b *Board) PathStraight(p1, p2 Vector) ([]Direction, error) {
	if err := b.checkEndpoints("path straight", p1, p2); err != nil {
		return nil, err
	}

	path := []Direction{}
	cur := p1
	for !cur.Equal(p2) {
		best := cur.Distance(p2)
		found := false
		var dir Direction
		for _, d := range Directions {
			next := cur.Step(d)
			if !b.PosValid(next) {
				continue
			}
			if dist := next.Distance(p2); dist < best {
				best = dist
				dir = d
				found = true
			}
		}
		if !found {
			return nil, WrapPathError("path straight", p1, p2, ErrNoPath)
		}
		path = append(path, dir)
		cur = cur.Step(dir)
	}
	return path, nil
}

// PathCost returns the directions leading from p1 to p2, choosing at each
// position among the neighbors that move closer to p2 the one with the
// lowest step cost. Equal costs go to the neighbor closer to p2, and full
// ties to the earlier entry in Directions.
func (b *Board) PathCost(p1, p2 Vector) ([]Direction, error) {
	if err := b.checkEndpoints("path cost", p1, p2); err != nil {
		return nil, err
	}

	path := []Direction{}
	cur := p1
	for !cur.Equal(p2) {
		d, ok := b.cheapestStep(cur, p2)
		if !ok {
			return nil, WrapPathError("path cost", p1, p2, ErrNoPath)
		}
		path = append(path, d)
		cur = cur.Step(d)
	}
	return path, nil
}

// cheapestStep picks the next move for PathCost. Candidates are scanned
// in Directions order and only replaced by a strictly better one, so the
// first discovered candidate wins any tie.
func (b *Board) cheapestStep(cur, target Vector) (Direction, bool) {
	here := cur.Distance(target)
	var (
		best     Direction
		bestCost int
		bestDist float64
		found    bool
	)
	for _, d := range Directions {
		next := cur.Step(d)
		if !b.PosValid(next) {
			continue
		}
		dist := next.Distance(target)
		if dist >= here {
			continue
		}
		cost, err := b.StepCost(cur, d)
		if err != nil {
			continue
		}
		if !found || cost < bestCost || (cost == bestCost && dist < bestDist) {
			best, bestCost, bestDist, found = d, cost, dist, true
		}
	}
	return best, found
}

func (b *Board) checkEndpoints(op string, p1, p2 Vector) error {
	if !b.PosValid(p1) {
		return WrapPositionError(op+" start", p1, ErrInvalidMove)
	}
	if !b.PosValid(p2) {
		return WrapPositionError(op+" destination", p2, ErrInvalidMove)
	}
	return nil
}
