package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

	alive, 0-1 neighbors -> dead (underpopulation)
	alive, 2-3 neighbors -> alive
	alive, 4-8 neighbors -> dead (overcrowding)
	dead,  3 neighbors   -> alive (reproduction)
	dead,  otherwise     -> dead
*/
func NextState(alive bool, neighbors int) bool {
	if alive {
		switch neighbors {
		case 2, 3:
			return true
		default:
			return false
		}
	}
	return neighbors == 3
}
