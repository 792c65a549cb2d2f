package puzzle

// Heuristic is a lower bound on the cost still needed to reach the goal from s.
// Each token is charged for the walk to its home entrance as if no other token
// were in the way. Tokens that leave a room also pay for climbing out of their
// slot. A token already home with nothing foreign beneath it is charged nothing.
func Heuristic(s State) int {
	total := 0
	for cell, k := range s.hall {
		if k == Empty {
			continue
		}
		total += abs(cell-Entrance(k.Home())) * k.Weight()
	}
	for room, slots := range s.rooms {
		for d, k := range slots {
			if k == Empty {
				continue
			}
			if k.Home() == room && s.homeBelow(room, d) {
				continue
			}
			steps := abs(Entrance(room)-Entrance(k.Home())) + d + 1
			total += steps * k.Weight()
		}
	}
	return total
}
