package puzzle

const (
	// HallLength is the number of corridor cells.
	HallLength = 11
	// RoomCount is the number of side rooms.
	RoomCount = 4
)

var entrances = [RoomCount]int{2, 4, 6, 8}

// Entrance returns the corridor cell directly in front of a room.
func Entrance(room int) int {
	return entrances[room]
}

// IsEntrance reports whether a token may never come to rest on cell.
func IsEntrance(cell int) bool {
	_, ok := RoomAt(cell)
	return ok
}

// RoomAt returns the room whose entrance is at cell.
func RoomAt(cell int) (int, bool) {
	for room, e := range entrances {
		if e == cell {
			return room, true
		}
	}
	return -1, false
}

func validRoom(room int) bool {
	return room >= 0 && room < RoomCount
}

func validCell(cell int) bool {
	return cell >= 0 && cell < HallLength
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
