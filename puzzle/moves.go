package puzzle

import (
	"errors"
	"fmt"
)

// Illegal primitive moves are programming errors. Successors filters every
// candidate through the Can* predicates first, so the search never sees these.
var (
	ErrEmptySource     = errors.New("nothing to move")
	ErrBlockedPath     = errors.New("path is blocked")
	ErrKindMismatch    = errors.New("token kind does not match room")
	ErrForeignOccupant = errors.New("room holds a foreign token")
)

// MoveError records which primitive failed and where. At is a room index for
// "take" and a corridor cell for "move" and "put".
type MoveError struct {
	Op  string
	At  int
	Err error
}

func (e *MoveError) Error() string {
	switch e.Op {
	case "take":
		return fmt.Sprintf("take from room %d: %v", e.At, e.Err)
	case "move":
		return fmt.Sprintf("move from cell %d: %v", e.At, e.Err)
	default:
		return fmt.Sprintf("%s at cell %d: %v", e.Op, e.At, e.Err)
	}
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// TakeFromRoom lifts the shallowest token out of room onto the corridor cell in
// front of the room.
func TakeFromRoom(s State, room int) (State, int, error) {
	if !validRoom(room) {
		return State{}, 0, &MoveError{Op: "take", At: room, Err: ErrBadGeometry}
	}
	d, ok := s.top(room)
	if !ok {
		return State{}, 0, &MoveError{Op: "take", At: room, Err: ErrEmptySource}
	}
	e := Entrance(room)
	if s.hall[e] != Empty {
		return State{}, 0, &MoveError{Op: "take", At: room, Err: ErrBlockedPath}
	}
	next := s.clone()
	k := next.rooms[room][d]
	next.rooms[room][d] = Empty
	next.hall[e] = k
	return next, (d + 1) * k.Weight(), nil
}

// MoveInCorridor walks the token at src to dst. Every cell after src up to and
// including dst must be free.
func MoveInCorridor(s State, src, dst int) (State, int, error) {
	if !validCell(src) || !validCell(dst) {
		return State{}, 0, &MoveError{Op: "move", At: src, Err: ErrBadGeometry}
	}
	k := s.hall[src]
	if k == Empty {
		return State{}, 0, &MoveError{Op: "move", At: src, Err: ErrEmptySource}
	}
	if !s.pathClear(src, dst) {
		return State{}, 0, &MoveError{Op: "move", At: src, Err: ErrBlockedPath}
	}
	if src == dst {
		return s, 0, nil
	}
	next := s.clone()
	next.hall[src] = Empty
	next.hall[dst] = k
	return next, abs(dst-src) * k.Weight(), nil
}

// PutInRoom drops the token at the entrance cell into the deepest free slot of
// its home room.
func PutInRoom(s State, cell int) (State, int, error) {
	if !validCell(cell) {
		return State{}, 0, &MoveError{Op: "put", At: cell, Err: ErrBadGeometry}
	}
	k := s.hall[cell]
	if k == Empty {
		return State{}, 0, &MoveError{Op: "put", At: cell, Err: ErrEmptySource}
	}
	room, ok := RoomAt(cell)
	if !ok || k.Home() != room {
		return State{}, 0, &MoveError{Op: "put", At: cell, Err: ErrKindMismatch}
	}
	if !s.settled(room) {
		return State{}, 0, &MoveError{Op: "put", At: cell, Err: ErrForeignOccupant}
	}
	d, ok := s.freeSlot(room)
	if !ok {
		return State{}, 0, &MoveError{Op: "put", At: cell, Err: ErrBlockedPath}
	}
	next := s.clone()
	next.hall[cell] = Empty
	next.rooms[room][d] = k
	return next, (d + 1) * k.Weight(), nil
}

func (s State) pathClear(src, dst int) bool {
	step := 1
	if dst < src {
		step = -1
	}
	for c := src; c != dst; {
		c += step
		if s.hall[c] != Empty {
			return false
		}
	}
	return true
}

// accepts reports whether a token of kind k may enter room now.
func (s State) accepts(room int, k Kind) bool {
	if k.Home() != room || !s.settled(room) {
		return false
	}
	_, ok := s.freeSlot(room)
	return ok
}

func (s State) CanTake(room int) bool {
	if !validRoom(room) {
		return false
	}
	_, ok := s.top(room)
	return ok && s.hall[Entrance(room)] == Empty
}

func (s State) CanMove(src, dst int) bool {
	if !validCell(src) || !validCell(dst) || s.hall[src] == Empty {
		return false
	}
	return s.pathClear(src, dst)
}

func (s State) CanPut(cell int) bool {
	if !validCell(cell) {
		return false
	}
	room, ok := RoomAt(cell)
	return ok && s.hall[cell] != Empty && s.accepts(room, s.hall[cell])
}
