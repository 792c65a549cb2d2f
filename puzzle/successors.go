package puzzle

import "fmt"

// Place is a location on the board. Room is -1 for corridor cells, in which
// case Index is the cell; otherwise Index is the depth within the room.
type Place struct {
	Room  int
	Index int
}

func hallPlace(cell int) Place { return Place{Room: -1, Index: cell} }

func (p Place) InHall() bool { return p.Room < 0 }

func (p Place) String() string {
	if p.InHall() {
		return fmt.Sprintf("hall %d", p.Index)
	}
	return fmt.Sprintf("room %d depth %d", p.Room, p.Index)
}

// Move describes one edge of the search graph: a token travelling between two
// places, possibly through several primitive moves.
type Move struct {
	Kind Kind
	From Place
	To   Place
	Cost int
}

func (m Move) String() string {
	return fmt.Sprintf("%s: %s -> %s (%d)", m.Kind, m.From, m.To, m.Cost)
}

// Successor is a state reachable in one move, with the cost of that move.
type Successor struct {
	State State
	Cost  int
	Move  Move
}

// Successors enumerates every legal move from s. Tokens in the corridor may only
// go home; a token leaving a room goes straight home when it can, otherwise it
// parks on any reachable corridor cell that is not an entrance.
func Successors(s State) ([]Successor, error) {
	var out []Successor

	for cell, k := range s.hall {
		if k == Empty {
			continue
		}
		e := Entrance(k.Home())
		if !s.CanMove(cell, e) || !s.accepts(k.Home(), k) {
			continue
		}
		next, move, err := settle(s, cell, hallPlace(cell), 0)
		if err != nil {
			return nil, err
		}
		out = append(out, Successor{State: next, Cost: move.Cost, Move: move})
	}

	for room := range s.rooms {
		if s.settled(room) || !s.CanTake(room) {
			continue
		}
		depth, _ := s.top(room)
		from := Place{Room: room, Index: depth}
		taken, takeCost, err := TakeFromRoom(s, room)
		if err != nil {
			return nil, fmt.Errorf("evacuating room %d: %w", room, err)
		}
		e := Entrance(room)
		k := taken.hall[e]
		if taken.CanMove(e, Entrance(k.Home())) && taken.accepts(k.Home(), k) {
			next, move, err := settle(taken, e, from, takeCost)
			if err != nil {
				return nil, err
			}
			out = append(out, Successor{State: next, Cost: move.Cost, Move: move})
			continue
		}
		for cell := 0; cell < HallLength; cell++ {
			if IsEntrance(cell) || !taken.CanMove(e, cell) {
				continue
			}
			next, moveCost, err := MoveInCorridor(taken, e, cell)
			if err != nil {
				return nil, fmt.Errorf("parking from room %d: %w", room, err)
			}
			cost := takeCost + moveCost
			out = append(out, Successor{
				State: next,
				Cost:  cost,
				Move:  Move{Kind: k, From: from, To: hallPlace(cell), Cost: cost},
			})
		}
	}
	return out, nil
}

// settle walks the token at cell to its home entrance and puts it in the room.
// spent is the cost already paid to get the token onto cell.
func settle(s State, cell int, from Place, spent int) (State, Move, error) {
	k := s.hall[cell]
	e := Entrance(k.Home())
	moved, moveCost, err := MoveInCorridor(s, cell, e)
	if err != nil {
		return State{}, Move{}, fmt.Errorf("settling %s from %s: %w", k, from, err)
	}
	depth, _ := moved.freeSlot(k.Home())
	next, putCost, err := PutInRoom(moved, e)
	if err != nil {
		return State{}, Move{}, fmt.Errorf("settling %s from %s: %w", k, from, err)
	}
	cost := spent + moveCost + putCost
	return next, Move{
		Kind: k,
		From: from,
		To:   Place{Room: k.Home(), Index: depth},
		Cost: cost,
	}, nil
}
