package puzzle

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shamaton/msgpack/v2"
)

var (
	ErrBadGeometry = errors.New("bad board geometry")
	ErrUnbalanced  = errors.New("token count does not match room depth")
)

// State is a snapshot of the corridor and the four rooms. A State is never
// modified once built: every transition returns a fresh copy, so values can be
// shared between the frontier, the cost table and the store freely.
//
// Room slots are indexed by depth, 0 being the slot nearest the corridor.
type State struct {
	hall  []Kind
	rooms [RoomCount][]Kind
}

// NewState builds a State from a corridor and four rooms of equal depth. The
// inputs are copied.
func NewState(hall []Kind, rooms [RoomCount][]Kind) (State, error) {
	if len(hall) != HallLength {
		return State{}, fmt.Errorf("%w: corridor has %d cells, want %d", ErrBadGeometry, len(hall), HallLength)
	}
	depth := len(rooms[0])
	if depth == 0 {
		return State{}, fmt.Errorf("%w: rooms must have at least one slot", ErrBadGeometry)
	}
	for i, k := range hall {
		if !k.Valid() {
			return State{}, fmt.Errorf("%w: corridor cell %d holds %s", ErrBadGeometry, i, k)
		}
	}
	for r, room := range rooms {
		if len(room) != depth {
			return State{}, fmt.Errorf("%w: room %d has depth %d, want %d", ErrBadGeometry, r, len(room), depth)
		}
		for d, k := range room {
			if !k.Valid() {
				return State{}, fmt.Errorf("%w: room %d slot %d holds %s", ErrBadGeometry, r, d, k)
			}
			if k != Empty && d+1 < depth && room[d+1] == Empty {
				// Tokens pack toward the back of a room.
				return State{}, fmt.Errorf("%w: room %d has a gap at depth %d", ErrBadGeometry, r, d+1)
			}
		}
	}
	s := State{hall: append([]Kind(nil), hall...)}
	for r := range rooms {
		s.rooms[r] = append([]Kind(nil), rooms[r]...)
	}
	return s, nil
}

// NewStartState builds a State with an empty corridor.
func NewStartState(rooms [RoomCount][]Kind) (State, error) {
	return NewState(make([]Kind, HallLength), rooms)
}

func (s State) clone() State {
	out := State{hall: append([]Kind(nil), s.hall...)}
	for r := range s.rooms {
		out.rooms[r] = append([]Kind(nil), s.rooms[r]...)
	}
	return out
}

// Depth is the number of slots in every room.
func (s State) Depth() int {
	return len(s.rooms[0])
}

func (s State) Hall(cell int) Kind {
	return s.hall[cell]
}

func (s State) Room(room, depth int) Kind {
	return s.rooms[room][depth]
}

// top returns the shallowest occupied depth of a room.
func (s State) top(room int) (int, bool) {
	for d, k := range s.rooms[room] {
		if k != Empty {
			return d, true
		}
	}
	return -1, false
}

// freeSlot returns the deepest empty slot reachable from the entrance.
func (s State) freeSlot(room int) (int, bool) {
	slot := -1
	for d, k := range s.rooms[room] {
		if k != Empty {
			break
		}
		slot = d
	}
	return slot, slot >= 0
}

// settled reports whether a room holds nothing but its own kind.
func (s State) settled(room int) bool {
	home := KindForRoom(room)
	for _, k := range s.rooms[room] {
		if k != Empty && k != home {
			return false
		}
	}
	return true
}

// homeBelow reports whether the slots from depth to the back of the room all
// hold the room's own kind.
func (s State) homeBelow(room, depth int) bool {
	home := KindForRoom(room)
	for _, k := range s.rooms[room][depth:] {
		if k != home {
			return false
		}
	}
	return true
}

// IsGoal reports whether every slot of every room holds the room's own kind.
func IsGoal(s State) bool {
	for r := range s.rooms {
		if len(s.rooms[r]) == 0 || !s.homeBelow(r, 0) {
			return false
		}
	}
	return true
}

// Census counts the tokens of each kind on the board.
func (s State) Census() [D + 1]int {
	var out [D + 1]int
	for _, k := range s.hall {
		out[k]++
	}
	for _, room := range s.rooms {
		for _, k := range room {
			out[k]++
		}
	}
	return out
}

// Validate checks that every kind has exactly one token per room slot, which
// is necessary for the goal to be reachable.
func (s State) Validate() error {
	census := s.Census()
	for k := A; k <= D; k++ {
		if census[k] != s.Depth() {
			return fmt.Errorf("%w: %d %s tokens, want %d", ErrUnbalanced, census[k], k, s.Depth())
		}
	}
	return nil
}

func (s State) Equal(other State) bool {
	return s.Key() == other.Key()
}

// Key is a canonical serialization of the board contents: the corridor
// followed by each room, separated by '|'.
func (s State) Key() string {
	var b strings.Builder
	b.Grow(HallLength + RoomCount*(s.Depth()+1))
	for _, k := range s.hall {
		b.WriteRune(k.Rune())
	}
	for _, room := range s.rooms {
		b.WriteByte('|')
		for _, k := range room {
			b.WriteRune(k.Rune())
		}
	}
	return b.String()
}

type wireState struct {
	Hall  []byte
	Rooms [][]byte
}

func kindsToBytes(ks []Kind) []byte {
	out := make([]byte, len(ks))
	for i, k := range ks {
		out[i] = byte(k)
	}
	return out
}

func bytesToKinds(bs []byte) []Kind {
	out := make([]Kind, len(bs))
	for i, b := range bs {
		out[i] = Kind(b)
	}
	return out
}

func (s State) Serialize(w io.Writer) error {
	wire := wireState{Hall: kindsToBytes(s.hall)}
	for _, room := range s.rooms {
		wire.Rooms = append(wire.Rooms, kindsToBytes(room))
	}
	return msgpack.MarshalWrite(w, wire)
}

func (s *State) Deserialize(r io.Reader) error {
	var wire wireState
	if err := msgpack.UnmarshalRead(r, &wire); err != nil {
		return err
	}
	if len(wire.Rooms) != RoomCount {
		return fmt.Errorf("%w: decoded %d rooms", ErrBadGeometry, len(wire.Rooms))
	}
	var rooms [RoomCount][]Kind
	for r := range rooms {
		rooms[r] = bytesToKinds(wire.Rooms[r])
	}
	out, err := NewState(bytesToKinds(wire.Hall), rooms)
	if err != nil {
		return err
	}
	*s = out
	return nil
}
