package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedDiagram = errors.New("malformed diagram")

// roomColumns are the text columns holding each room's slots.
var roomColumns = [RoomCount]int{3, 5, 7, 9}

// unfoldRows are spliced in after the shallowest row by Unfold.
var unfoldRows = [][RoomCount]Kind{
	{D, C, B, A},
	{D, B, A, C},
}

// Parse reads a diagram such as
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// up to the first blank line or EOF.
func Parse(r io.Reader) (State, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return State{}, fmt.Errorf("reading diagram: %w", err)
	}
	return ParseLines(lines)
}

// ParseLines decodes a diagram already split into rows. The top frame row and
// the bottom frame row are ignored.
func ParseLines(lines []string) (State, error) {
	if len(lines) < 4 {
		return State{}, fmt.Errorf("%w: need at least 4 rows, got %d", ErrMalformedDiagram, len(lines))
	}
	hallRow := lines[1]
	if len(hallRow) < HallLength+1 {
		return State{}, fmt.Errorf("%w: corridor row %q is too short", ErrMalformedDiagram, hallRow)
	}
	hall := make([]Kind, HallLength)
	for i := range hall {
		k, ok := ParseKind(rune(hallRow[i+1]))
		if !ok {
			return State{}, fmt.Errorf("%w: corridor cell %d is %q", ErrMalformedDiagram, i, hallRow[i+1])
		}
		if k != Empty && IsEntrance(i) {
			return State{}, fmt.Errorf("%w: token %s rests on the entrance at cell %d", ErrMalformedDiagram, k, i)
		}
		hall[i] = k
	}

	var rooms [RoomCount][]Kind
	for row, line := range lines[2 : len(lines)-1] {
		for r, col := range roomColumns {
			if col >= len(line) {
				return State{}, fmt.Errorf("%w: room row %d is too short", ErrMalformedDiagram, row)
			}
			k, ok := ParseKind(rune(line[col]))
			if !ok {
				return State{}, fmt.Errorf("%w: room %d row %d is %q", ErrMalformedDiagram, r, row, line[col])
			}
			rooms[r] = append(rooms[r], k)
		}
	}
	s, err := NewState(hall, rooms)
	if err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrMalformedDiagram, err)
	}
	return s, nil
}

// Unfold returns a copy of s with two extra rows inserted below the shallowest
// row of every room.
func Unfold(s State) (State, error) {
	var rooms [RoomCount][]Kind
	for r := range rooms {
		rooms[r] = append(rooms[r], s.rooms[r][0])
		for _, row := range unfoldRows {
			rooms[r] = append(rooms[r], row[r])
		}
		rooms[r] = append(rooms[r], s.rooms[r][1:]...)
	}
	return NewState(s.hall, rooms)
}

// String renders s in the diagram format accepted by Parse.
func (s State) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("#", HallLength+2))
	b.WriteString("\n#")
	for _, k := range s.hall {
		b.WriteRune(k.Rune())
	}
	b.WriteString("#\n")
	for d := 0; d < s.Depth(); d++ {
		if d == 0 {
			b.WriteString("##")
		} else {
			b.WriteString("  ")
		}
		for r := range s.rooms {
			b.WriteByte('#')
			b.WriteRune(s.rooms[r][d].Rune())
		}
		if d == 0 {
			b.WriteString("###\n")
		} else {
			b.WriteString("#\n")
		}
	}
	b.WriteString("  " + strings.Repeat("#", HallLength-2) + "\n")
	return b.String()
}
