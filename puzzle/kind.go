package puzzle

import "fmt"

// Kind identifies the type of a token. The zero value is an empty cell.
type Kind uint8

const (
	Empty Kind = iota
	A
	B
	C
	D
)

// weights and homes are indexed by Kind and never written after init.
var (
	weights = [...]int{Empty: 0, A: 1, B: 10, C: 100, D: 1000}
	homes   = [...]int{Empty: -1, A: 0, B: 1, C: 2, D: 3}
)

// Weight is the cost of moving a token of this kind by one cell.
func (k Kind) Weight() int {
	if int(k) >= len(weights) {
		return 0
	}
	return weights[k]
}

// Home returns the index of the room this kind belongs to, or -1 for Empty.
func (k Kind) Home() int {
	if int(k) >= len(homes) {
		return -1
	}
	return homes[k]
}

func (k Kind) Valid() bool {
	return k <= D
}

func (k Kind) Rune() rune {
	if k == Empty {
		return '.'
	}
	return 'A' + rune(k-A)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return string(k.Rune())
}

// KindForRoom returns the kind whose home is the given room.
func KindForRoom(room int) Kind {
	return A + Kind(room)
}

// ParseKind maps a diagram character to a Kind. '.' is Empty.
func ParseKind(r rune) (Kind, bool) {
	switch {
	case r == '.':
		return Empty, true
	case r >= 'A' && r <= 'D':
		return A + Kind(r-'A'), true
	}
	return Empty, false
}
