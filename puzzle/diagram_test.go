package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDiagram = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(exampleDiagram))
	require.NoError(t, err)
	assert.True(t, s.Equal(mustStart(t, exampleRooms)))
	assert.Equal(t, 2, s.Depth())
}

func TestParseStopsAtBlankLine(t *testing.T) {
	input := strings.ReplaceAll(exampleDiagram, "\n", "\r\n") + "\r\n" + "garbage that is never read\n"
	s, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, s.Equal(mustStart(t, exampleRooms)))
}

func TestParseCorridorTokens(t *testing.T) {
	input := "#############\n#.A.......D.#\n###.#B#C#.###\n  #A#B#C#D#\n  #########\n"
	s, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, A, s.Hall(1))
	assert.Equal(t, D, s.Hall(9))
	assert.Equal(t, Empty, s.Room(0, 0))
	require.NoError(t, s.Validate())
}

func TestParseMidGame(t *testing.T) {
	input := "#############\n#.A.B...C.D.#\n###.#.#.#.###\n  #A#B#C#D#\n  #########\n"
	s, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	for r := 0; r < RoomCount; r++ {
		assert.Equal(t, Empty, s.Room(r, 0))
		assert.Equal(t, KindForRoom(r), s.Room(r, 1))
	}
	assert.Equal(t, input, s.String())
}

func TestParseMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"too few rows", "#############\n#...........#\n"},
		{"short corridor", "#############\n#.....#\n###B#C#B#D###\n  #########\n"},
		{"bad corridor rune", "#############\n#..x........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n"},
		{"bad room rune", "#############\n#...........#\n###B#C#E#D###\n  #A#D#C#A#\n  #########\n"},
		{"short room row", "#############\n#...........#\n###B#C#B#D###\n  #A#D\n  #########\n"},
		{"gap in room", "#############\n#...........#\n###B#C#B#D###\n  #.#D#C#A#\n  #########\n"},
		{"token on entrance", "#############\n#..A........#\n###.#C#B#D###\n  #A#D#C#B#\n  #########\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, ErrMalformedDiagram)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	s := mustStart(t, exampleRooms)
	assert.Equal(t, exampleDiagram, s.String())

	back, err := Parse(strings.NewReader(s.String()))
	require.NoError(t, err)
	assert.True(t, back.Equal(s))
}

func TestUnfold(t *testing.T) {
	s, err := Unfold(mustStart(t, exampleRooms))
	require.NoError(t, err)
	require.Equal(t, 4, s.Depth())

	want := [RoomCount][]Kind{
		{B, D, D, A},
		{C, C, B, D},
		{B, B, A, C},
		{D, A, C, A},
	}
	assert.True(t, s.Equal(mustStart(t, want)))
	require.NoError(t, s.Validate())
}
