package cas

import (
	"errors"
	"io"
	"testing"

	"github.com/shamaton/msgpack/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/burrow/puzzle"
)

type label struct {
	Name string
}

func (l *label) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, l)
}

func (l *label) Deserialize(r io.Reader) error {
	return msgpack.UnmarshalRead(r, l)
}

func TestMemoryCAS_StructuralIdentity(t *testing.T) {
	c := NewMemoryCAS()
	states := boards(t)

	a := states[0]
	again, err := puzzle.NewStartState([puzzle.RoomCount][]puzzle.Kind{
		{puzzle.B, puzzle.A}, {puzzle.C, puzzle.D}, {puzzle.B, puzzle.C}, {puzzle.D, puzzle.A},
	})
	require.NoError(t, err)

	h1, err := c.Put(&a)
	require.NoError(t, err)
	h2, err := c.Put(&again)
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "equal boards share a hash")
	assert.Equal(t, 1, c.Len())

	b := states[1]
	h3, err := c.Put(&b)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
	assert.Equal(t, 2, c.Len())
}

func TestMemoryCAS_Collision(t *testing.T) {
	c := NewMemoryCAS()
	s := boards(t)[0]
	h, err := c.Put(&s)
	require.NoError(t, err)

	// plant different bytes under the same hash
	c.data[h] = []byte("not the board")
	_, err = c.Put(&s)
	require.ErrorIs(t, err, ErrCollision)
}

func TestRetrieve(t *testing.T) {
	c := NewMemoryCAS()

	_, err := Retrieve[puzzle.State](c, Hash(42))
	require.ErrorIs(t, err, ErrNotFound)

	l := &label{Name: "board"}
	h, err := c.Put(l)
	require.NoError(t, err)

	got, err := Retrieve[label](c, h)
	require.NoError(t, err)
	assert.Equal(t, "board", got.Name)

	_, err = Retrieve[puzzle.State](c, h)
	require.Error(t, err, "type tags must match")
	assert.False(t, errors.Is(err, ErrNotFound))
}
