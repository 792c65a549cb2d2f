package burrow

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCasesInTestdata(t *testing.T) {
	filepath.WalkDir("testdata", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".toml") {
			return nil
		}
		name := filepath.Base(path)
		t.Run(name, testParseCase(path))
		return nil
	})
}

func testParseCase(path string) func(t *testing.T) {
	return func(t *testing.T) {
		c, err := LoadCase(path)
		require.NoError(t, err)
		board, err := c.LoadBoard()
		require.NoError(t, err)
		assert.NotZero(t, board.Depth())
		t.Logf("%#v\n", c)
	}
}

func TestParseCase(t *testing.T) {
	c, err := parseCase(strings.NewReader(`
board = "example.txt"
expected = 44169
unfold = true
`))
	require.NoError(t, err)
	assert.Equal(t, "example.txt", c.Board)
	assert.Equal(t, 44169, c.Expected)
	assert.True(t, c.Unfold)
	assert.False(t, c.Slow)

	_, err = parseCase(strings.NewReader(`expected = 1`))
	assert.ErrorIs(t, err, ErrMissingBoard)

	_, err = parseCase(strings.NewReader(`board = [`))
	assert.Error(t, err)
}

func TestLoadCaseResolvesBoard(t *testing.T) {
	c, err := LoadCase(filepath.Join("testdata", "example.toml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "example.txt"), c.BoardPath())

	board, err := c.LoadBoard()
	require.NoError(t, err)
	assert.Equal(t, 2, board.Depth())
}

func TestLoadCaseUnfolds(t *testing.T) {
	c, err := LoadCase(filepath.Join("testdata", "example_unfolded.toml"))
	require.NoError(t, err)
	board, err := c.LoadBoard()
	require.NoError(t, err)
	assert.Equal(t, 4, board.Depth())
}
