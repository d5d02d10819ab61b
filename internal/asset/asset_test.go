package asset

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	frames, err := Load(Embedded())
	require.NoError(t, err)

	assert.Len(t, frames.Rocket, 2)
	assert.Len(t, frames.Explosion, 4)
	assert.NotEmpty(t, frames.Garbage)
	assert.NotEmpty(t, frames.GameOver)
	for _, f := range frames.Rocket {
		assert.NotContains(t, f[len(f)-1:], "\n", "trailing newline is trimmed")
	}
}

func validFS() fstest.MapFS {
	return fstest.MapFS{
		"rocket/b.txt":            {Data: []byte("B\n")},
		"rocket/a.txt":            {Data: []byte("A\r\n")},
		"rocket/notes.md":         {Data: []byte("ignored")},
		"garbage/x.txt":           {Data: []byte("x")},
		"explosion/1.txt":         {Data: []byte("(")},
		"game_over/game_over.txt": {Data: []byte("over")},
	}
}

func TestLoadOrdersAndTrims(t *testing.T) {
	frames, err := Load(validFS())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, frames.Rocket)
	assert.Equal(t, "over", frames.GameOver)
}

func TestLoadFailures(t *testing.T) {
	missing := validFS()
	delete(missing, "garbage/x.txt")
	_, err := Load(missing)
	assert.Error(t, err)

	blank := validFS()
	blank["explosion/1.txt"] = &fstest.MapFile{Data: []byte("  \n")}
	_, err = Load(blank)
	assert.ErrorIs(t, err, ErrNoFrames)

	onlyNotes := validFS()
	delete(onlyNotes, "rocket/a.txt")
	delete(onlyNotes, "rocket/b.txt")
	_, err = Load(onlyNotes)
	assert.ErrorIs(t, err, ErrNoFrames)

	noGameOver := validFS()
	delete(noGameOver, "game_over/game_over.txt")
	_, err = Load(noGameOver)
	assert.ErrorContains(t, err, "game_over")
}
