package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-ai/internal/catalog"
)

func TestToggleGrowsInOrder(t *testing.T) {
	var sel Selection
	var err error

	for _, id := range []string{"anime", "gothic", "wuxia"} {
		sel, err = sel.Toggle(id)
		require.NoError(t, err)
	}
	assert.Equal(t, Selection{"anime", "gothic", "wuxia"}, sel)

	sel, err = sel.Toggle("gothic")
	require.NoError(t, err)
	assert.Equal(t, Selection{"anime", "wuxia"}, sel)
}

func TestToggleLimit(t *testing.T) {
	sel := Selection{"a", "b", "c", "d", "e"}

	got, err := sel.Toggle("f")
	assert.ErrorIs(t, err, ErrSelectionLimit)
	assert.Equal(t, sel, got)
	assert.Zero(t, got.Remaining())

	// removal still works at the limit
	got, err = sel.Toggle("c")
	require.NoError(t, err)
	assert.Equal(t, Selection{"a", "b", "d", "e"}, got)
	assert.Equal(t, 1, got.Remaining())
}

func TestToggleDoesNotAlias(t *testing.T) {
	base := make(Selection, 0, 5)
	base = append(base, "a")

	x, _ := base.Toggle("x")
	y, _ := base.Toggle("y")

	assert.Equal(t, Selection{"a", "x"}, x)
	assert.Equal(t, Selection{"a", "y"}, y)
}

func TestClear(t *testing.T) {
	sel := Selection{"a", "b"}
	assert.Empty(t, sel.Clear())
	assert.Empty(t, Selection(nil).Clear())
}

func TestAssemble(t *testing.T) {
	c := catalog.Default()
	anime, _ := c.Lookup("anime")
	gothic, _ := c.Lookup("gothic")

	t.Run("fallback when empty", func(t *testing.T) {
		got, err := Assemble(nil, "   ", c)
		require.NoError(t, err)
		assert.Equal(t, []string{Fallback}, got)
	})

	t.Run("selection order then custom", func(t *testing.T) {
		got, err := Assemble(Selection{"gothic", "anime"}, "  wearing a red hat ", c)
		require.NoError(t, err)
		assert.Equal(t, []string{gothic.Prompt, anime.Prompt, "wearing a red hat"}, got)
	})

	t.Run("custom only", func(t *testing.T) {
		got, err := Assemble(nil, "at the beach", c)
		require.NoError(t, err)
		assert.Equal(t, []string{"at the beach"}, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := Assemble(Selection{"anime", "missing"}, "", c)
		assert.ErrorIs(t, err, catalog.ErrUnknownStyle)
	})

	t.Run("bounded", func(t *testing.T) {
		sel := Selection{"anime", "gothic", "wuxia", "ghibli", "pixel_art"}
		got, err := Assemble(sel, "extra", c)
		require.NoError(t, err)
		assert.Len(t, got, MaxInstructions)
	})
}

func TestInstructionsWrapEveryEntry(t *testing.T) {
	got, err := Instructions(Selection{"anime"}, "smiling", catalog.Default())
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, s := range got {
		assert.True(t, strings.HasPrefix(s, Preamble))
	}
	assert.Equal(t, Preamble+"smiling", got[1])
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(nil, ""))
	assert.Equal(t, 1, Count(nil, "x"))
	assert.Equal(t, 2, Count(Selection{"a"}, "x"))
	assert.Equal(t, 1, Count(Selection{"a"}, "  "))
}
