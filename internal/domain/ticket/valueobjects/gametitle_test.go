package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameTitleEnumerated(t *testing.T) {
	game, err := NewGameTitle(GameValorant, "")
	require.NoError(t, err)
	assert.Equal(t, GameValorant, game.Key())
	assert.False(t, game.IsCustom())
	assert.Equal(t, "Valorant", game.Label())
}

func TestNewGameTitleDiscardsCustomNameOnEnumeratedKey(t *testing.T) {
	game, err := NewGameTitle(GameCS2, "my own name")
	require.NoError(t, err)
	assert.Empty(t, game.CustomName())
	assert.Equal(t, "Counter-Strike 2", game.Label())
}

func TestNewGameTitleOtherRequiresCustomName(t *testing.T) {
	_, err := NewGameTitle(GameOther, "")
	assert.Error(t, err)

	_, err = NewGameTitle(GameOther, "   ")
	assert.Error(t, err)

	game, err := NewGameTitle(GameOther, " Rocket League ")
	require.NoError(t, err)
	assert.True(t, game.IsCustom())
	assert.Equal(t, "Rocket League", game.CustomName())
	assert.Equal(t, "Rocket League", game.Label())
}

func TestNewGameTitleRejectsUnknownKey(t *testing.T) {
	_, err := NewGameTitle(GameKey("pong"), "")
	assert.Error(t, err)
}
