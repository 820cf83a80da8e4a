package valueobjects

import (
	"fmt"
	"strings"
)

// GameKey identifies the game the member was playing when the problem occurred.
type GameKey string

const (
	GameValorant GameKey = "valorant"
	GameCS2      GameKey = "cs2"
	GameLoL      GameKey = "lol"
	GameFortnite GameKey = "fortnite"
	GameWarzone  GameKey = "warzone"
	GameOther    GameKey = "other"
)

var validGameKeys = map[GameKey]bool{
	GameValorant: true,
	GameCS2:      true,
	GameLoL:      true,
	GameFortnite: true,
	GameWarzone:  true,
	GameOther:    true,
}

var gameLabels = map[GameKey]string{
	GameValorant: "Valorant",
	GameCS2:      "Counter-Strike 2",
	GameLoL:      "League of Legends",
	GameFortnite: "Fortnite",
	GameWarzone:  "Warzone",
	GameOther:    "Outro jogo",
}

func (k GameKey) IsValid() bool {
	return validGameKeys[k]
}

func (k GameKey) String() string {
	return string(k)
}

// Label returns the display text shown on the Telegram keyboard.
func (k GameKey) Label() string {
	return gameLabels[k]
}

// AllGameKeys returns the fixed game set in display order.
func AllGameKeys() []GameKey {
	return []GameKey{
		GameValorant,
		GameCS2,
		GameLoL,
		GameFortnite,
		GameWarzone,
		GameOther,
	}
}

// GameTitle wraps a game key plus a free-text custom name that is only
// meaningful when the key is the generic "other" variant.
type GameTitle struct {
	key        GameKey
	customName string
}

// NewGameTitle validates the key and, for the "other" variant, requires a
// non-empty custom name. Custom names on enumerated keys are discarded.
func NewGameTitle(key GameKey, customName string) (GameTitle, error) {
	if !key.IsValid() {
		return GameTitle{}, fmt.Errorf("invalid game key: %s", key)
	}

	customName = strings.TrimSpace(customName)
	if key == GameOther {
		if customName == "" {
			return GameTitle{}, fmt.Errorf("custom game name is required for the other variant")
		}
		return GameTitle{key: key, customName: customName}, nil
	}

	return GameTitle{key: key}, nil
}

func (g GameTitle) Key() GameKey {
	return g.key
}

func (g GameTitle) CustomName() string {
	return g.customName
}

func (g GameTitle) IsCustom() bool {
	return g.key == GameOther
}

// Label returns the display text: the enumerated label, or the custom name
// for the "other" variant.
func (g GameTitle) Label() string {
	if g.IsCustom() {
		return g.customName
	}
	return gameLabels[g.key]
}
