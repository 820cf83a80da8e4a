package valueobjects

import "fmt"

// Category classifies the problem reported by the member. The set is closed;
// unknown keys coming from dispatch callbacks are rejected at the boundary.
type Category string

const (
	CategoryConnectivity Category = "connectivity"
	CategoryPerformance  Category = "performance"
	CategoryGameIssue    Category = "game_issue"
	CategoryEquipment    Category = "equipment"
	CategoryOther        Category = "other"
)

var validCategories = map[Category]bool{
	CategoryConnectivity: true,
	CategoryPerformance:  true,
	CategoryGameIssue:    true,
	CategoryEquipment:    true,
	CategoryOther:        true,
}

var categoryLabels = map[Category]string{
	CategoryConnectivity: "🌐 Conexão caindo",
	CategoryPerformance:  "🐌 Lentidão / ping alto",
	CategoryGameIssue:    "🎮 Problema em jogo",
	CategoryEquipment:    "📡 Equipamento / roteador",
	CategoryOther:        "❓ Outro assunto",
}

func (c Category) String() string {
	return string(c)
}

// Label returns the display text shown on the Telegram keyboard.
func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

// IsConnectivityRelated reports whether the category feeds the HIGH urgency
// rule: connection drops and equipment failures both mean the member is offline.
func (c Category) IsConnectivityRelated() bool {
	return c == CategoryConnectivity || c == CategoryEquipment
}

// IsPerformanceRelated reports whether the category feeds the NORMAL urgency rule.
func (c Category) IsPerformanceRelated() bool {
	return c == CategoryPerformance || c == CategoryGameIssue
}

func (c Category) IsOther() bool {
	return c == CategoryOther
}

// AllCategories returns the fixed category set in display order.
func AllCategories() []Category {
	return []Category{
		CategoryConnectivity,
		CategoryPerformance,
		CategoryGameIssue,
		CategoryEquipment,
		CategoryOther,
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
