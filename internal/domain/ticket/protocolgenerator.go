package ticket

import (
	"context"
	"fmt"

	"github.com/oncabito/sentinela/internal/shared/id"
)

const (
	// ProtocolPrefix marks protocols issued by this deployment ("local"
	// service orders, as opposed to codes minted by HubSoft).
	ProtocolPrefix = "LOC"

	protocolDigits = 9
)

// DefaultProtocolGenerator emits codes like LOC388610534: the LOC prefix plus
// nine random digits, easy to read aloud over a support call.
type DefaultProtocolGenerator struct{}

func NewDefaultProtocolGenerator() *DefaultProtocolGenerator {
	return &DefaultProtocolGenerator{}
}

func (g *DefaultProtocolGenerator) Generate(ctx context.Context) (string, error) {
	digits, err := id.GenerateDigits(protocolDigits)
	if err != nil {
		return "", fmt.Errorf("failed to generate protocol: %w", err)
	}
	return ProtocolPrefix + digits, nil
}
