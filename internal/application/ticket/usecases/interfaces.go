package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/ticket"
)

// HubSoftGateway is the outbound port to the ERP. CreateServiceOrder returns
// the external service-order id assigned by HubSoft.
type HubSoftGateway interface {
	CreateServiceOrder(ctx context.Context, t *ticket.Ticket) (string, error)
}

// StatusNotifier informs the requesting user about lifecycle changes on
// their ticket.
type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, t *ticket.Ticket, oldStatus string) error
}
