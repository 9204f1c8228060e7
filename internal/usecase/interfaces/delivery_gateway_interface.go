package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
)

// IDeliveryGateway abstracts the Email/WhatsApp providers.
//
// SendVerification issues a one-time code to a WhatsApp number and
// ConfirmVerification checks the code the business owner typed back.
type IDeliveryGateway interface {
	Deliver(ctx context.Context, item entities.WorkQueueItem) (providerRef string, err error)
	SendVerification(ctx context.Context, whatsapp string) error
	ConfirmVerification(ctx context.Context, whatsapp, code string) error
}
