package delivery

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"sync"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDeliveryRejected         = errors.New("delivery rejected by provider")
	ErrVerificationNotRequested = errors.New("no verification pending for this number")
	ErrVerificationCodeMismatch = errors.New("verification code mismatch")
)

// SimulatedGateway stands in for the Email and WhatsApp providers. Nothing
// leaves the process: deliveries succeed unless their method is listed in
// failMethods, and verification codes are only logged.
type SimulatedGateway struct {
	failMethods map[entities.SendMethod]bool
	newCode     func() (string, error)

	mu    sync.Mutex
	codes map[string]string
}

var _ interfaces.IDeliveryGateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway(failMethods ...entities.SendMethod) *SimulatedGateway {
	g := &SimulatedGateway{
		failMethods: map[entities.SendMethod]bool{},
		newCode:     randomCode,
		codes:       map[string]string{},
	}
	for _, m := range failMethods {
		g.failMethods[m] = true
	}
	if len(failMethods) > 0 {
		log.Printf("[delivery][gateway] mock mode enabled failing_methods=%v", failMethods)
	} else {
		log.Printf("[delivery][gateway] mock mode enabled")
	}
	return g
}

func (g *SimulatedGateway) Deliver(ctx context.Context, item entities.WorkQueueItem) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.failMethods[item.SendMethod] {
		log.Printf("[delivery][gateway] mock delivery failed work_item_id=%s method=%s", item.ID, item.SendMethod)
		return "", fmt.Errorf("%w: %s", ErrDeliveryRejected, item.SendMethod)
	}
	ref := strings.ToLower(string(item.SendMethod)) + "-" + uuid.NewString()
	log.Printf("[delivery][gateway] mock delivery success work_item_id=%s method=%s amount=%s provider_ref=%s",
		item.ID, item.SendMethod, entities.FormatAmount(item.Amount), ref)
	return ref, nil
}

func (g *SimulatedGateway) SendVerification(ctx context.Context, whatsapp string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	code, err := g.newCode()
	if err != nil {
		return err
	}
	number := normalizeNumber(whatsapp)
	g.mu.Lock()
	g.codes[number] = code
	g.mu.Unlock()

	log.Printf("[delivery][gateway] mock verification code issued whatsapp=%s code=%s", number, code)
	return nil
}

// ConfirmVerification consumes the pending code on success.
func (g *SimulatedGateway) ConfirmVerification(_ context.Context, whatsapp, code string) error {
	number := normalizeNumber(whatsapp)
	g.mu.Lock()
	defer g.mu.Unlock()

	want, ok := g.codes[number]
	if !ok {
		return ErrVerificationNotRequested
	}
	if strings.TrimSpace(code) != want {
		return ErrVerificationCodeMismatch
	}
	delete(g.codes, number)
	return nil
}

// normalizeNumber keeps digits and a leading plus so "+1 234" and "+1234" match.
func normalizeNumber(s string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(s) {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
