//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Fakes replaces the outbound providers for the whole suite.
type Fakes struct {
	Mailer   *RecordingMailer
	Sessions *FakeSessionCreator
}

func NewFakes() *Fakes {
	return &Fakes{
		Mailer:   &RecordingMailer{},
		Sessions: &FakeSessionCreator{},
	}
}

func (f *Fakes) Reset() {
	f.Mailer.Reset()
}

type RecordingMailer struct {
	mu   sync.Mutex
	sent []delivery.Message
	fail bool
}

func (m *RecordingMailer) Send(_ context.Context, msg delivery.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("smtp: 421 service not available")
	}
	m.sent = append(m.sent, msg)
	return nil
}

// FailSends makes every later Send fail until Reset.
func (m *RecordingMailer) FailSends() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = true
}

func (m *RecordingMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.fail = false
}

func (m *RecordingMailer) SentTo(to string) []delivery.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []delivery.Message
	for _, msg := range m.sent {
		if msg.To == to {
			out = append(out, msg)
		}
	}
	return out
}

type FakeSessionCreator struct{}

func (FakeSessionCreator) CreateSession(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	id := "cs_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	return &commands.CheckoutSession{ID: id, URL: "https://checkout.example/pay/" + id}, nil
}

// CompletedEvent renders a checkout.session.completed delivery the way the
// provider sends it.
func CompletedEvent(eventID, sessionID string, productID uuid.UUID, buyerEmail, customerEmail string) []byte {
	return []byte(fmt.Sprintf(`{
  "id": %q,
  "object": "event",
  "type": "checkout.session.completed",
  "livemode": false,
  "data": {
    "object": {
      "id": %q,
      "object": "checkout.session",
      "payment_status": "paid",
      "metadata": {"product_id": %q, "buyer_email": %q},
      "customer_details": {"email": %q}
    }
  }
}`, eventID, sessionID, productID.String(), buyerEmail, customerEmail))
}

func SignPayload(payload []byte, secret string) string {
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

// PostWebhook sends the raw payload with the given signature header.
func PostWebhook(router *gin.Engine, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
