package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/handicraft/inventory-api/internal/core/domain"
)

type stubMailer struct {
	sent []domain.Email
	err  error
}

func (m *stubMailer) Send(_ context.Context, email domain.Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

func TestEmailHandler_Send(t *testing.T) {
	mailer := &stubMailer{}
	c, rec := newContext(http.MethodPost, "/api/email", `{"to":"shop@example.com","subject":"Hi","text":"Body"}`)

	run(c, NewEmailHandler(mailer).Send)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Email sent" {
		t.Fatalf("unexpected msg %q", msg)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].To[0] != "shop@example.com" {
		t.Fatalf("unexpected sent mail: %+v", mailer.sent)
	}
}

func TestEmailHandler_Send_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not configured", domain.ErrMailerNotConfigured, http.StatusServiceUnavailable, "Email service not configured"},
		{"delivery", fmt.Errorf("%w: dial tcp: refused", domain.ErrMailDelivery), http.StatusBadGateway, "Failed to send email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/api/email", `{"to":"shop@example.com","subject":"Hi","text":"Body"}`)

			run(c, NewEmailHandler(&stubMailer{err: tt.err}).Send)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if msg := decodeMsg(t, rec); msg != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestEmailHandler_Send_InvalidRecipient(t *testing.T) {
	mailer := &stubMailer{}
	c, rec := newContext(http.MethodPost, "/api/email", `{"to":"not-an-address","subject":"Hi","text":"Body"}`)

	run(c, NewEmailHandler(mailer).Send)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("mail should not be sent")
	}
}
