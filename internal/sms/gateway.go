package sms

import (
	"context"
)

// Gateway sends a single outbound text message. Implementations must
// honor the context deadline; a failed send is terminal for that
// recipient.
type Gateway interface {
	Send(ctx context.Context, to, body string) error
}

// Nop is a no-op gateway used when no carrier is configured
type Nop struct{}

func (Nop) Send(_ context.Context, _, _ string) error { return nil }
