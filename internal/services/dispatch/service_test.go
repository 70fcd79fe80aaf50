package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeGateway struct {
	mu     sync.Mutex
	sent   []string
	failOn map[string]error
	delay  time.Duration
}

func (f *fakeGateway) Send(ctx context.Context, to, body string) error {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err, ok := f.failOn[to]; ok {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

func TestDispatchDeliversToAllRecipients(t *testing.T) {
	gw := &fakeGateway{}
	d := NewDispatcher(gw, 4, time.Second)

	report := d.Dispatch(context.Background(), []string{"+1", "+2", "+3"}, "alert")
	if report.Sent != 3 || report.Failed != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(gw.sent) != 3 {
		t.Fatalf("expected 3 sends, got %d", len(gw.sent))
	}
}

func TestDispatchIsolatesPerRecipientFailure(t *testing.T) {
	gw := &fakeGateway{failOn: map[string]error{"+B": errors.New("invalid number")}}
	d := NewDispatcher(gw, 2, time.Second)

	report := d.Dispatch(context.Background(), []string{"+A", "+B", "+C"}, "alert")

	if report.Sent != 2 || report.Failed != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	for _, o := range report.Outcomes {
		failed := o.Recipient == "+B"
		if o.Failed() != failed {
			t.Fatalf("unexpected outcome for %s: %+v", o.Recipient, o)
		}
	}
	if len(gw.sent) != 2 {
		t.Fatalf("failure for one recipient must not block the others: %v", gw.sent)
	}
}

func TestDispatchEmptyRecipients(t *testing.T) {
	d := NewDispatcher(&fakeGateway{}, 2, time.Second)

	report := d.Dispatch(context.Background(), nil, "alert")
	if report.Sent != 0 || report.Failed != 0 || len(report.Outcomes) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestDispatchAppliesPerSendTimeout(t *testing.T) {
	gw := &fakeGateway{delay: 500 * time.Millisecond}
	d := NewDispatcher(gw, 2, 20*time.Millisecond)

	report := d.Dispatch(context.Background(), []string{"+1"}, "alert")
	if report.Failed != 1 {
		t.Fatalf("expected timed-out send to be recorded as failure: %+v", report)
	}
}
