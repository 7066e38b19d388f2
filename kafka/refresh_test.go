package kafka

import (
	"context"
	"errors"
	"testing"
)

var errBusy = errors.New("busy")

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(context.Context) error {
	f.calls++
	return f.err
}

func TestRefreshHandler(t *testing.T) {
	cases := []struct {
		name      string
		message   string
		err       error
		wantMark  bool
		wantErr   bool
		wantCalls int
	}{
		{"refresh", `{"reason":"cron"}`, nil, true, false, 1},
		{"empty reason", `{}`, nil, true, false, 1},
		{"malformed is skipped", `not json`, nil, true, false, 0},
		{"already running", `{"reason":"x"}`, errBusy, true, false, 1},
		{"failure is retried", `{"reason":"x"}`, errors.New("offline"), false, true, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &fakeRefresher{err: c.err}
			mark, err := NewRefreshHandler(r, errBusy, nil).HandleMessage(context.Background(), []byte(c.message))

			if mark != c.wantMark {
				t.Fatalf("mark = %v; want %v", mark, c.wantMark)
			}
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v; wantErr %v", err, c.wantErr)
			}
			if r.calls != c.wantCalls {
				t.Fatalf("calls = %d; want %d", r.calls, c.wantCalls)
			}
		})
	}
}

func TestTypedHandlerValidation(t *testing.T) {
	processed := false
	h := &TypedMessageHandler[RefreshRequest]{
		Validate: func(msg *RefreshRequest) bool { return msg.Reason != "" },
		Process: func(context.Context, *RefreshRequest) error {
			processed = true
			return nil
		},
	}

	mark, err := h.HandleMessage(context.Background(), []byte(`{"reason":""}`))
	if mark || err != nil || processed {
		t.Fatalf("invalid message must not be processed or marked")
	}
}

func TestNewConsumerValidation(t *testing.T) {
	if _, err := NewConsumer(ConsumerConfig{Handler: &TypedMessageHandler[RefreshRequest]{}}); err == nil {
		t.Fatalf("expected error without brokers")
	}
	if _, err := NewConsumer(ConsumerConfig{Brokers: []string{"localhost:9092"}}); err == nil {
		t.Fatalf("expected error without handler")
	}
}
