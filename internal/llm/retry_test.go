package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(nil, &ErrRateLimit{Err: errors.New("429")})
	mock.AddResponse(nil, &ErrProviderUnavailable{Err: errors.New("503")})
	mock.AddResponse(json.RawMessage(`{"ok":true}`), nil)

	p := WithRetry(mock, fastRetry(5))
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 3 {
		t.Errorf("call count = %d, want 3", mock.CallCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider()
	for range 4 {
		mock.AddResponse(nil, &ErrRateLimit{Err: errors.New("429")})
	}

	p := WithRetry(mock, fastRetry(3))
	_, err := p.Generate(context.Background(), Request{})

	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("error = %v, want ErrRateLimit", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("call count = %d, want 3", mock.CallCount())
	}
}

func TestRetryDoesNotRetryMaxTokens(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(nil, &ErrMaxTokensExceeded{})

	p := WithRetry(mock, fastRetry(5))
	_, err := p.Generate(context.Background(), Request{})

	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("error = %v, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("call count = %d, want 1", mock.CallCount())
	}
}

func TestRetryInvalidResponseGetsOneRetry(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(nil, &ErrInvalidResponse{Err: errors.New("bad json")})
	mock.AddResponse(nil, &ErrInvalidResponse{Err: errors.New("bad json again")})
	mock.AddResponse(json.RawMessage(`{}`), nil)

	p := WithRetry(mock, fastRetry(5))
	_, err := p.Generate(context.Background(), Request{})

	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("call count = %d, want 2 (one retry for invalid responses)", mock.CallCount())
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := WithRetry(mock, fastRetry(5))
	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("call count = %d, want 0", mock.CallCount())
	}
}

func TestValidateResponse(t *testing.T) {
	schema := &Schema{
		Name: "score-report",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           map[string]any{"score": map[string]any{"type": "number"}},
			"required":             []any{"score"},
			"additionalProperties": false,
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"score": 88}`)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	var inv *ErrInvalidResponse
	if err := validateResponse(schema, json.RawMessage(`{"grade": 88}`)); !errors.As(err, &inv) {
		t.Errorf("schema mismatch: error = %v, want ErrInvalidResponse", err)
	}
	if err := validateResponse(schema, json.RawMessage(`not json`)); !errors.As(err, &inv) {
		t.Errorf("malformed JSON: error = %v, want ErrInvalidResponse", err)
	}
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}
