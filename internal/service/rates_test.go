package service

import (
	"context"
	"errors"
	"testing"
)

type stubSource struct {
	percent float64
	err     error
	calls   int
}

func (s *stubSource) GetKeyRate(ctx context.Context) (float64, error) {
	s.calls++
	return s.percent, s.err
}

func TestRateCacheFallbackUntilRefreshed(t *testing.T) {
	src := &stubSource{percent: 21}
	cache := NewRateCache(src, 0.07, newTestLogger())

	if cache.Rate() != 0.07 {
		t.Fatalf("expected fallback 0.07, got %v", cache.Rate())
	}
	if !cache.UpdatedAt().IsZero() {
		t.Fatal("expected zero update time before refresh")
	}

	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Rate() != 0.21 {
		t.Fatalf("expected 0.21, got %v", cache.Rate())
	}
}

func TestRateCacheKeepsRateOnFailure(t *testing.T) {
	src := &stubSource{percent: 16}
	cache := NewRateCache(src, 0.07, newTestLogger())
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src.err = errors.New("upstream down")
	if err := cache.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if cache.Rate() != 0.16 {
		t.Fatalf("expected previous rate 0.16 to be kept, got %v", cache.Rate())
	}
	if src.calls != 2 {
		t.Fatalf("expected 2 source calls, got %d", src.calls)
	}
}
