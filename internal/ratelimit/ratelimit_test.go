package ratelimit

import (
	"testing"
	"time"
)

func TestInMemoryLimiter_BurstPerChat(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 2)

	if !l.Allow(1) || !l.Allow(1) {
		t.Fatal("expected burst of 2 to be allowed")
	}
	if l.Allow(1) {
		t.Error("expected third request to be throttled")
	}
	if !l.Allow(2) {
		t.Error("expected a different chat to have its own bucket")
	}
}

func TestNewInMemoryLimiter_ClampsInvalidSettings(t *testing.T) {
	l := NewInMemoryLimiter(0, time.Hour, 0)

	if !l.Allow(1) {
		t.Error("expected at least one request to be allowed")
	}
	if l.Allow(1) {
		t.Error("expected burst to be clamped to 1")
	}
}
