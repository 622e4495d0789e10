package net_test

import (
	"context"
	"testing"

	pnet "gsa/internal/platform/net"
)

func TestRequestID(t *testing.T) {
	base := context.Background()
	if ctx := pnet.WithRequestID(base, ""); ctx != base {
		t.Fatalf("empty id should leave ctx unchanged")
	}
	ctx := pnet.WithRequestID(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID = %q", got)
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID on bare ctx = %q", got)
	}
}

func TestToken(t *testing.T) {
	base := context.Background()
	if pnet.Token(base) != "" {
		t.Fatalf("bare ctx has no token")
	}
	if ctx := pnet.WithToken(base, ""); ctx != base {
		t.Fatalf("empty token should leave ctx unchanged")
	}
	if got := pnet.Token(pnet.WithToken(base, "tok-1")); got != "tok-1" {
		t.Fatalf("Token = %q", got)
	}
}
