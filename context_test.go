// context_test.go — verification of explicit recorder propagation.
package xgxtrace

import (
	"context"
	"testing"
)

func TestFromContext_AbsentRecorder(t *testing.T) {
	t.Parallel()

	if FromContext(context.Background()) != nil {
		t.Fatalf("background context must carry no recorder")
	}
	if FromContext(nil) != nil { //nolint:staticcheck // nil-safety is part of the contract
		t.Fatalf("nil context must yield nil recorder")
	}
}

func TestNewContext_RoundTrip(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	ctx := NewContext(context.Background(), rec)
	if got := FromContext(ctx); got != rec {
		t.Fatalf("FromContext: want the installed recorder, got %v", got)
	}
}

func TestNewContext_SharedAcrossDerivedContexts(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	ctx := NewContext(context.Background(), rec)
	child, cancel := context.WithCancel(ctx)
	defer cancel()

	if FromContext(child) != rec {
		t.Fatalf("derived context must see the same recorder")
	}

	// Mutations through one context are visible through the other: the
	// context carries a pointer to the one shared recorder.
	FromContext(child).Push(testFrame("f", 1))
	if FromContext(ctx).Depth() != 1 {
		t.Fatalf("recorder must be shared, not copied, across derived contexts")
	}
}

func TestNewContext_NilRecorderRemovesVisibility(t *testing.T) {
	t.Parallel()

	ctx := NewContext(context.Background(), NewRecorder())
	ctx = NewContext(ctx, nil)
	if FromContext(ctx) != nil {
		t.Fatalf("installing nil must shadow the outer recorder")
	}
}
