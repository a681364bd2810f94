package viewqueue

import "testing"

func TestEnqueue_BeforeStartIsSafe(t *testing.T) {
	// Enqueue before Start must be a no-op, not a panic or a block.
	Enqueue("68af1c2d3e4f5a6b7c8d9e0f")
	Enqueue("")
}

func TestEnqueue_FullBufferDrops(t *testing.T) {
	ch = make(chan event, 1)
	defer func() { ch = nil }()

	Enqueue("68af1c2d3e4f5a6b7c8d9e0f")
	// second event cannot fit and must be dropped without blocking
	Enqueue("68af1c2d3e4f5a6b7c8d9e10")

	if len(ch) != 1 {
		t.Fatalf("buffered events = %d, want 1", len(ch))
	}
	ev := <-ch
	if ev.BookID != "68af1c2d3e4f5a6b7c8d9e0f" {
		t.Fatalf("buffered event = %+v, want the first one", ev)
	}
	if ev.ViewedAt.IsZero() {
		t.Fatal("event has no timestamp")
	}
}
