package state

import "testing"

func TestQueue_Flush(t *testing.T) {
	queue := NewQueue()
	calls := make([]int, 0, 2)

	queue.Schedule(func() {
		calls = append(calls, 1)
	})
	queue.Schedule(func() {
		calls = append(calls, 2)
	})
	queue.Schedule(nil)

	if queue.Len() != 2 {
		t.Fatalf("expected 2 queued callbacks, got %d", queue.Len())
	}
	if flushed := queue.Flush(); flushed != 2 {
		t.Fatalf("expected 2 callbacks flushed, got %d", flushed)
	}
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Fatalf("unexpected callback order: %v", calls)
	}
	if flushed := queue.Flush(); flushed != 0 {
		t.Fatalf("expected empty flush, got %d", flushed)
	}
}

func TestQueue_ScheduleDuringFlush(t *testing.T) {
	queue := NewQueue()
	ran := 0
	queue.Schedule(func() {
		queue.Schedule(func() { ran++ })
	})

	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 callback flushed, got %d", flushed)
	}
	if ran != 0 {
		t.Fatalf("expected nested callback to wait for next flush, got %d", ran)
	}
	queue.Flush()
	if ran != 1 {
		t.Fatalf("expected nested callback after second flush, got %d", ran)
	}
}
