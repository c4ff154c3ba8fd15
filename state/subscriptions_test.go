package state

import "testing"

func TestSubscriptions_Clear(t *testing.T) {
	subs := &Subscriptions{}
	var order []int

	subs.Add(func() { order = append(order, 1) })
	subs.Add(func() { order = append(order, 2) })
	subs.Add(nil)

	if subs.Len() != 2 {
		t.Fatalf("expected 2 tracked callbacks, got %d", subs.Len())
	}
	subs.Clear()
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("expected reverse unsubscribe order, got %v", order)
	}

	subs.Clear()
	if len(order) != 2 {
		t.Fatalf("expected no extra calls after clear, got %v", order)
	}
}

func TestSubscriptions_Subscribe(t *testing.T) {
	cell := NewCell(1)
	var subs Subscriptions
	calls := 0

	subs.Subscribe(cell, func() {
		calls++
	})

	cell.Set(2)
	if calls != 1 {
		t.Fatalf("expected 1 callback, got %d", calls)
	}

	subs.Clear()
	cell.Set(3)
	if calls != 1 {
		t.Fatalf("expected no callbacks after clear, got %d", calls)
	}
}
