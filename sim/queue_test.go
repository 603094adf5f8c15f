package sim

import (
	"testing"
)

func TestReadyQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with processes [1, 2]
	rq := &ReadyQueue{}
	p1 := &Process{PID: 1}
	p2 := &Process{PID: 2}
	rq.Enqueue(p1)
	rq.Enqueue(p2)

	// WHEN Peek() is called
	got := rq.Peek()

	// THEN it returns the front element without removing it
	if got != p1 {
		t.Errorf("Peek: got process %v, want %v", got.PID, p1.PID)
	}
	if rq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", rq.Len())
	}
}

func TestReadyQueue_Peek_Empty_ReturnsNil(t *testing.T) {
	rq := &ReadyQueue{}
	if got := rq.Peek(); got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
	if got := rq.Dequeue(); got != nil {
		t.Errorf("Dequeue on empty queue: got %v, want nil", got)
	}
	if got := rq.PopMin(byArrival); got != nil {
		t.Errorf("PopMin on empty queue: got %v, want nil", got)
	}
}

func TestReadyQueue_Dequeue_FIFO(t *testing.T) {
	rq := &ReadyQueue{}
	for pid := 1; pid <= 3; pid++ {
		rq.Enqueue(&Process{PID: pid})
	}
	for want := 1; want <= 3; want++ {
		if got := rq.Dequeue(); got.PID != want {
			t.Errorf("Dequeue: got pid %d, want %d", got.PID, want)
		}
	}
	if rq.Len() != 0 {
		t.Errorf("Len after draining: got %d, want 0", rq.Len())
	}
}

func TestReadyQueue_Remove_PreservesOrder(t *testing.T) {
	// GIVEN [1, 2, 3, 4]
	rq := &ReadyQueue{}
	for pid := 1; pid <= 4; pid++ {
		rq.Enqueue(&Process{PID: pid})
	}

	// WHEN pid 2 is removed
	removed := rq.Remove(2)

	// THEN it is returned and the rest keep their order
	if removed == nil || removed.PID != 2 {
		t.Fatalf("Remove(2): got %v, want pid 2", removed)
	}
	if got := rq.String(); got != "[P1 P3 P4]" {
		t.Errorf("after Remove: got %s, want [P1 P3 P4]", got)
	}
	if rq.Remove(42) != nil {
		t.Error("Remove of absent pid should return nil")
	}
}

func TestReadyQueue_PopMin_TieKeepsQueueOrder(t *testing.T) {
	// GIVEN two processes with equal keys, later pid first in queue
	rq := &ReadyQueue{}
	rq.Enqueue(&Process{PID: 5, BurstTime: 3})
	rq.Enqueue(&Process{PID: 2, BurstTime: 3})
	rq.Enqueue(&Process{PID: 7, BurstTime: 1})

	byBurstOnly := func(a, b *Process) bool { return a.BurstTime < b.BurstTime }

	// WHEN popped repeatedly
	first := rq.PopMin(byBurstOnly)
	second := rq.PopMin(byBurstOnly)

	// THEN the strict minimum comes first, and ties resolve to the earlier queue position
	if first.PID != 7 {
		t.Errorf("first PopMin: got pid %d, want 7", first.PID)
	}
	if second.PID != 5 {
		t.Errorf("second PopMin: got pid %d, want 5", second.PID)
	}
}

func TestReadyQueue_PIDs_IsACopy(t *testing.T) {
	rq := &ReadyQueue{}
	rq.Enqueue(&Process{PID: 1})
	pids := rq.PIDs()
	pids[0] = 99
	if rq.Peek().PID != 1 {
		t.Error("mutating PIDs() result changed the queue")
	}
}

func TestReadyQueue_Enqueue_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Enqueue(nil) did not panic")
		}
	}()
	(&ReadyQueue{}).Enqueue(nil)
}
