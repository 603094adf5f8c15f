// Implements the ReadyQueue, which holds arrived processes that are not running.
// Processes are enqueued on arrival; policies pop and re-append during a decision.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is an ordered sequence of arrived, unfinished processes.
// The engine owns it and lends it to the SchedulerPolicy for one Decide call at a time.
type ReadyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: p must not be nil")
	}
	rq.queue = append(rq.queue, p)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(fmt.Sprintf("P%d", p.PID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue = rq.queue[1:]
	return p
}

// Remove deletes the process with the given pid, preserving the order of the rest.
// Returns the removed process, or nil if it is not queued.
func (rq *ReadyQueue) Remove(pid int) *Process {
	for i, p := range rq.queue {
		if p.PID == pid {
			rq.queue = append(rq.queue[:i:i], rq.queue[i+1:]...)
			return p
		}
	}
	return nil
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers may iterate
// over it but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*Process {
	return rq.queue
}

// PIDs returns a copy of the queued pids in queue order.
func (rq *ReadyQueue) PIDs() []int {
	pids := make([]int, len(rq.queue))
	for i, p := range rq.queue {
		pids[i] = p.PID
	}
	return pids
}

// PopMin removes and returns the queued process for which less reports it
// precedes every other queued process. Returns nil if the queue is empty.
func (rq *ReadyQueue) PopMin(less func(a, b *Process) bool) *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	best := rq.queue[0]
	for _, p := range rq.queue[1:] {
		if less(p, best) {
			best = p
		}
	}
	return rq.Remove(best.PID)
}
