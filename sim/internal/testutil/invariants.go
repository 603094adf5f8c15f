package testutil

import "testing"

// AssertCompletionFormulas checks turnaround = completion - arrival,
// wait = turnaround - burst, and that neither is negative.
func AssertCompletionFormulas(t *testing.T, pid int, arrival, burst, completion, turnaround, wait int64) {
	t.Helper()
	if turnaround != completion-arrival {
		t.Errorf("pid %d: turnaround %d != completion %d - arrival %d", pid, turnaround, completion, arrival)
	}
	if wait != turnaround-burst {
		t.Errorf("pid %d: wait %d != turnaround %d - burst %d", pid, wait, turnaround, burst)
	}
	if turnaround < 0 || wait < 0 {
		t.Errorf("pid %d: negative outcome (turnaround=%d, wait=%d)", pid, turnaround, wait)
	}
}

// AssertTimeConservation checks that every elapsed tick was spent on work,
// switch overhead or idleness: burst == total - idle - switch.
func AssertTimeConservation(t *testing.T, totalBurst, totalTime, idle, switchTime int64) {
	t.Helper()
	if totalBurst != totalTime-idle-switchTime {
		t.Errorf("time conservation violated: burst %d != total %d - idle %d - switch %d",
			totalBurst, totalTime, idle, switchTime)
	}
}

// AssertSwitchOverhead checks that each context change cost exactly latency ticks.
func AssertSwitchOverhead(t *testing.T, latency, contextSwitches, switchTime int64) {
	t.Helper()
	if latency*contextSwitches != switchTime {
		t.Errorf("switch overhead: %d switches × latency %d = %d, but switch time is %d",
			contextSwitches, latency, latency*contextSwitches, switchTime)
	}
}
