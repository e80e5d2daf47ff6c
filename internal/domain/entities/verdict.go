package entities

import "time"

// Verdict is the pass/fail outcome of a gate run
type Verdict string

// Verdict values
const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
)

// GateResult holds the transient outcome of one analysis run
type GateResult struct {
	ToolPath     string
	ToolExitCode int // as reported by the tool; -1 when killed by a signal
	Verdict      Verdict
	Duration     time.Duration
}

// Passed reports whether the gate passed
func (r *GateResult) Passed() bool {
	return r != nil && r.Verdict == VerdictPass
}
