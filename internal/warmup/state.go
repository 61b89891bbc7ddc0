package warmup

import "time"

// State is the per-environment state of a warmed function. It lives as long
// as the execution environment and is only touched by the top-level
// invocation being processed, so it needs no locking.
type State struct {
	Warm       bool
	LastAccess *time.Time
}

func (s *State) markWarm() {
	s.Warm = true
}

func (s *State) touch(now time.Time) {
	s.Warm = true
	s.LastAccess = &now
}
