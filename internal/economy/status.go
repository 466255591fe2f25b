package economy

import "math"

// Status is the outcome of a session after the latest round.
type Status uint8

const (
	Continuing Status = iota
	WonByTarget
	LostByRounds
	LostByDeficit
)

// String returns a stable identifier for the status.
func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case WonByTarget:
		return "won_by_target"
	case LostByRounds:
		return "lost_by_rounds"
	case LostByDeficit:
		return "lost_by_deficit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool { return s != Continuing }

// Won reports whether the status is a win.
func (s Status) Won() bool { return s == WonByTarget }

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Evaluate classifies the session after round rounds have been played.
//
// The round limit is checked before the win condition, so hitting the
// target on the final round still ends as LostByRounds. The win check uses
// the absolute deficit while the loss check uses the signed deficit; a large
// surplus never loses.
func Evaluate(round int, st State, cfg Config) Status {
	if round >= cfg.MaxRounds {
		return LostByRounds
	}
	if st.GDP >= cfg.TargetGDP && math.Abs(st.BudgetDeficit) <= cfg.MaxDeficit {
		return WonByTarget
	}
	if st.BudgetDeficit > cfg.MaxDeficit {
		return LostByDeficit
	}
	return Continuing
}
