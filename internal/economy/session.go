package economy

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned when a policy is applied after the session ended.
var ErrGameOver = errors.New("game is over")

// Session owns the economic state and round history of one game. A reset
// is a new Session; an existing Session is never reinitialised.
type Session struct {
	cfg      Config
	baseline Policy

	round   int
	state   State
	policy  Policy
	last    Resolution
	history []RoundRecord
}

// NewSession starts a game at round 0 with the initial economy.
func NewSession(cfg Config) *Session {
	return NewSessionFrom(cfg, 0, InitialState())
}

// NewSessionFrom starts a game at the given round with the given economy.
// Earlier rounds are unknown, so the history holds round+1 copies of st.
func NewSessionFrom(cfg Config, round int, st State) *Session {
	if round < 0 {
		round = 0
	}
	s := &Session{
		cfg:      cfg,
		baseline: Baseline(),
		round:    round,
		state:    st,
		policy:   Baseline(),
		history:  make([]RoundRecord, 0, max(round+1, cfg.MaxRounds+1)),
	}
	for i := 0; i <= round; i++ {
		s.history = append(s.history, RoundRecord{Round: i, Policy: s.baseline, State: st})
	}
	return s
}

// Apply resolves p against the baseline, advances the round and records the
// new state. Out-of-range policies and policies applied after the game has
// ended are rejected without changing the session.
func (s *Session) Apply(p Policy) (State, error) {
	if status := s.Status(); status.Terminal() {
		return s.state, fmt.Errorf("%w: %s", ErrGameOver, status)
	}
	if err := p.Validate(); err != nil {
		return s.state, fmt.Errorf("apply round %d: %w", s.round+1, err)
	}
	s.last = Resolve(s.state, s.baseline, p)
	s.state = s.last.Next
	s.policy = p
	s.round++
	s.history = append(s.history, RoundRecord{Round: s.round, Policy: p, State: s.state})
	return s.state, nil
}

// Status evaluates the session against its limits. Calling it repeatedly
// without an intervening Apply yields the same result.
func (s *Session) Status() Status {
	return Evaluate(s.round, s.state, s.cfg)
}

// History returns a copy of the round records, oldest first.
func (s *Session) History() []RoundRecord {
	return append([]RoundRecord(nil), s.history...)
}

// Round returns the number of rounds played.
func (s *Session) Round() int { return s.round }

// State returns the current economy.
func (s *Session) State() State { return s.state }

// Policy returns the most recently applied policy, or the baseline before
// the first round.
func (s *Session) Policy() Policy { return s.policy }

// Baseline returns the reference policy used by this session.
func (s *Session) Baseline() Policy { return s.baseline }

// Config returns the session limits.
func (s *Session) Config() Config { return s.cfg }

// LastResolution returns the intermediate terms of the latest round. It is
// the zero value before the first round.
func (s *Session) LastResolution() Resolution { return s.last }

// Series extracts one metric per round from the history, oldest first.
func (s *Session) Series(metric func(State) float64) []float64 {
	out := make([]float64, len(s.history))
	for i, rec := range s.history {
		out[i] = metric(rec.State)
	}
	return out
}

// GDPOf selects the GDP metric for Series.
func GDPOf(st State) float64 { return st.GDP }

// DeficitOf selects the budget deficit metric for Series.
func DeficitOf(st State) float64 { return st.BudgetDeficit }
