package economy

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Axis lists candidate values for one policy field.
type Axis struct {
	Key    string
	Values []float64
}

// SweepResult captures how a constant policy fares over a full session.
type SweepResult struct {
	Policy Policy `json:"policy"`
	Status Status `json:"status"`
	Rounds int    `json:"rounds"`
	Final  State  `json:"final"`
}

// PolicyGrid builds the cartesian product of the axes on top of the
// baseline. Axes with no values leave the baseline value in place.
func PolicyGrid(axes ...Axis) ([]Policy, error) {
	grid := []Policy{Baseline()}
	for _, axis := range axes {
		if _, ok := PolicyControl(axis.Key); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPolicyKey, axis.Key)
		}
		if len(axis.Values) == 0 {
			continue
		}
		next := make([]Policy, 0, len(grid)*len(axis.Values))
		for _, p := range grid {
			for _, v := range axis.Values {
				candidate := p
				candidate.Set(axis.Key, v)
				next = append(next, candidate)
			}
		}
		grid = next
	}
	return grid, nil
}

// PlayConstant applies the same policy every round until the session ends.
func PlayConstant(cfg Config, p Policy) (SweepResult, error) {
	s := NewSession(cfg)
	for !s.Status().Terminal() {
		if _, err := s.Apply(p); err != nil {
			return SweepResult{}, err
		}
	}
	return SweepResult{Policy: p, Status: s.Status(), Rounds: s.Round(), Final: s.State()}, nil
}

// Sweep plays every candidate with a pool of workers and returns the results
// ranked best first. Candidates that fail validation are skipped. Work stops
// early when ctx is cancelled and the results gathered so far are returned
// together with ctx.Err().
func Sweep(ctx context.Context, cfg Config, candidates []Policy, workers int) ([]SweepResult, error) {
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan Policy)
	results := make(chan SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				res, err := PlayConstant(cfg, p)
				if err != nil {
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, p := range candidates {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]SweepResult, 0, len(candidates))
	for res := range results {
		all = append(all, res)
	}
	RankResults(all)
	return all, ctx.Err()
}

// RankResults orders results: wins first, then fewer rounds for wins, then
// higher final GDP, then lower deficit. Ties keep policy order stable.
func RankResults(all []SweepResult) {
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Status.Won() != b.Status.Won() {
			return a.Status.Won()
		}
		if a.Status.Won() && a.Rounds != b.Rounds {
			return a.Rounds < b.Rounds
		}
		if a.Final.GDP != b.Final.GDP {
			return a.Final.GDP > b.Final.GDP
		}
		if a.Final.BudgetDeficit != b.Final.BudgetDeficit {
			return a.Final.BudgetDeficit < b.Final.BudgetDeficit
		}
		return lessPolicy(a.Policy, b.Policy)
	})
}

func lessPolicy(a, b Policy) bool {
	for _, key := range PolicyKeys() {
		av, _ := a.Get(key)
		bv, _ := b.Get(key)
		if av != bv {
			return av < bv
		}
	}
	return false
}
