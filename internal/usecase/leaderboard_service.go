package usecase

import (
	"math"

	"github.com/puckboard/league-engine/internal/domain/stats"
)

// gaaEligibilityRatio is the fraction of the pool's maximum games played
// a goalie must reach to qualify for the GAA board. It keeps small-sample
// outliers (a backup with one shutout) off the leaderboard. The constant
// is inherited from the league's existing reports.
const gaaEligibilityRatio = 0.44

// Leaderboards are filled slot by slot: for each slot the whole pool is
// scanned and a candidate takes the slot when it beats the current holder
// and does not already hold an earlier slot (full-name equality, blank
// names included). The pool is small (tens of entries), so the quadratic
// scan is fine and keeps the selection semantics exact.

// TopPoints returns the n best scorers by points, ties broken by goals.
func TopPoints(pool []stats.PlayerLine, n int) []stats.PlayerLine {
	return selectTop(pool, n, playerName, stats.NullPlayer(), func(c, i stats.PlayerLine, _ bool) bool {
		if c.Points != i.Points {
			return c.Points > i.Points
		}
		return c.Goals > i.Goals
	})
}

// TopGoals returns the n best scorers by goals; first seen wins ties.
func TopGoals(pool []stats.PlayerLine, n int) []stats.PlayerLine {
	return selectTop(pool, n, playerName, stats.NullPlayer(), func(c, i stats.PlayerLine, _ bool) bool {
		return c.Goals > i.Goals
	})
}

// TopPointsPerGame returns the n best scorers by points per game; first
// seen wins ties.
func TopPointsPerGame(pool []stats.PlayerLine, n int) []stats.PlayerLine {
	return selectTop(pool, n, playerName, stats.NullPlayer(), func(c, i stats.PlayerLine, _ bool) bool {
		return c.PointsPerGame > i.PointsPerGame
	})
}

// TopGoalsAgainstAverage returns the n best goalies by GAA (lower is
// better). Goalies below the games-played eligibility floor are excluded
// from every slot regardless of their GAA.
func TopGoalsAgainstAverage(pool []stats.GoalieLine, n int) []stats.GoalieLine {
	floor := gaaFloor(pool)
	eligible := make([]stats.GoalieLine, 0, len(pool))
	for _, g := range pool {
		if g.GamesPlayed >= floor {
			eligible = append(eligible, g)
		}
	}

	// Any eligible goalie takes an empty slot; after that lower GAA wins.
	return selectTop(eligible, n, goalieName, stats.NullGoalie(), func(c, i stats.GoalieLine, filled bool) bool {
		if !filled {
			return true
		}
		return c.GAA < i.GAA
	})
}

// gaaFloor derives the minimum games played from the pool itself.
func gaaFloor(pool []stats.GoalieLine) int {
	maxGP := 0
	for _, g := range pool {
		if g.GamesPlayed > maxGP {
			maxGP = g.GamesPlayed
		}
	}
	return int(math.Ceil(gaaEligibilityRatio * float64(maxGP)))
}

func playerName(p stats.PlayerLine) string { return p.FullName }
func goalieName(g stats.GoalieLine) string { return g.FullName }

// selectTop fills n slots from pool. The comparator sees whether the slot
// already holds a real candidate, so a board can admit lines the sentinel
// comparison would reject. A slot's winner is marked taken by full name
// even when that name is blank; an unfilled slot keeps the sentinel and
// marks nothing.
func selectTop[T any](pool []T, n int, name func(T) string, sentinel T, better func(candidate, incumbent T, filled bool) bool) []T {
	if n <= 0 {
		return nil
	}

	out := make([]T, n)
	for i := range out {
		out[i] = sentinel
	}

	taken := make(map[string]struct{}, n)
	for slot := 0; slot < n; slot++ {
		filled := false
		for _, candidate := range pool {
			if _, occupied := taken[name(candidate)]; occupied {
				continue
			}
			if better(candidate, out[slot], filled) {
				out[slot] = candidate
				filled = true
			}
		}
		if filled {
			taken[name(out[slot])] = struct{}{}
		}
	}

	return out
}
