package service

import (
	"github.com/adekau/wvwgg-solver/internal/domain/model"
)

// Method tags how a result was reached, so callers can tell a
// mathematical proof from a best-effort approximation.
type Method string

// Resolution methods.
const (
	// MethodExhaustive: branch-and-bound found the assignment and the
	// hill-climber minimized its margin.
	MethodExhaustive Method = "exhaustive"
	// MethodRandomized: the exhaustive search ran out of budget and a
	// random sample produced the assignment. Non-exhaustive.
	MethodRandomized Method = "randomized"
	// MethodDeterministicSeed: the max-catch-up seed produced the
	// assignment after random sampling failed. Non-exhaustive.
	MethodDeterministicSeed Method = "deterministic-seed"
	// MethodProvenInfeasible: branch-and-bound proved no assignment can
	// reach the desired order. Conclusive.
	MethodProvenInfeasible Method = "proven-infeasible"
	// MethodTimeout: every strategy ran out of budget without a
	// conclusion. Explicitly NOT an infeasibility verdict.
	MethodTimeout Method = "timeout"
)

// Difficulty is a coarse label for how demanding the found assignment is
// on the desired leader.
type Difficulty string

// Difficulty labels, thresholded on the fraction of skirmishes in which
// the desired leader must take outright first place.
const (
	DifficultyEasy     Difficulty = "easy"      // <= 40% of skirmishes
	DifficultyModerate Difficulty = "moderate"  // <= 60%
	DifficultyHard     Difficulty = "hard"      // <= 80%
	DifficultyVeryHard Difficulty = "very-hard" // above 80%
)

// Difficulty thresholds.
const (
	easyThreshold     = 0.40
	moderateThreshold = 0.60
	hardThreshold     = 0.80
)

// difficultyOf derives the label from the fraction of skirmishes where
// the desired leader takes first place.
func difficultyOf(firstPlaceFraction float64) Difficulty {
	switch {
	case firstPlaceFraction <= easyThreshold:
		return DifficultyEasy
	case firstPlaceFraction <= moderateThreshold:
		return DifficultyModerate
	case firstPlaceFraction <= hardThreshold:
		return DifficultyHard
	default:
		return DifficultyVeryHard
	}
}

// Request is one scenario to solve: where the three teams stand now,
// which skirmishes remain, and the final order the caller wants.
type Request struct {
	// Scores holds the current cumulative victory points per team.
	Scores map[model.TeamID]int `json:"scores"`
	// Events are the remaining skirmishes in chronological order.
	Events []model.Event `json:"events"`
	// DesiredOrder lists three distinct team ids: desired 1st, 2nd, 3rd.
	DesiredOrder [model.TeamCount]model.TeamID `json:"desired_order"`
	// MinMargin overrides the minimum separation between adjacent ranks
	// when positive.
	MinMargin int `json:"min_margin,omitempty"`
}

// EventRanks is the finishing order of one skirmish, as ranks 1..3 per
// team.
type EventRanks struct {
	EventID string               `json:"event_id"`
	Ranks   map[model.TeamID]int `json:"ranks"`
}

// Result is the outcome of a solve.
type Result struct {
	// Feasible reports whether an assignment reaching the desired order
	// was found. Check Method to see how conclusive a false value is.
	Feasible bool   `json:"feasible"`
	Method   Method `json:"method"`
	// FinalScores are the cumulative scores after playing the returned
	// assignment. Present only when Feasible.
	FinalScores map[model.TeamID]int `json:"final_scores,omitempty"`
	// Margin is the sum of adjacent-rank gaps in the final standings.
	Margin int `json:"margin,omitempty"`
	// Assignment holds one finishing order per remaining skirmish.
	Assignment []EventRanks `json:"assignment,omitempty"`
	// Iterations counts the total search effort: branch-and-bound nodes
	// plus hybrid samples.
	Iterations int `json:"iterations"`
	// Difficulty grades how often the desired leader must finish first.
	Difficulty Difficulty `json:"difficulty,omitempty"`
	// Reason explains infeasible or inconclusive outcomes.
	Reason string `json:"reason,omitempty"`
}
