// Package placement models the six ways one skirmish's finishing ranks
// can be assigned to the three teams, and the arithmetic built on top of
// them: score simulation, the strict-ordering check, and the margin.
//
// Throughout this package scores are indexed by desired rank slot, not by
// team: slot 0 is the team the caller wants to finish first, slot 1 the
// desired runner-up, slot 2 the desired last. The orchestrator maps team
// ids onto slots at the boundary.
package placement

import (
	"fmt"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
)

// Placement is one of the six bijections from desired slots onto the
// finishing ranks of a single skirmish. The constant name reads as the
// finishing rank of slot 0, slot 1, slot 2 in order: P132 sends the
// desired leader to 1st place, the desired runner-up to 3rd, and the
// desired last team to 2nd.
type Placement uint8

const (
	P123 Placement = iota
	P132
	P213
	P231
	P312
	P321

	// Count is the number of distinct placements.
	Count = 6
)

// MaxCatchUp is the single most favorable placement for widening the gap
// between the desired leader and the desired runner-up: the leader takes
// 1st while the runner-up is pushed to 3rd.
const MaxCatchUp = P132

// All enumerates every placement in deterministic order.
var All = [Count]Placement{P123, P132, P213, P231, P312, P321}

// ranks[p][slot] is the finishing rank (0 = 1st place) slot takes under p.
var ranks = [Count][model.TeamCount]int{
	P123: {0, 1, 2},
	P132: {0, 2, 1},
	P213: {1, 0, 2},
	P231: {1, 2, 0},
	P312: {2, 0, 1},
	P321: {2, 1, 0},
}

// Valid reports whether p is one of the six defined placements.
func (p Placement) Valid() bool {
	return p < Count
}

// Rank returns the finishing rank (0 = 1st place) the given desired slot
// takes under this placement.
func (p Placement) Rank(slot int) int {
	return ranks[p][slot]
}

// Points returns the points each desired slot earns from the given tier
// under this placement.
func (p Placement) Points(tier model.Tier) [model.TeamCount]int {
	byRank := [model.TeamCount]int{tier.First, tier.Second, tier.Third}
	var pts [model.TeamCount]int
	for slot, rank := range ranks[p] {
		pts[slot] = byRank[rank]
	}
	return pts
}

// Gain returns how much this placement widens the desired leader's lead
// over the desired runner-up for the given tier. Negative when the
// placement narrows it.
func (p Placement) Gain(tier model.Tier) int {
	pts := p.Points(tier)
	return pts[0] - pts[1]
}

// String renders the placement as the finishing ranks of the three
// desired slots, e.g. "1-3-2".
func (p Placement) String() string {
	if !p.Valid() {
		return fmt.Sprintf("placement(%d)", uint8(p))
	}
	r := ranks[p]
	return fmt.Sprintf("%d-%d-%d", r[0]+1, r[1]+1, r[2]+1)
}

// Simulate applies an assignment to the initial slot scores and returns
// the final cumulative scores. Assignment length must equal the number of
// tiers; extra tiers are left unplayed.
func Simulate(scores [model.TeamCount]int, tiers []model.Tier, assignment []Placement) [model.TeamCount]int {
	final := scores
	for i, p := range assignment {
		pts := p.Points(tiers[i])
		for slot := range final {
			final[slot] += pts[slot]
		}
	}
	return final
}

// Ordered reports whether the scores satisfy the desired strict ordering
// with at least minMargin separating each adjacent pair.
func Ordered(scores [model.TeamCount]int, minMargin int) bool {
	return scores[0] >= scores[1]+minMargin && scores[1] >= scores[2]+minMargin
}

// Margin is the sum of adjacent-rank score gaps: how decisively the
// desired order holds. Only meaningful when Ordered reports true.
func Margin(scores [model.TeamCount]int) int {
	return (scores[0] - scores[1]) + (scores[1] - scores[2])
}
