// Package tiers resolves the point triple a skirmish awards from its
// start time and region. Victory points vary by time of day so that
// off-hour skirmishes count for less; the table is keyed by the twelve
// two-hour skirmish slots of a UTC day.
package tiers

import (
	"context"
	"time"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
)

// SlotsPerDay is the number of two-hour skirmish slots in a UTC day.
const SlotsPerDay = 12

// slotHours is the length of one skirmish slot in hours.
const slotHours = 2

// Source resolves the tier for a skirmish. Implementations must be
// deterministic: the same (time, region) always yields the same tier.
type Source interface {
	Lookup(ctx context.Context, start time.Time, region model.Region) (model.Tier, error)
}

// Table is an in-memory Source backed by a per-region slot table.
type Table struct {
	regions map[model.Region][SlotsPerDay]model.Tier
}

// Option applies a configuration option to the Table.
type Option func(*Table)

// WithRegionTable replaces the slot table for one region. Tables whose
// entries violate the tier invariant are ignored.
func WithRegionTable(region model.Region, slots [SlotsPerDay]model.Tier) Option {
	return func(t *Table) {
		for _, tier := range slots {
			if tier.Validate() != nil {
				return
			}
		}
		t.regions[region] = slots
	}
}

// Default slot tables. Prime-time slots award the richest tiers; the
// overnight trough awards the leanest.
var (
	defaultNA = [SlotsPerDay]model.Tier{
		{First: 43, Second: 32, Third: 21}, // 00-02 UTC, NA evening prime
		{First: 43, Second: 32, Third: 21},
		{First: 37, Second: 28, Third: 19},
		{First: 25, Second: 20, Third: 15},
		{First: 19, Second: 16, Third: 13},
		{First: 19, Second: 16, Third: 13},
		{First: 19, Second: 16, Third: 13},
		{First: 25, Second: 20, Third: 15},
		{First: 31, Second: 24, Third: 17},
		{First: 37, Second: 28, Third: 19},
		{First: 37, Second: 28, Third: 19},
		{First: 43, Second: 32, Third: 21},
	}
	defaultEU = [SlotsPerDay]model.Tier{
		{First: 25, Second: 20, Third: 15},
		{First: 19, Second: 16, Third: 13},
		{First: 19, Second: 16, Third: 13},
		{First: 19, Second: 16, Third: 13},
		{First: 25, Second: 20, Third: 15},
		{First: 31, Second: 24, Third: 17},
		{First: 37, Second: 28, Third: 19},
		{First: 37, Second: 28, Third: 19},
		{First: 43, Second: 32, Third: 21}, // 16-18 UTC, EU evening prime
		{First: 43, Second: 32, Third: 21},
		{First: 43, Second: 32, Third: 21},
		{First: 31, Second: 24, Third: 17},
	}
)

// NewTable creates a tier table with the default region tables.
func NewTable(opts ...Option) *Table {
	t := &Table{
		regions: map[model.Region][SlotsPerDay]model.Tier{
			model.RegionNA: defaultNA,
			model.RegionEU: defaultEU,
		},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Lookup returns the tier for the skirmish slot containing start.
func (t *Table) Lookup(_ context.Context, start time.Time, region model.Region) (model.Tier, error) {
	slots, ok := t.regions[region]
	if !ok {
		return model.Tier{}, &UnknownRegionError{Region: region}
	}
	slot := start.UTC().Hour() / slotHours
	return slots[slot], nil
}
