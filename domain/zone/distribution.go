package zone

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tiers is the number of rarity tiers a zone draws from:
// 1-5 stars plus a combined 6+ star bucket.
const Tiers = 6

// SumTolerance is the maximum allowed deviation of a distribution's
// weight sum from 1.0.
const SumTolerance = 1e-4

// RarityDistribution is the probability vector a zone uses when rolling
// the rarity of a catch. Index 0 is 1-star, index 5 is the 6+ bucket.
type RarityDistribution [Tiers]float64

// Validate checks that all weights are non-negative finite numbers and
// that they sum to 1 within SumTolerance.
func (d RarityDistribution) Validate() error {
	for i, w := range d {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("rarity weight %d is not a finite number", i+1)
		}
		if w < 0 {
			return fmt.Errorf("rarity weight %d is negative: %g", i+1, w)
		}
	}
	sum := floats.Sum(d[:])
	if math.Abs(sum-1) > SumTolerance {
		return fmt.Errorf("rarity weights sum to %.6f, want 1.0 within %g", sum, SumTolerance)
	}
	return nil
}

// Sum returns the total weight of the distribution.
func (d RarityDistribution) Sum() float64 {
	return floats.Sum(d[:])
}

// Normalize returns a copy of the distribution scaled so its weights
// sum to exactly 1. A zero distribution is returned unchanged.
func (d RarityDistribution) Normalize() RarityDistribution {
	sum := floats.Sum(d[:])
	if sum == 0 {
		return d
	}
	var out RarityDistribution
	copy(out[:], d[:])
	floats.Scale(1/sum, out[:])
	return out
}

// Value implements driver.Valuer so distributions persist as JSON arrays.
func (d RarityDistribution) Value() (driver.Value, error) {
	return json.Marshal(d[:])
}

// Scan implements sql.Scanner. Stored arrays shorter than Tiers are
// zero-padded and longer ones truncated, matching how legacy zone
// configs were repaired on read.
func (d *RarityDistribution) Scan(src interface{}) error {
	if src == nil {
		*d = RarityDistribution{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into RarityDistribution", src)
	}
	var weights []float64
	if err := json.Unmarshal(raw, &weights); err != nil {
		return fmt.Errorf("invalid rarity distribution: %w", err)
	}
	var out RarityDistribution
	copy(out[:], weights)
	*d = out
	return nil
}

// MarshalJSON renders the distribution as a plain array.
func (d RarityDistribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(d[:])
}

// UnmarshalJSON accepts arrays of any length, padding or truncating to Tiers.
func (d *RarityDistribution) UnmarshalJSON(data []byte) error {
	var weights []float64
	if err := json.Unmarshal(data, &weights); err != nil {
		return err
	}
	var out RarityDistribution
	copy(out[:], weights)
	*d = out
	return nil
}

// Built-in zone identifiers. Zones above BuiltinZoneCount are
// admin-created custom zones.
const (
	ZoneNoviceHarbor  = 1
	ZoneDeepSeaCanyon = 2
	ZoneLegendarySea  = 3

	BuiltinZoneCount = 3
)

// DefaultDistribution returns the fallback rarity distribution for a
// zone whose stored configuration carries no explicit weights.
func DefaultDistribution(zoneID int64) RarityDistribution {
	switch zoneID {
	case ZoneNoviceHarbor:
		return RarityDistribution{0.6, 0.3, 0.08, 0.02, 0, 0}
	case ZoneDeepSeaCanyon:
		return RarityDistribution{0.4, 0.3, 0.2, 0.09, 0.01, 0}
	case ZoneLegendarySea:
		return RarityDistribution{0.3, 0.2, 0.2, 0.2, 0.08, 0.02}
	default:
		return RarityDistribution{0.16, 0.16, 0.16, 0.16, 0.16, 0.2}
	}
}

// IsZero reports whether the distribution carries no weight at all.
func (d RarityDistribution) IsZero() bool {
	return floats.Sum(d[:]) == 0
}
