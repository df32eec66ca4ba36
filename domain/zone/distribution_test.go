package zone

import (
	"encoding/json"
	"math"
	"testing"
)

func TestRarityDistribution_Validate(t *testing.T) {
	tests := []struct {
		name        string
		dist        RarityDistribution
		expectError bool
	}{
		{
			name:        "Valid exact sum",
			dist:        RarityDistribution{0.6, 0.3, 0.08, 0.02, 0, 0},
			expectError: false,
		},
		{
			name:        "Valid within tolerance",
			dist:        RarityDistribution{0.6, 0.3, 0.08, 0.02, 0.00005, 0},
			expectError: false,
		},
		{
			name:        "Invalid - sum too low",
			dist:        RarityDistribution{0.5, 0.3, 0.08, 0.02, 0, 0},
			expectError: true,
		},
		{
			name:        "Invalid - sum too high",
			dist:        RarityDistribution{0.6, 0.3, 0.08, 0.02, 0.05, 0},
			expectError: true,
		},
		{
			name:        "Invalid - negative weight",
			dist:        RarityDistribution{1.2, -0.2, 0, 0, 0, 0},
			expectError: true,
		},
		{
			name:        "Invalid - NaN weight",
			dist:        RarityDistribution{math.NaN(), 0.5, 0.5, 0, 0, 0},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dist.Validate()
			if tt.expectError && err == nil {
				t.Errorf("Expected error for %s, got nil", tt.name)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for %s: %v", tt.name, err)
			}
		})
	}
}

func TestRarityDistribution_Normalize(t *testing.T) {
	d := RarityDistribution{2, 1, 1, 0, 0, 0}
	n := d.Normalize()
	if err := n.Validate(); err != nil {
		t.Fatalf("normalized distribution should validate: %v", err)
	}
	if n[0] != 0.5 || n[1] != 0.25 || n[2] != 0.25 {
		t.Errorf("unexpected normalized weights: %v", n)
	}

	var zero RarityDistribution
	if got := zero.Normalize(); !got.IsZero() {
		t.Errorf("normalizing zero distribution should stay zero, got %v", got)
	}
}

func TestRarityDistribution_ScanPadsAndTruncates(t *testing.T) {
	var short RarityDistribution
	if err := short.Scan([]byte(`[0.5,0.5]`)); err != nil {
		t.Fatalf("scan short array: %v", err)
	}
	want := RarityDistribution{0.5, 0.5, 0, 0, 0, 0}
	if short != want {
		t.Errorf("short scan = %v, want %v", short, want)
	}

	var long RarityDistribution
	if err := long.Scan(`[0.1,0.1,0.1,0.1,0.1,0.1,0.4]`); err != nil {
		t.Fatalf("scan long array: %v", err)
	}
	if long[5] != 0.1 {
		t.Errorf("long scan should truncate, got %v", long)
	}

	var fromNil RarityDistribution
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !fromNil.IsZero() {
		t.Errorf("nil scan should produce a zero distribution, got %v", fromNil)
	}
}

func TestRarityDistribution_JSONRoundTrip(t *testing.T) {
	d := DefaultDistribution(ZoneDeepSeaCanyon)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back RarityDistribution
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip changed distribution: %v != %v", back, d)
	}
}

func TestDefaultDistribution(t *testing.T) {
	for _, zoneID := range []int64{ZoneNoviceHarbor, ZoneDeepSeaCanyon, ZoneLegendarySea, 7, 42} {
		d := DefaultDistribution(zoneID)
		if err := d.Validate(); err != nil {
			t.Errorf("default distribution for zone %d invalid: %v", zoneID, err)
		}
	}
}
