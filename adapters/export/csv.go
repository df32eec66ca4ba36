package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reeladmin/models"
)

// Column layouts for the downloadable import templates. Import files
// must carry exactly these headers in this order.
var (
	FishCSVHeader = []string{
		"name", "description", "rarity", "base_value",
		"min_weight", "max_weight", "icon_url",
	}
	RodCSVHeader = []string{
		"name", "description", "rarity", "source", "purchase_cost",
		"bonus_fish_quality_modifier", "bonus_fish_quantity_modifier",
		"bonus_rare_fish_chance", "durability", "icon_url",
	}
	AccessoryCSVHeader = []string{
		"name", "description", "rarity", "slot_type",
		"bonus_fish_quality_modifier", "bonus_fish_quantity_modifier",
		"bonus_rare_fish_chance", "bonus_coin_modifier",
		"other_bonus_description", "icon_url",
	}
)

// RowError describes a rejected import row. Row numbers are 1-based
// and count the header row, matching what a spreadsheet shows.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// WriteFishTemplate writes the fish import template with one example row.
func WriteFishTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(FishCSVHeader); err != nil {
		return err
	}
	example := []string{"Crucian Carp", "A common pond fish.", "1", "10", "100", "2000", ""}
	if err := cw.Write(example); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteRodTemplate writes the rod import template with one example row.
func WriteRodTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RodCSVHeader); err != nil {
		return err
	}
	example := []string{"Bamboo Rod", "A beginner's rod.", "1", "shop", "100", "0", "0", "0", "100", ""}
	if err := cw.Write(example); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteAccessoryTemplate writes the accessory import template with one
// example row.
func WriteAccessoryTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(AccessoryCSVHeader); err != nil {
		return err
	}
	example := []string{"Lucky Pendant", "A charm said to attract coins.", "2", "general", "1.05", "1.0", "0.02", "1.10", "", ""}
	if err := cw.Write(example); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ParseFishCSV parses a fish import file. Rows that fail validation are
// collected into RowErrors and skipped, so a single bad row does not
// abort the whole import.
func ParseFishCSV(r io.Reader) ([]models.Fish, []RowError, error) {
	records, err := readAll(r, FishCSVHeader)
	if err != nil {
		return nil, nil, err
	}

	var fish []models.Fish
	var rowErrs []RowError
	for i, rec := range records {
		rowNum := i + 2
		f, err := parseFishRow(rec)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		fish = append(fish, f)
	}
	return fish, rowErrs, nil
}

// ParseRodCSV parses a rod import file with the same row-level error
// handling as ParseFishCSV.
func ParseRodCSV(r io.Reader) ([]models.Rod, []RowError, error) {
	records, err := readAll(r, RodCSVHeader)
	if err != nil {
		return nil, nil, err
	}

	var rods []models.Rod
	var rowErrs []RowError
	for i, rec := range records {
		rowNum := i + 2
		rod, err := parseRodRow(rec)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		rods = append(rods, rod)
	}
	return rods, rowErrs, nil
}

// ParseAccessoryCSV parses an accessory import file with the same
// row-level error handling as ParseFishCSV.
func ParseAccessoryCSV(r io.Reader) ([]models.Accessory, []RowError, error) {
	records, err := readAll(r, AccessoryCSVHeader)
	if err != nil {
		return nil, nil, err
	}

	var accessories []models.Accessory
	var rowErrs []RowError
	for i, rec := range records {
		rowNum := i + 2
		a, err := parseAccessoryRow(rec)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		accessories = append(accessories, a)
	}
	return accessories, rowErrs, nil
}

func readAll(r io.Reader, wantHeader []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	if err := checkHeader(header, wantHeader); err != nil {
		return nil, err
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read data rows: %w", err)
	}
	return records, nil
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if strings.TrimSpace(strings.ToLower(got[i])) != want[i] {
			return fmt.Errorf("column %d should be %q, got %q", i+1, want[i], got[i])
		}
	}
	return nil
}

func parseFishRow(rec []string) (models.Fish, error) {
	var f models.Fish

	f.Name = strings.TrimSpace(rec[0])
	if f.Name == "" {
		return f, fmt.Errorf("name is required")
	}
	f.Description = optionalString(rec[1])

	rarity, err := parseRarity(rec[2])
	if err != nil {
		return f, err
	}
	f.Rarity = rarity

	baseValue, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
	if err != nil || baseValue < 0 {
		return f, fmt.Errorf("base_value must be a non-negative integer")
	}
	f.BaseValue = baseValue

	minWeight, err := strconv.Atoi(strings.TrimSpace(rec[4]))
	if err != nil || minWeight < 1 {
		return f, fmt.Errorf("min_weight must be a positive integer")
	}
	maxWeight, err := strconv.Atoi(strings.TrimSpace(rec[5]))
	if err != nil || maxWeight < minWeight {
		return f, fmt.Errorf("max_weight must be an integer >= min_weight")
	}
	f.MinWeight = minWeight
	f.MaxWeight = maxWeight

	f.IconURL = optionalString(rec[6])
	return f, nil
}

func parseRodRow(rec []string) (models.Rod, error) {
	var rod models.Rod

	rod.Name = strings.TrimSpace(rec[0])
	if rod.Name == "" {
		return rod, fmt.Errorf("name is required")
	}
	rod.Description = optionalString(rec[1])

	rarity, err := parseRarity(rec[2])
	if err != nil {
		return rod, err
	}
	rod.Rarity = rarity

	source := strings.TrimSpace(strings.ToLower(rec[3]))
	switch source {
	case models.RodSourceShop, models.RodSourceGacha, models.RodSourceEvent:
		rod.Source = source
	default:
		return rod, fmt.Errorf("source must be one of shop, gacha, event")
	}

	if cost := strings.TrimSpace(rec[4]); cost != "" {
		v, err := strconv.ParseInt(cost, 10, 64)
		if err != nil || v < 0 {
			return rod, fmt.Errorf("purchase_cost must be a non-negative integer")
		}
		rod.PurchaseCost = &v
	}

	bonuses := make([]float64, 3)
	bonusNames := []string{
		"bonus_fish_quality_modifier",
		"bonus_fish_quantity_modifier",
		"bonus_rare_fish_chance",
	}
	for i := 0; i < 3; i++ {
		cell := strings.TrimSpace(rec[5+i])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return rod, fmt.Errorf("%s must be a number", bonusNames[i])
		}
		bonuses[i] = v
	}
	rod.BonusFishQualityModifier = bonuses[0]
	rod.BonusFishQuantityModifier = bonuses[1]
	rod.BonusRareFishChance = bonuses[2]

	if dur := strings.TrimSpace(rec[8]); dur != "" {
		v, err := strconv.Atoi(dur)
		if err != nil || v < 1 {
			return rod, fmt.Errorf("durability must be a positive integer")
		}
		rod.Durability = &v
	}

	rod.IconURL = optionalString(rec[9])
	return rod, nil
}

func parseAccessoryRow(rec []string) (models.Accessory, error) {
	var a models.Accessory

	a.Name = strings.TrimSpace(rec[0])
	if a.Name == "" {
		return a, fmt.Errorf("name is required")
	}
	a.Description = optionalString(rec[1])

	rarity, err := parseRarity(rec[2])
	if err != nil {
		return a, err
	}
	a.Rarity = rarity

	a.SlotType = strings.TrimSpace(strings.ToLower(rec[3]))
	if a.SlotType == "" {
		a.SlotType = "general"
	}

	// Blank modifier cells fall back to the neutral values.
	modifiers := []struct {
		cell     int
		name     string
		fallback float64
		dst      *float64
	}{
		{4, "bonus_fish_quality_modifier", 1.0, &a.BonusFishQualityModifier},
		{5, "bonus_fish_quantity_modifier", 1.0, &a.BonusFishQuantityModifier},
		{6, "bonus_rare_fish_chance", 0.0, &a.BonusRareFishChance},
		{7, "bonus_coin_modifier", 1.0, &a.BonusCoinModifier},
	}
	for _, m := range modifiers {
		cell := strings.TrimSpace(rec[m.cell])
		if cell == "" {
			*m.dst = m.fallback
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return a, fmt.Errorf("%s must be a number", m.name)
		}
		*m.dst = v
	}

	a.OtherBonusDescription = optionalString(rec[8])
	a.IconURL = optionalString(rec[9])
	return a, nil
}

func parseRarity(cell string) (int, error) {
	rarity, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil || rarity < 1 || rarity > 6 {
		return 0, fmt.Errorf("rarity must be an integer between 1 and 6")
	}
	return rarity, nil
}

func optionalString(cell string) *string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	return &s
}
