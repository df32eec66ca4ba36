package export

import (
	"fmt"

	"reeladmin/models"

	"github.com/xuri/excelize/v2"
)

// CatalogWorkbook builds an XLSX workbook with one sheet per template
// kind, for the admin "export catalog" download.
func CatalogWorkbook(fish []models.Fish, rods []models.Rod, baits []models.Bait, accessories []models.Accessory, items []models.Item) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeFishSheet(f, "Fish", fish); err != nil {
		return nil, err
	}
	if err := writeRodSheet(f, "Rods", rods); err != nil {
		return nil, err
	}
	if err := writeBaitSheet(f, "Baits", baits); err != nil {
		return nil, err
	}
	if err := writeAccessorySheet(f, "Accessories", accessories); err != nil {
		return nil, err
	}
	if err := writeItemSheet(f, "Items", items); err != nil {
		return nil, err
	}

	// excelize starts with a default "Sheet1"; drop it once real
	// sheets exist.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

// MarketWorkbook builds an XLSX workbook of the filtered market
// listings plus a summary sheet of the aggregate stats.
func MarketWorkbook(listings []models.MarketListing, stats models.MarketStats) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "Listings"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	header := []interface{}{
		"market_id", "seller", "item_type", "item_name",
		"quantity", "price", "refine_level", "listed_at",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, l := range listings {
		seller := l.SellerNickname
		if l.IsAnonymous {
			seller = "(anonymous)"
		}
		row := []interface{}{
			l.MarketID, seller, l.ItemType, l.ItemName,
			l.Quantity, l.Price, l.RefineLevel,
			l.ListedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheet, cellRef(i), &row); err != nil {
			return nil, err
		}
	}

	summary := "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, err
	}
	rows := [][]interface{}{
		{"listings", stats.ListingCount},
		{"total value", stats.TotalValue},
		{"mean price", stats.MeanPrice},
		{"median price", stats.MedianPrice},
		{"min price", stats.MinPrice},
		{"max price", stats.MaxPrice},
	}
	for i, row := range rows {
		r := row
		if err := f.SetSheetRow(summary, fmt.Sprintf("A%d", i+1), &r); err != nil {
			return nil, err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeFishSheet(f *excelize.File, sheet string, fish []models.Fish) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"fish_id", "name", "description", "rarity", "base_value", "min_weight", "max_weight", "icon_url"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, v := range fish {
		row := []interface{}{
			v.FishID, v.Name, deref(v.Description), v.Rarity,
			v.BaseValue, v.MinWeight, v.MaxWeight, deref(v.IconURL),
		}
		if err := f.SetSheetRow(sheet, cellRef(i), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeRodSheet(f *excelize.File, sheet string, rods []models.Rod) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{
		"rod_id", "name", "description", "rarity", "source", "purchase_cost",
		"quality_bonus", "quantity_bonus", "rare_chance_bonus", "durability", "icon_url",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, v := range rods {
		row := []interface{}{
			v.RodID, v.Name, deref(v.Description), v.Rarity, v.Source,
			derefInt64(v.PurchaseCost), v.BonusFishQualityModifier,
			v.BonusFishQuantityModifier, v.BonusRareFishChance,
			derefInt(v.Durability), deref(v.IconURL),
		}
		if err := f.SetSheetRow(sheet, cellRef(i), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeBaitSheet(f *excelize.File, sheet string, baits []models.Bait) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{
		"bait_id", "name", "rarity", "cost", "duration_minutes",
		"required_rod_rarity", "success_rate", "rare_chance",
		"garbage_reduction", "value_modifier", "quantity_modifier", "consumable",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, v := range baits {
		row := []interface{}{
			v.BaitID, v.Name, v.Rarity, v.Cost, v.DurationMinutes,
			v.RequiredRodRarity, v.SuccessRateModifier, v.RareChanceModifier,
			v.GarbageReductionModifier, v.ValueModifier, v.QuantityModifier,
			v.IsConsumable,
		}
		if err := f.SetSheetRow(sheet, cellRef(i), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeAccessorySheet(f *excelize.File, sheet string, accessories []models.Accessory) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{
		"accessory_id", "name", "rarity", "slot_type",
		"quality_bonus", "quantity_bonus", "rare_chance_bonus", "coin_bonus",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, v := range accessories {
		row := []interface{}{
			v.AccessoryID, v.Name, v.Rarity, v.SlotType,
			v.BonusFishQualityModifier, v.BonusFishQuantityModifier,
			v.BonusRareFishChance, v.BonusCoinModifier,
		}
		if err := f.SetSheetRow(sheet, cellRef(i), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeItemSheet(f *excelize.File, sheet string, items []models.Item) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"item_id", "name", "rarity", "item_type", "cost", "consumable"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, v := range items {
		row := []interface{}{v.ItemID, v.Name, v.Rarity, v.ItemType, v.Cost, v.IsConsumable}
		if err := f.SetSheetRow(sheet, cellRef(i), &row); err != nil {
			return err
		}
	}
	return nil
}

// cellRef returns the first cell of the i-th data row, below the header.
func cellRef(i int) string {
	return fmt.Sprintf("A%d", i+2)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(v *int64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
