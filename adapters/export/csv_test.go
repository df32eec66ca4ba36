package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFishTemplateRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFishTemplate(&buf))

	fish, rowErrs, err := ParseFishCSV(&buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, fish, 1)
	assert.Equal(t, "Crucian Carp", fish[0].Name)
	assert.Equal(t, 1, fish[0].Rarity)
}

func TestWriteRodTemplateRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRodTemplate(&buf))

	rods, rowErrs, err := ParseRodCSV(&buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rods, 1)
	assert.Equal(t, "shop", rods[0].Source)
	require.NotNil(t, rods[0].Durability)
	assert.Equal(t, 100, *rods[0].Durability)
}

func TestWriteAccessoryTemplateRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccessoryTemplate(&buf))

	accessories, rowErrs, err := ParseAccessoryCSV(&buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, accessories, 1)
	assert.Equal(t, "Lucky Pendant", accessories[0].Name)
	assert.Equal(t, "general", accessories[0].SlotType)
	assert.InDelta(t, 1.05, accessories[0].BonusFishQualityModifier, 1e-9)
	assert.InDelta(t, 1.10, accessories[0].BonusCoinModifier, 1e-9)
}

func TestParseAccessoryCSVDefaultsAndRowErrors(t *testing.T) {
	input := strings.Join([]string{
		strings.Join(AccessoryCSVHeader, ","),
		"Plain Ring,,1,,,,,,extra luck,",
		",missing name,2,general,1.0,1.0,0,1.0,,",
		"Bad Modifier,,2,general,abc,1.0,0,1.0,,",
	}, "\n")

	accessories, rowErrs, err := ParseAccessoryCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, accessories, 1)
	a := accessories[0]
	assert.Equal(t, "Plain Ring", a.Name)
	// Blank cells take the neutral defaults.
	assert.Equal(t, "general", a.SlotType)
	assert.InDelta(t, 1.0, a.BonusFishQualityModifier, 1e-9)
	assert.InDelta(t, 1.0, a.BonusFishQuantityModifier, 1e-9)
	assert.InDelta(t, 0.0, a.BonusRareFishChance, 1e-9)
	assert.InDelta(t, 1.0, a.BonusCoinModifier, 1e-9)
	require.NotNil(t, a.OtherBonusDescription)
	assert.Equal(t, "extra luck", *a.OtherBonusDescription)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 3, rowErrs[0].Row)
	assert.Contains(t, rowErrs[0].Message, "name")
	assert.Equal(t, 4, rowErrs[1].Row)
	assert.Contains(t, rowErrs[1].Message, "bonus_fish_quality_modifier")
}

func TestParseFishCSVCollectsRowErrors(t *testing.T) {
	input := strings.Join([]string{
		"name,description,rarity,base_value,min_weight,max_weight,icon_url",
		"Good Fish,,2,50,100,500,",
		",missing name,2,50,100,500,",
		"Bad Rarity,,9,50,100,500,",
		"Bad Weights,,2,50,500,100,",
		"Another Good,,3,120,200,800,http://example.com/f.png",
	}, "\n")

	fish, rowErrs, err := ParseFishCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, fish, 2)
	assert.Equal(t, "Good Fish", fish[0].Name)
	assert.Equal(t, "Another Good", fish[1].Name)
	require.NotNil(t, fish[1].IconURL)

	require.Len(t, rowErrs, 3)
	assert.Equal(t, 3, rowErrs[0].Row)
	assert.Contains(t, rowErrs[0].Message, "name")
	assert.Equal(t, 4, rowErrs[1].Row)
	assert.Contains(t, rowErrs[1].Message, "rarity")
	assert.Equal(t, 5, rowErrs[2].Row)
	assert.Contains(t, rowErrs[2].Message, "max_weight")
}

func TestParseRodCSVValidatesSource(t *testing.T) {
	input := strings.Join([]string{
		strings.Join(RodCSVHeader, ","),
		"Event Rod,,3,event,,0.1,0,0.05,,",
		"Mystery Rod,,3,loot,,0,0,0,,",
	}, "\n")

	rods, rowErrs, err := ParseRodCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rods, 1)
	assert.Equal(t, "event", rods[0].Source)
	assert.Nil(t, rods[0].PurchaseCost)
	assert.Nil(t, rods[0].Durability)
	assert.InDelta(t, 0.1, rods[0].BonusFishQualityModifier, 1e-9)

	require.Len(t, rowErrs, 1)
	assert.Contains(t, rowErrs[0].Message, "source")
}

func TestParseFishCSVRejectsWrongHeader(t *testing.T) {
	input := "name,rarity\nFish,1\n"
	_, _, err := ParseFishCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestParseFishCSVRejectsEmptyFile(t *testing.T) {
	_, _, err := ParseFishCSV(strings.NewReader(""))
	require.Error(t, err)
}
