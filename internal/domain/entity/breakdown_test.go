package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoester/printpricer-go/internal/domain/entity"
)

func sampleBreakdown() entity.Breakdown {
	return entity.Breakdown{
		{Label: entity.LineMaterial, Amount: 2.20},
		{Label: entity.LineEnergy, Amount: 0.12},
		{Label: entity.LineRecommended, Amount: 28.77},
	}
}

func TestBreakdown_Get(t *testing.T) {
	b := sampleBreakdown()

	v, ok := b.Get(entity.LineEnergy)
	require.True(t, ok)
	require.Equal(t, 0.12, v)

	_, ok = b.Get("Does Not Exist")
	require.False(t, ok)
}

func TestBreakdown_RecommendedPrice(t *testing.T) {
	require.Equal(t, 28.77, sampleBreakdown().RecommendedPrice())
	require.Zero(t, entity.Breakdown{}.RecommendedPrice())
}

func TestBreakdown_MarshalJSONKeepsOrder(t *testing.T) {
	b := entity.Breakdown{
		{Label: "Zwischensumme", Amount: 35.97},
		{Label: "Arbeit", Amount: 30},
		{Label: "Material", Amount: 2.2},
	}

	data, err := json.Marshal(b)
	require.NoError(t, err)

	// Insertion order, not the alphabetical order encoding/json would
	// impose on a map.
	require.JSONEq(t, `{"Zwischensumme":35.97,"Arbeit":30,"Material":2.2}`, string(data))
	require.Equal(t, `{"Zwischensumme":35.97,"Arbeit":30,"Material":2.2}`, string(data))
}

func TestBreakdown_MarshalJSONEscapesLabels(t *testing.T) {
	b := entity.Breakdown{
		{Label: entity.LineMachine, Amount: 3},
	}

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 3.0, decoded["Maschine/Verschleiß"])
}
