package entity

import (
	"bytes"
	"encoding/json"
)

// Breakdown line labels, in display order. The labels are the German
// ones from the quote sheets this tool produces; exports and the
// terminal table rely on them verbatim.
const (
	LineMaterial       = "Material"
	LineEnergy         = "Energie"
	LineMachine        = "Maschine/Verschleiß"
	LineLabor          = "Arbeit"
	LineConsumables    = "Verbrauchsmaterial-Puffer"
	LineRisk           = "Risiko-Puffer"
	LineSubtotal       = "Zwischensumme"
	LineMarkup         = "Marge/Aufschlag"
	LinePreDiscount    = "Summe vor Rabatt"
	LineFriendDiscount = "Freundschaftsrabatt"
	LinePackaging      = "Verpackung/Versand"
	LineRecommended    = "Empfohlener Preis"
)

// CostLine is one labeled amount of the cost breakdown.
type CostLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Breakdown is the ordered list of cost lines ending with the
// recommended price. Order is part of the contract: tables, CSV rows
// and JSON keys all follow it, so it must never be rebuilt from an
// unordered map.
type Breakdown []CostLine

// Get returns the amount for a label, false when the label is absent.
func (b Breakdown) Get(label string) (float64, bool) {
	for _, line := range b {
		if line.Label == label {
			return line.Amount, true
		}
	}
	return 0, false
}

// RecommendedPrice returns the final floored price line.
func (b Breakdown) RecommendedPrice() float64 {
	v, _ := b.Get(LineRecommended)
	return v
}

// MarshalJSON renders the breakdown as a JSON object whose keys keep
// the display order. encoding/json map marshaling would sort them.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, line := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(line.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(line.Amount)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
