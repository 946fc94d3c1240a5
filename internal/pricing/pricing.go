package pricing

import (
	"math"

	"github.com/Simplici0/renocalc/internal/fields"
)

const (
	// Markup turns raw costs into the customer-facing price.
	Markup = 1.54

	// WeeklyRate is the project management charge per job week.
	WeeklyRate = 1200.0

	// Per-fixture prices.
	SinkUnitCost   = 175.0
	FaucetUnitCost = 350.0
	LightUnitCost  = 200.0
	ToiletUnitCost = 450.0

	// MinCounterCost is the floor for the countertop line.
	MinCounterCost = 750.0

	lowFactor         = 0.97
	highFactor        = 1.03
	roundingIncrement = 100.0
)

// Source is anything that can report a field value.
type Source interface {
	Get(id fields.ID) float64
}

// Breakdown holds the raw (pre-markup) cost of each section.
type Breakdown struct {
	Prep              float64 `json:"prep"`
	ProjectManagement float64 `json:"projectManagement"`
	Cleanup           float64 `json:"cleanup"`
	Trades            float64 `json:"trades"`
	CounterCost       float64 `json:"counterCost"`
	Vanity            float64 `json:"vanity"`
	WetArea           float64 `json:"wetArea"`
	TileMaterial      float64 `json:"tileMaterial"`
	TileInstall       float64 `json:"tileInstall"`
	Tiling            float64 `json:"tiling"`
	Flooring          float64 `json:"flooring"`
}

// Totals contains roll-up values from the estimate.
type Totals struct {
	RawSubtotal float64 `json:"rawSubtotal"`
	Markup      float64 `json:"markup"`
	FinalCost   float64 `json:"finalCost"`
}

// Range is the displayed price band, rounded to the nearest hundred.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// RawFromLow backs the markup out of Low.
func (r Range) RawFromLow() float64 {
	return r.Low / Markup
}

// MarkupFromLow is the share of Low that is markup.
func (r Range) MarkupFromLow() float64 {
	return r.Low - r.RawFromLow()
}

// Result groups the full estimate.
type Result struct {
	Breakdown Breakdown `json:"breakdown"`
	Totals    Totals    `json:"totals"`
	Range     Range     `json:"range"`
}

// CleanupCost is a step function of job length in weeks.
func CleanupCost(weeks float64) float64 {
	switch {
	case weeks >= 5:
		return 900
	case weeks >= 3:
		return 600
	default:
		return 300
	}
}

// Calculate computes the estimate from the current field values.
func Calculate(src Source) Result {
	get := src.Get

	weeks := get(fields.JobWeeks)
	cleanup := CleanupCost(weeks)
	management := weeks * WeeklyRate
	prep := get(fields.PermitCost) + management + get(fields.DemoCost) + cleanup

	trades := get(fields.FramingCost) + get(fields.InsulationCost) + get(fields.DrywallCost) +
		get(fields.CarpentryCost) + get(fields.PaintCost) +
		get(fields.PlumbingCost) + get(fields.ElectricalCost) + get(fields.HVACCost)

	counter := math.Max(MinCounterCost, get(fields.CounterAreaSF)*get(fields.CounterUnitCost))
	vanity := get(fields.VanityCost) + get(fields.MirrorCost) + counter +
		get(fields.SinkCount)*SinkUnitCost +
		get(fields.FaucetCount)*FaucetUnitCost +
		get(fields.LightCount)*LightUnitCost

	wet := get(fields.TubCost) + get(fields.PlumbingFixtureCost) + get(fields.GlassCost) +
		get(fields.ToiletCount)*ToiletUnitCost

	tileMaterial := get(fields.ShowerWallSF)*get(fields.ShowerWallCost) +
		get(fields.ShowerFloorSF)*get(fields.ShowerFloorCost) +
		get(fields.BathFloorSF)*get(fields.BathFloorCost) +
		get(fields.OtherTileSF)*get(fields.OtherTileCost)
	tileInstall := get(fields.TileInstallCost)

	flooring := get(fields.LVPAreaSF)*get(fields.LVPUnitCost) + get(fields.LVPInstallCost)

	subtotal := prep + trades + vanity + wet + tileMaterial + tileInstall + flooring
	final := subtotal * Markup

	return Result{
		Breakdown: Breakdown{
			Prep:              prep,
			ProjectManagement: management,
			Cleanup:           cleanup,
			Trades:            trades,
			CounterCost:       counter,
			Vanity:            vanity,
			WetArea:           wet,
			TileMaterial:      tileMaterial,
			TileInstall:       tileInstall,
			Tiling:            tileMaterial + tileInstall,
			Flooring:          flooring,
		},
		Totals: Totals{
			RawSubtotal: subtotal,
			Markup:      Markup,
			FinalCost:   final,
		},
		Range: Range{
			Low:  roundToIncrement(final * lowFactor),
			High: roundToIncrement(final * highFactor),
		},
	}
}

func roundToIncrement(v float64) float64 {
	return math.Round(v/roundingIncrement) * roundingIncrement
}
