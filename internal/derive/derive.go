package derive

import (
	"math"

	"github.com/Simplici0/renocalc/internal/fields"
)

const (
	standardCeiling = 8
	largeRoomSF     = 65
	largeTubSF      = 60
)

// Run returns the suggested dependent values for the workflow. Kitchen
// returns an empty map.
func Run(w Workflow, m Master) map[fields.ID]float64 {
	if w != Bathroom {
		return map[fields.ID]float64{}
	}
	return BathroomRules(m)
}

// BathroomRules derives every dependent bathroom field from m.
//
// Unit prices, counterUnitCost, otherTileSF, permitCost, toiletCount and
// lvpAreaSF are never part of the result, so edits to them outlive master
// parameter changes.
func BathroomRules(m Master) map[fields.ID]float64 {
	size := m.RoomSize
	heightMult := m.CeilingHeight / standardCeiling
	isGut := m.Scope == Gut
	isLarge := size > largeRoomSF

	out := make(map[fields.ID]float64, 24)

	if isGut {
		out[fields.DemoCost] = 500 + size*15*heightMult
		out[fields.JobWeeks] = math.Max(3, math.Ceil(size/15))
		out[fields.FramingCost] = math.Round(math.Min(2000, 250+size*10*heightMult))
		out[fields.InsulationCost] = math.Round(math.Min(500, 100+size*2))
	} else {
		out[fields.DemoCost] = 500 + size*5
		out[fields.JobWeeks] = math.Max(2, math.Ceil(size/25))
		out[fields.FramingCost] = 0
		out[fields.InsulationCost] = 0
	}

	out[fields.PlumbingCost] = size * 35
	out[fields.ElectricalCost] = size * 25
	out[fields.HVACCost] = 250
	out[fields.CarpentryCost] = size * 5
	out[fields.DrywallCost] = math.Round(size * 20 * heightMult)
	out[fields.PaintCost] = math.Round(size * 20 * heightMult)

	fixtures := pick(isLarge, 2, 1)
	out[fields.SinkCount] = fixtures
	out[fields.FaucetCount] = fixtures
	out[fields.LightCount] = fixtures
	out[fields.VanityCost] = size * 25
	out[fields.MirrorCost] = size * 10
	out[fields.CounterAreaSF] = pick(isLarge, 15, 8)

	out[fields.TubCost] = pick(size > largeTubSF, 3000, 750)
	out[fields.PlumbingFixtureCost] = size * 10
	out[fields.GlassCost] = math.Round(size * 35 * heightMult)

	out[fields.ShowerWallSF] = math.Round(pick(isLarge, 110, 80) * heightMult)
	out[fields.ShowerFloorSF] = pick(isLarge, 20, 12)
	out[fields.BathFloorSF] = math.Round(size * 0.75)

	return out
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
