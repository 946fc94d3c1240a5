package derive

import "github.com/Simplici0/renocalc/internal/fields"

// Install labor rates in dollars per square foot.
const (
	TileInstallRate = 15.0
	LVPInstallRate  = 2.5
)

// Source is anything that can report a field value.
type Source interface {
	Get(id fields.ID) float64
}

// TileArea is the total tiled square footage.
func TileArea(src Source) float64 {
	return src.Get(fields.ShowerWallSF) + src.Get(fields.ShowerFloorSF) +
		src.Get(fields.BathFloorSF) + src.Get(fields.OtherTileSF)
}

// Aggregate recomputes the two install costs from their areas.
func Aggregate(src Source) map[fields.ID]float64 {
	return map[fields.ID]float64{
		fields.TileInstallCost: TileArea(src) * TileInstallRate,
		fields.LVPInstallCost:  src.Get(fields.LVPAreaSF) * LVPInstallRate,
	}
}
