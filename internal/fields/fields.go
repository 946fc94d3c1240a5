package fields

import "math"

// ID identifies a single line-item field.
type ID string

const (
	PermitCost ID = "permitCost"
	DemoCost   ID = "demoCost"
	JobWeeks   ID = "jobWeeks"

	PlumbingCost   ID = "plumbingCost"
	ElectricalCost ID = "electricalCost"
	HVACCost       ID = "hvacCost"
	CarpentryCost  ID = "carpentryCost"
	PaintCost      ID = "paintCost"
	FramingCost    ID = "framingCost"
	InsulationCost ID = "insulationCost"
	DrywallCost    ID = "drywallCost"

	VanityCost      ID = "vanityCost"
	MirrorCost      ID = "mirrorCost"
	CounterAreaSF   ID = "counterAreaSF"
	CounterUnitCost ID = "counterUnitCost"
	SinkCount       ID = "sinkCount"
	FaucetCount     ID = "faucetCount"
	LightCount      ID = "lightCount"

	TubCost             ID = "tubCost"
	PlumbingFixtureCost ID = "plumbingFixtureCost"
	GlassCost           ID = "glassCost"
	ToiletCount         ID = "toiletCount"

	ShowerWallSF    ID = "showerWallSF"
	ShowerWallCost  ID = "showerWallCost"
	ShowerFloorSF   ID = "showerFloorSF"
	ShowerFloorCost ID = "showerFloorCost"
	BathFloorSF     ID = "bathFloorSF"
	BathFloorCost   ID = "bathFloorCost"
	OtherTileSF     ID = "otherTileSF"
	OtherTileCost   ID = "otherTileCost"
	TileInstallCost ID = "tileInstallCost"

	LVPAreaSF      ID = "lvpAreaSF"
	LVPUnitCost    ID = "lvpUnitCost"
	LVPInstallCost ID = "lvpInstallCost"
)

// Section groups fields the way the estimate screen lays them out.
type Section string

const (
	SectionPrep     Section = "prep"
	SectionTrades   Section = "trades"
	SectionVanity   Section = "vanity"
	SectionWetArea  Section = "wet"
	SectionTiling   Section = "tiling"
	SectionFlooring Section = "lvp"
)

// Unit describes what a field's number means.
type Unit string

const (
	UnitCurrency      Unit = "usd"
	UnitSquareFeet    Unit = "sf"
	UnitPerSquareFoot Unit = "usd/sf"
	UnitCount         Unit = "ea"
	UnitWeeks         Unit = "weeks"
)

// Option is one entry of a tiered price list.
type Option struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Spec is the edit-boundary contract for a field.
//
// Exactly one snap rule applies: Options when non-empty, otherwise Step when
// positive, otherwise values snap to whole numbers.
type Spec struct {
	ID       ID       `json:"id"`
	Section  Section  `json:"section"`
	Label    string   `json:"label"`
	Unit     Unit     `json:"unit"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Step     float64  `json:"step,omitempty"`
	Options  []Option `json:"options,omitempty"`
	ReadOnly bool     `json:"readOnly,omitempty"`
	Default  float64  `json:"default"`
}

const (
	maxArea  = 1000
	maxCount = 20
)

var (
	paintSteps = []Option{
		{"$0", 0}, {"$500", 500}, {"$750", 750}, {"$1,000", 1000}, {"$1,250", 1250},
		{"$1,500", 1500}, {"$2,000", 2000}, {"$2,500", 2500}, {"$3,000", 3000},
	}
	counterLevels = []Option{{"Lvl 1", 60}, {"Lvl 2", 80}, {"Lvl 3", 100}}
	wallTiers     = []Option{{"Bud", 5}, {"Std", 7.5}, {"Lux", 10}}
	floorTiers    = []Option{{"Bud", 6}, {"Std", 10}, {"Lux", 15}}
	lvpTiers      = []Option{{"Basic", 3.5}, {"Mid", 5}, {"High", 7}}
)

func money(id ID, s Section, label string, min, max, step, def float64) Spec {
	return Spec{ID: id, Section: s, Label: label, Unit: UnitCurrency, Min: min, Max: max, Step: step, Default: def}
}

func whole(id ID, s Section, label string, unit Unit, min, max, def float64) Spec {
	return Spec{ID: id, Section: s, Label: label, Unit: unit, Min: min, Max: max, Default: def}
}

func tiered(id ID, s Section, label string, opts []Option, def float64) Spec {
	return Spec{
		ID: id, Section: s, Label: label, Unit: UnitPerSquareFoot,
		Min: opts[0].Value, Max: opts[len(opts)-1].Value, Options: opts, Default: def,
	}
}

func derived(id ID, s Section, label string) Spec {
	return Spec{ID: id, Section: s, Label: label, Unit: UnitCurrency, Max: math.MaxFloat64, ReadOnly: true}
}

// specs is ordered for display.
var specs = []Spec{
	money(PermitCost, SectionPrep, "Permit Cost", 0, 1000, 50, 150),
	money(DemoCost, SectionPrep, "Demo & Dumpster", 500, 3500, 100, 1500),
	whole(JobWeeks, SectionPrep, "Job Duration", UnitWeeks, 1, 12, 6),

	money(PlumbingCost, SectionTrades, "Plumbing", 0, 8000, 100, 2100),
	money(ElectricalCost, SectionTrades, "Electrical", 0, 6000, 100, 1500),
	money(HVACCost, SectionTrades, "HVAC", 0, 2000, 50, 250),
	money(CarpentryCost, SectionTrades, "Carpentry", 0, 5000, 100, 300),
	{ID: PaintCost, Section: SectionTrades, Label: "Paint", Unit: UnitCurrency, Min: 0, Max: 3000, Options: paintSteps, Default: 750},
	money(FramingCost, SectionTrades, "Framing", 0, 2000, 100, 500),
	money(InsulationCost, SectionTrades, "Insulation", 0, 500, 50, 200),
	money(DrywallCost, SectionTrades, "Drywall", 0, 3000, 100, 1500),

	money(VanityCost, SectionVanity, "Vanity Unit", 0, 6500, 100, 2500),
	money(MirrorCost, SectionVanity, "Mirrors", 0, 2000, 50, 750),
	whole(SinkCount, SectionVanity, "Sinks", UnitCount, 0, maxCount, 1),
	whole(FaucetCount, SectionVanity, "Faucets", UnitCount, 0, maxCount, 1),
	whole(LightCount, SectionVanity, "Lights", UnitCount, 0, maxCount, 1),
	whole(CounterAreaSF, SectionVanity, "Countertop", UnitSquareFeet, 0, 200, 10),
	{
		ID: CounterUnitCost, Section: SectionVanity, Label: "Countertop Level", Unit: UnitPerSquareFoot,
		Min: 60, Max: 100, Options: counterLevels, Default: 80,
	},

	money(TubCost, SectionWetArea, "Tub+Filler", 0, 5000, 100, 2500),
	money(PlumbingFixtureCost, SectionWetArea, "Plumbing Fix.", 0, 2500, 50, 600),
	money(GlassCost, SectionWetArea, "Shower Glass", 0, 5000, 100, 1500),
	whole(ToiletCount, SectionWetArea, "Toilets", UnitCount, 0, maxCount, 1),

	whole(ShowerWallSF, SectionTiling, "Shower Walls", UnitSquareFeet, 0, maxArea, 90),
	tiered(ShowerWallCost, SectionTiling, "Shower Walls Tile", wallTiers, 7.5),
	whole(ShowerFloorSF, SectionTiling, "Shower Floor", UnitSquareFeet, 0, maxArea, 15),
	tiered(ShowerFloorCost, SectionTiling, "Shower Floor Tile", floorTiers, 10),
	whole(BathFloorSF, SectionTiling, "Bath Floor", UnitSquareFeet, 0, maxArea, 45),
	tiered(BathFloorCost, SectionTiling, "Bath Floor Tile", wallTiers, 7.5),
	whole(OtherTileSF, SectionTiling, "Other Tile", UnitSquareFeet, 0, maxArea, 0),
	tiered(OtherTileCost, SectionTiling, "Other Tile Level", floorTiers, 10),
	derived(TileInstallCost, SectionTiling, "Tile Install ($15/sf)"),

	whole(LVPAreaSF, SectionFlooring, "LVP Material", UnitSquareFeet, 0, maxArea, 0),
	tiered(LVPUnitCost, SectionFlooring, "LVP Level", lvpTiers, 5),
	derived(LVPInstallCost, SectionFlooring, "LVP Install ($2.50/sf)"),
}

var byID = func() map[ID]Spec {
	m := make(map[ID]Spec, len(specs))
	for _, s := range specs {
		m[s.ID] = s
	}
	return m
}()

// Lookup returns the spec registered for id.
func Lookup(id ID) (Spec, bool) {
	s, ok := byID[id]
	return s, ok
}

// All returns every field spec in display order.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// SectionOrder lists sections top to bottom.
var SectionOrder = []Section{SectionPrep, SectionTrades, SectionVanity, SectionWetArea, SectionTiling, SectionFlooring}

// Sections groups All by section, keeping display order.
func Sections() map[Section][]Spec {
	out := make(map[Section][]Spec, len(SectionOrder))
	for _, s := range specs {
		out[s.Section] = append(out[s.Section], s)
	}
	return out
}

// Defaults returns the startup value of every field.
func Defaults() map[ID]float64 {
	out := make(map[ID]float64, len(specs))
	for _, s := range specs {
		out[s.ID] = s.Default
	}
	return out
}

// Clamp limits v to [Min,Max] and snaps it to the spec's granularity.
// NaN and infinities are treated as 0 before clamping.
func (s Spec) Clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	switch {
	case len(s.Options) > 0:
		v = s.nearestOption(v)
	case s.Step > 0:
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	default:
		v = math.Round(v)
	}
	return math.Min(s.Max, math.Max(s.Min, v))
}

// nearestOption picks the closest option; ties go to the cheaper one.
func (s Spec) nearestOption(v float64) float64 {
	best := s.Options[0].Value
	for _, o := range s.Options[1:] {
		if math.Abs(o.Value-v) < math.Abs(best-v) {
			best = o.Value
		}
	}
	return best
}
