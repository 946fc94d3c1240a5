package derive

import (
	"errors"
	"math"
	"testing"

	"github.com/Simplici0/renocalc/internal/fields"
)

func expectFields(t *testing.T, got map[fields.ID]float64, want map[fields.ID]float64) {
	t.Helper()
	for id, w := range want {
		g, ok := got[id]
		if !ok {
			t.Errorf("%s missing from derivation", id)
			continue
		}
		if math.Abs(g-w) > 1e-9 {
			t.Errorf("%s = %v, want %v", id, g, w)
		}
	}
}

func TestBathroom_StandardGutSixtySquareFeet(t *testing.T) {
	got := BathroomRules(Master{RoomSize: 60, CeilingHeight: 8, Scope: Gut})

	expectFields(t, got, map[fields.ID]float64{
		fields.DemoCost:            1400,
		fields.JobWeeks:            4,
		fields.PlumbingCost:        2100,
		fields.ElectricalCost:      1500,
		fields.HVACCost:            250,
		fields.CarpentryCost:       300,
		fields.FramingCost:         850,
		fields.InsulationCost:      220,
		fields.DrywallCost:         1200,
		fields.PaintCost:           1200,
		fields.SinkCount:           1,
		fields.FaucetCount:         1,
		fields.LightCount:          1,
		fields.VanityCost:          1500,
		fields.MirrorCost:          600,
		fields.CounterAreaSF:       8,
		fields.TubCost:             750,
		fields.PlumbingFixtureCost: 600,
		fields.GlassCost:           2100,
		fields.ShowerWallSF:        80,
		fields.ShowerFloorSF:       12,
		fields.BathFloorSF:         45,
	})
}

func TestBathroom_LargeRoom(t *testing.T) {
	got := BathroomRules(Master{RoomSize: 100, CeilingHeight: 8, Scope: Gut})

	expectFields(t, got, map[fields.ID]float64{
		fields.SinkCount:     2,
		fields.FaucetCount:   2,
		fields.LightCount:    2,
		fields.CounterAreaSF: 15,
		fields.TubCost:       3000,
		fields.ShowerWallSF:  110,
		fields.ShowerFloorSF: 20,
		fields.BathFloorSF:   75,
	})
}

func TestBathroom_CosmeticTallCeiling(t *testing.T) {
	got := BathroomRules(Master{RoomSize: 100, CeilingHeight: 10, Scope: Cosmetic})

	expectFields(t, got, map[fields.ID]float64{
		fields.DemoCost:       1000,
		fields.JobWeeks:       4,
		fields.FramingCost:    0,
		fields.InsulationCost: 0,
		fields.DrywallCost:    2500,
		fields.PaintCost:      2500,
		fields.GlassCost:      4375,
		fields.ShowerWallSF:   138,
	})
}

func TestBathroom_GutCapsAtLargestRoom(t *testing.T) {
	got := BathroomRules(Master{RoomSize: 150, CeilingHeight: 12, Scope: Gut})

	expectFields(t, got, map[fields.ID]float64{
		fields.DemoCost:       3875,
		fields.JobWeeks:       10,
		fields.FramingCost:    2000,
		fields.InsulationCost: 400,
	})
}

func TestBathroom_JobWeeksFloors(t *testing.T) {
	tests := []struct {
		name  string
		size  float64
		scope Scope
		want  float64
	}{
		{"gut small room floors at 3", 30, Gut, 3},
		{"gut 65 rounds up", 65, Gut, 5},
		{"cosmetic small room floors at 2", 30, Cosmetic, 2},
		{"cosmetic 55 rounds up", 55, Cosmetic, 3},
		{"cosmetic largest room", 150, Cosmetic, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BathroomRules(Master{RoomSize: tt.size, CeilingHeight: 8, Scope: tt.scope})[fields.JobWeeks]
			if got != tt.want {
				t.Errorf("jobWeeks(%v, %s) = %v, want %v", tt.size, tt.scope, got, tt.want)
			}
		})
	}
}

func TestBathroom_LeavesUserOwnedFieldsOut(t *testing.T) {
	got := BathroomRules(DefaultMaster())

	for _, id := range []fields.ID{
		fields.PermitCost,
		fields.CounterUnitCost,
		fields.ToiletCount,
		fields.ShowerWallCost,
		fields.ShowerFloorCost,
		fields.BathFloorCost,
		fields.OtherTileSF,
		fields.OtherTileCost,
		fields.LVPAreaSF,
		fields.LVPUnitCost,
		fields.TileInstallCost,
		fields.LVPInstallCost,
	} {
		if _, ok := got[id]; ok {
			t.Errorf("derivation must not produce %s", id)
		}
	}
}

func TestBathroom_IsDeterministic(t *testing.T) {
	for size := float64(MinRoomSize); size <= MaxRoomSize; size += RoomSizeStep {
		for height := float64(MinCeilingHeight); height <= MaxCeilingHeight; height++ {
			for _, scope := range []Scope{Cosmetic, Gut} {
				m := Master{RoomSize: size, CeilingHeight: height, Scope: scope}
				first, second := BathroomRules(m), BathroomRules(m)
				if len(first) != len(second) {
					t.Fatalf("%+v: result sizes differ", m)
				}
				for id, v := range first {
					if second[id] != v {
						t.Fatalf("%+v: %s = %v then %v", m, id, v, second[id])
					}
					if v < 0 {
						t.Fatalf("%+v: %s is negative (%v)", m, id, v)
					}
				}
			}
		}
	}
}

func TestRun_KitchenIsNoOp(t *testing.T) {
	if got := Run(Kitchen, DefaultMaster()); len(got) != 0 {
		t.Fatalf("kitchen derivation produced %d fields", len(got))
	}
	if got := Run(Bathroom, DefaultMaster()); len(got) == 0 {
		t.Fatalf("bathroom derivation produced nothing")
	}
}

func TestRun_BathroomWorkflowAppliesBathroomRules(t *testing.T) {
	m := Master{RoomSize: 100, CeilingHeight: 9, Scope: Cosmetic}

	got := Run(Bathroom, m)
	want := BathroomRules(m)
	if len(got) != len(want) {
		t.Fatalf("Run produced %d fields, want %d", len(got), len(want))
	}
	expectFields(t, got, want)
}

func TestParseScopeAndWorkflow(t *testing.T) {
	if s, err := ParseScope(" GUT "); err != nil || s != Gut {
		t.Fatalf("ParseScope(GUT) = %v, %v", s, err)
	}
	if s, err := ParseScope("cosmetic"); err != nil || s != Cosmetic {
		t.Fatalf("ParseScope(cosmetic) = %v, %v", s, err)
	}
	if _, err := ParseScope("partial"); !errors.Is(err, ErrUnknownScope) {
		t.Fatalf("expected ErrUnknownScope, got %v", err)
	}
	if w, err := ParseWorkflow("Kitchen"); err != nil || w != Kitchen {
		t.Fatalf("ParseWorkflow(Kitchen) = %v, %v", w, err)
	}
	if _, err := ParseWorkflow("garage"); !errors.Is(err, ErrUnknownWorkflow) {
		t.Fatalf("expected ErrUnknownWorkflow, got %v", err)
	}
}

func TestClampMasterParameters(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"room below range", ClampRoomSize, 10, 30},
		{"room above range", ClampRoomSize, 400, 150},
		{"room snaps to 5", ClampRoomSize, 62, 60},
		{"room snaps up", ClampRoomSize, 63, 65},
		{"ceiling snaps", ClampCeilingHeight, 9.6, 10},
		{"ceiling above range", ClampCeilingHeight, 20, 12},
		{"ceiling NaN", ClampCeilingHeight, math.NaN(), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

type mapSource map[fields.ID]float64

func (m mapSource) Get(id fields.ID) float64 { return m[id] }

func TestAggregate_InstallCosts(t *testing.T) {
	tests := []struct {
		name      string
		src       mapSource
		wantTile  float64
		wantFloor float64
	}{
		{"empty", mapSource{}, 0, 0},
		{
			"all tile areas",
			mapSource{fields.ShowerWallSF: 80, fields.ShowerFloorSF: 12, fields.BathFloorSF: 45, fields.OtherTileSF: 10},
			147 * 15, 0,
		},
		{"lvp only", mapSource{fields.LVPAreaSF: 41}, 0, 102.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.src)
			if got[fields.TileInstallCost] != tt.wantTile {
				t.Errorf("tileInstallCost = %v, want %v", got[fields.TileInstallCost], tt.wantTile)
			}
			if got[fields.LVPInstallCost] != tt.wantFloor {
				t.Errorf("lvpInstallCost = %v, want %v", got[fields.LVPInstallCost], tt.wantFloor)
			}
		})
	}
}
