// Package derive computes suggested line-item values from the master
// parameters and keeps the install costs in step with their areas.
package derive

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownScope is returned for scope text other than cosmetic or gut.
	ErrUnknownScope = errors.New("unknown scope level")

	// ErrUnknownWorkflow is returned for workflow ids other than bathroom or kitchen.
	ErrUnknownWorkflow = errors.New("unknown workflow")
)

// Scope is the renovation intensity.
type Scope int

const (
	// Cosmetic keeps walls and framing; surfaces and fixtures only.
	Cosmetic Scope = iota
	// Gut tears the room down to studs.
	Gut
)

// String returns the lower-case text form.
func (s Scope) String() string {
	if s == Gut {
		return "gut"
	}
	return "cosmetic"
}

// ParseScope accepts "cosmetic" or "gut" in any case.
func ParseScope(raw string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cosmetic":
		return Cosmetic, nil
	case "gut":
		return Gut, nil
	}
	return Cosmetic, fmt.Errorf("parse scope %q: %w", raw, ErrUnknownScope)
}

// MarshalText encodes the scope as "cosmetic" or "gut".
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the same text as ParseScope.
func (s *Scope) UnmarshalText(text []byte) error {
	v, err := ParseScope(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Workflow selects which derivation rules apply.
type Workflow string

const (
	// Bathroom applies the bathroom derivation rules.
	Bathroom Workflow = "bathroom"
	// Kitchen is recognised but has no rules yet; deriving leaves fields alone.
	Kitchen Workflow = "kitchen"
)

// ParseWorkflow validates a workflow identifier.
func ParseWorkflow(raw string) (Workflow, error) {
	w := Workflow(strings.ToLower(strings.TrimSpace(raw)))
	switch w {
	case Bathroom, Kitchen:
		return w, nil
	}
	return "", fmt.Errorf("parse workflow %q: %w", raw, ErrUnknownWorkflow)
}

// Master parameter ranges in square feet and feet.
const (
	MinRoomSize  = 30
	MaxRoomSize  = 150
	RoomSizeStep = 5

	MinCeilingHeight  = 8
	MaxCeilingHeight  = 12
	CeilingHeightStep = 1
)

// Master holds the three inputs that drive bulk recomputation.
type Master struct {
	RoomSize      float64 `json:"roomSize"`
	CeilingHeight float64 `json:"ceilingHeight"`
	Scope         Scope   `json:"scopeLevel"`
}

// DefaultMaster is the starting 60 SF, 8 ft, full gut bathroom.
func DefaultMaster() Master {
	return Master{RoomSize: 60, CeilingHeight: 8, Scope: Gut}
}

// ClampRoomSize snaps v to 5 SF steps within [30,150].
func ClampRoomSize(v float64) float64 {
	return clampStep(v, MinRoomSize, MaxRoomSize, RoomSizeStep)
}

// ClampCeilingHeight snaps v to whole feet within [8,12].
func ClampCeilingHeight(v float64) float64 {
	return clampStep(v, MinCeilingHeight, MaxCeilingHeight, CeilingHeightStep)
}

func clampStep(v, min, max, step float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	v = min + math.Round((v-min)/step)*step
	return math.Min(max, math.Max(min, v))
}
