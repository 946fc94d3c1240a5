// Package session runs the estimate pipeline for one user: every write is
// followed by derivation (for master changes), aggregation and a fresh
// estimate before it returns.
package session

import (
	"errors"
	"fmt"

	"github.com/Simplici0/renocalc/internal/derive"
	"github.com/Simplici0/renocalc/internal/fields"
	"github.com/Simplici0/renocalc/internal/pricing"
)

// ErrUnknownParameter is returned for master parameter names other than
// roomSize, ceilingHeight and scopeLevel.
var ErrUnknownParameter = errors.New("unknown master parameter")

// Master parameter names accepted by SetMasterParameter.
const (
	ParamRoomSize      = "roomSize"
	ParamCeilingHeight = "ceilingHeight"
	ParamScopeLevel    = "scopeLevel"
)

// Snapshot is everything the presentation layer reads after a write.
type Snapshot struct {
	Workflow        derive.Workflow       `json:"workflow"`
	Master          derive.Master         `json:"master"`
	Fields          map[fields.ID]float64 `json:"fields"`
	TileInstallCost float64               `json:"tileInstallCost"`
	LVPInstallCost  float64               `json:"lvpInstallCost"`
	CleanupCost     float64               `json:"cleanupCost"`
	Estimate        pricing.Result        `json:"estimate"`
}

// Session is not safe for concurrent use.
type Session struct {
	store    *fields.Store
	master   derive.Master
	workflow derive.Workflow
}

// New starts from the default field snapshot and applies the derivation for
// the given workflow and master parameters once.
func New(w derive.Workflow, m derive.Master) *Session {
	s := &Session{
		store:    fields.NewStore(),
		workflow: w,
		master: derive.Master{
			RoomSize:      derive.ClampRoomSize(m.RoomSize),
			CeilingHeight: derive.ClampCeilingHeight(m.CeilingHeight),
			Scope:         m.Scope,
		},
	}
	s.derive()
	return s
}

// Default is New with the bathroom workflow and DefaultMaster.
func Default() *Session {
	return New(derive.Bathroom, derive.DefaultMaster())
}

// Get returns the current value of a field.
func (s *Session) Get(id fields.ID) float64 {
	return s.store.Get(id)
}

// Master returns the current master parameters.
func (s *Session) Master() derive.Master {
	return s.master
}

// Workflow returns the active workflow.
func (s *Session) Workflow() derive.Workflow {
	return s.workflow
}

// SetField edits one line item. Master-derived values are left alone until
// the next master parameter change.
func (s *Session) SetField(id fields.ID, value float64) (Snapshot, error) {
	if _, err := s.store.Set(id, value); err != nil {
		return s.Snapshot(), err
	}
	s.aggregate()
	return s.Snapshot(), nil
}

// SetRoomSize updates the room size and re-derives.
func (s *Session) SetRoomSize(v float64) Snapshot {
	s.master.RoomSize = derive.ClampRoomSize(v)
	s.derive()
	return s.Snapshot()
}

// SetCeilingHeight updates the ceiling height and re-derives.
func (s *Session) SetCeilingHeight(v float64) Snapshot {
	s.master.CeilingHeight = derive.ClampCeilingHeight(v)
	s.derive()
	return s.Snapshot()
}

// SetScope updates the scope level and re-derives.
func (s *Session) SetScope(scope derive.Scope) Snapshot {
	s.master.Scope = scope
	s.derive()
	return s.Snapshot()
}

// SetMasterParameter parses raw for the named parameter. Numeric parameters
// coerce bad text to 0 before clamping; the scope must be cosmetic or gut.
func (s *Session) SetMasterParameter(name, raw string) (Snapshot, error) {
	switch name {
	case ParamRoomSize:
		return s.SetRoomSize(fields.Parse(raw)), nil
	case ParamCeilingHeight:
		return s.SetCeilingHeight(fields.Parse(raw)), nil
	case ParamScopeLevel:
		scope, err := derive.ParseScope(raw)
		if err != nil {
			return s.Snapshot(), err
		}
		return s.SetScope(scope), nil
	}
	return s.Snapshot(), fmt.Errorf("set %q: %w", name, ErrUnknownParameter)
}

// SetActiveWorkflow switches workflow and re-derives. Switching to kitchen
// keeps every field as it is.
func (s *Session) SetActiveWorkflow(raw string) (Snapshot, error) {
	w, err := derive.ParseWorkflow(raw)
	if err != nil {
		return s.Snapshot(), err
	}
	s.workflow = w
	s.derive()
	return s.Snapshot(), nil
}

// Snapshot recomputes the estimate from the current field values.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Workflow:        s.workflow,
		Master:          s.master,
		Fields:          s.store.Values(),
		TileInstallCost: s.store.Get(fields.TileInstallCost),
		LVPInstallCost:  s.store.Get(fields.LVPInstallCost),
		CleanupCost:     pricing.CleanupCost(s.store.Get(fields.JobWeeks)),
		Estimate:        pricing.Calculate(s.store),
	}
}

func (s *Session) derive() {
	s.store.Apply(derive.Run(s.workflow, s.master))
	s.aggregate()
}

func (s *Session) aggregate() {
	s.store.Apply(derive.Aggregate(s.store))
}
