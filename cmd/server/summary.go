package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Simplici0/renocalc/internal/derive"
	"github.com/Simplici0/renocalc/internal/session"
)

func dollars(v float64) string {
	if v == math.Trunc(v) {
		return "$" + humanize.Comma(int64(v))
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}

// renderSummary formats a snapshot as the plain-text estimate sheet.
func renderSummary(snap session.Snapshot) string {
	var b strings.Builder
	est := snap.Estimate

	fmt.Fprintf(&b, "Estimated Range: %s - %s\n", dollars(est.Range.Low), dollars(est.Range.High))
	fmt.Fprintf(&b, "Workflow: %s\n", snap.Workflow)
	if snap.Workflow != derive.Bathroom {
		b.WriteString("Note: no derivation rules for this workflow; fields keep their last values.\n")
	}
	fmt.Fprintf(&b, "Default costs based on %v SF & %v FT ceiling (%s).\n\n",
		snap.Master.RoomSize, snap.Master.CeilingHeight, snap.Master.Scope)

	b.WriteString("Breakdown (before markup):\n")
	rows := []struct {
		label string
		value float64
	}{
		{"Prep & General", est.Breakdown.Prep},
		{"  incl. PM", est.Breakdown.ProjectManagement},
		{"  incl. cleanup", est.Breakdown.Cleanup},
		{"Trades & Rough-In", est.Breakdown.Trades},
		{"Vanity & Sink Area", est.Breakdown.Vanity},
		{"Wet Area & Toilet", est.Breakdown.WetArea},
		{"Tiling & Stone", est.Breakdown.Tiling},
		{"  incl. tile install", est.Breakdown.TileInstall},
		{"LVP Flooring", est.Breakdown.Flooring},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "  %-22s %s\n", row.label, dollars(row.value))
	}

	fmt.Fprintf(&b, "\nRaw Costs: %s\n", dollars(est.Range.RawFromLow()))
	fmt.Fprintf(&b, "Markup (%v): +%s\n", est.Totals.Markup, dollars(est.Range.MarkupFromLow()))
	return b.String()
}
