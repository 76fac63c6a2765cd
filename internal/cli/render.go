package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/notation"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

const barWidth = 40

// renderDepths renders a depth histogram as a table with proportional bars.
func renderDepths(s *analysis.DepthSummary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Depth distribution (%s-turn metric)", s.Metric)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%-6s  %10s  %7s\n", "Depth", "States", "Share")
	b.WriteString("------  ----------  -------\n")

	for depth, n := range s.Counts {
		width := 0
		if s.ModeCount > 0 {
			width = n * barWidth / s.ModeCount
		}
		if width == 0 && n > 0 {
			width = 1
		}
		fmt.Fprintf(&b, "%-6d  %10d  %6.2f%%  %s\n",
			depth, n, s.Share(depth)*100, barStyle.Render(strings.Repeat("#", width)))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("God's number:"), s.GodsNumber)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Total states:"), s.TotalStates)
	fmt.Fprintf(&b, "%s %.4f\n", labelStyle.Render("Mean depth:  "), s.MeanDepth)
	fmt.Fprintf(&b, "%s %d (%d states)\n", labelStyle.Render("Most common: "), s.ModeDepth, s.ModeCount)

	return b.String()
}

// answerView selects the optional sections of a rendered answer.
type answerView struct {
	describe bool // per-corner listing of the state
	personal bool // plain-language moves
	profile  bool // face and turn usage
}

// renderQuery renders the outcome of a query.
func renderQuery(q *query, view answerView) string {
	var b strings.Builder

	if q.state != nil {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("State:   "), q.state.String())
	}

	if q.err != nil {
		if errors.Is(q.err, pocketcube.ErrNoRoute) {
			b.WriteString(errorStyle.Render(fmt.Sprintf("No route: state is not reachable in the %s-turn metric", q.metric)))
		} else {
			b.WriteString(errorStyle.Render(q.err.Error()))
		}
		b.WriteString("\n")
		if view.describe && q.state != nil {
			b.WriteString("\n")
			b.WriteString(q.state.Describe())
		}
		return b.String()
	}

	a := q.answer
	if a.Input != nil {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Input:   "), pocketcube.Format(a.Input))
	}
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Depth:   "), a.Depth())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Route:   "), formatRoute(a.Route))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Solution:"), formatRoute(a.Solution))

	if view.personal && len(a.Solution) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Solve it by turning:"))
		b.WriteString("\n")
		for i, step := range notation.FormatPersonal(a.Solution.Moves()) {
			fmt.Fprintf(&b, "  %2d. %s\n", i+1, step)
		}
	}

	if view.profile && len(a.Route) > 0 {
		b.WriteString("\n")
		b.WriteString(renderProfile(analysis.AnalyzeMovementProfile(a.Route.Moves())))
	}

	if view.describe {
		b.WriteString("\n")
		b.WriteString(a.State.Describe())
	}

	return b.String()
}

func formatRoute(r pocketcube.Route) string {
	if len(r) == 0 {
		return statusStyle.Render("(solved)")
	}
	return moveStyle.Render(pocketcube.Format(r))
}

// renderProfile renders face and turn usage counts.
func renderProfile(p *analysis.MovementProfile) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Movement profile:"))
	b.WriteString("\n")

	var faces []string
	for _, f := range types.Faces {
		faces = append(faces, fmt.Sprintf("%s=%d", f, p.FaceCounts[f]))
	}
	fmt.Fprintf(&b, "  Faces:  %s (most used: %s)\n", strings.Join(faces, " "), p.MostUsedFace)
	fmt.Fprintf(&b, "  Turns:  quarter=%d inverse=%d double=%d\n",
		p.TurnCounts[types.TurnQuarter], p.TurnCounts[types.TurnInverse], p.TurnCounts[types.TurnDouble])
	fmt.Fprintf(&b, "  Quarter turns: %d\n", p.QuarterTurns)

	return b.String()
}
