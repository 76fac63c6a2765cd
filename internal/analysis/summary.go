// Package analysis summarizes depth histograms and routes.
package analysis

import (
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// DepthSummary contains statistics for a depth histogram.
type DepthSummary struct {
	Metric      string  `json:"metric"`
	GodsNumber  int     `json:"gods_number"`
	TotalStates int     `json:"total_states"`
	MeanDepth   float64 `json:"mean_depth"`
	ModeDepth   int     `json:"mode_depth"`
	ModeCount   int     `json:"mode_count"`
	Counts      []int   `json:"counts"`
}

// SummarizeDepths computes statistics for per-depth state counts.
func SummarizeDepths(metric types.Metric, counts []int) *DepthSummary {
	s := &DepthSummary{
		Metric:     metric.String(),
		GodsNumber: len(counts) - 1,
		Counts:     counts,
	}

	weighted := 0
	for depth, n := range counts {
		s.TotalStates += n
		weighted += depth * n
		if n > s.ModeCount {
			s.ModeCount = n
			s.ModeDepth = depth
		}
	}
	if s.TotalStates > 0 {
		s.MeanDepth = float64(weighted) / float64(s.TotalStates)
	}

	return s
}

// Share returns the fraction of all states found at depth.
func (s *DepthSummary) Share(depth int) float64 {
	if s.TotalStates == 0 || depth < 0 || depth >= len(s.Counts) {
		return 0
	}
	return float64(s.Counts[depth]) / float64(s.TotalStates)
}

// MovementProfile counts which faces and turns a route uses.
type MovementProfile struct {
	FaceCounts   map[types.Face]int `json:"face_counts"`
	TurnCounts   map[types.Turn]int `json:"turn_counts"`
	MostUsedFace types.Face         `json:"most_used_face"`
	QuarterTurns int                `json:"quarter_turns"` // length in the quarter-turn metric
}

// AnalyzeMovementProfile analyzes which faces and turns a route uses.
func AnalyzeMovementProfile(moves []types.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts: make(map[types.Face]int),
		TurnCounts: make(map[types.Turn]int),
	}

	for _, m := range moves {
		profile.FaceCounts[m.Face]++
		profile.TurnCounts[m.Turn]++
		if m.Turn == types.TurnDouble {
			profile.QuarterTurns += 2
		} else {
			profile.QuarterTurns++
		}
	}

	// Ties go to the earlier face in generator order.
	maxFaceCount := 0
	for _, face := range types.Faces {
		if count := profile.FaceCounts[face]; count > maxFaceCount {
			maxFaceCount = count
			profile.MostUsedFace = face
		}
	}

	return profile
}
