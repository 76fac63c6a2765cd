package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

func TestSummarizeDepths(t *testing.T) {
	counts := []int{1, 9, 54, 321, 1847, 9992, 50136, 227536, 870072, 1887748, 623800, 2644}
	s := SummarizeDepths(types.HalfTurn, counts)

	assert.Equal(t, "half", s.Metric)
	assert.Equal(t, 11, s.GodsNumber)
	assert.Equal(t, 3674160, s.TotalStates)
	assert.Equal(t, 9, s.ModeDepth)
	assert.Equal(t, 1887748, s.ModeCount)
	assert.InDelta(t, 8.76, s.MeanDepth, 0.01)
	assert.InDelta(t, 1.0/3674160, s.Share(0), 1e-12)
	assert.Zero(t, s.Share(12))
	assert.Zero(t, s.Share(-1))
}

func TestSummarizeDepths_Empty(t *testing.T) {
	s := SummarizeDepths(types.QuarterTurn, nil)
	assert.Equal(t, -1, s.GodsNumber)
	assert.Zero(t, s.TotalStates)
	assert.Zero(t, s.MeanDepth)
}

func TestAnalyzeMovementProfile(t *testing.T) {
	moves := []types.Move{
		{Face: types.FaceU, Turn: types.TurnQuarter},
		{Face: types.FaceF, Turn: types.TurnInverse},
		{Face: types.FaceR, Turn: types.TurnDouble},
		{Face: types.FaceF, Turn: types.TurnQuarter},
	}
	p := AnalyzeMovementProfile(moves)

	assert.Equal(t, 2, p.FaceCounts[types.FaceF])
	assert.Equal(t, 2, p.TurnCounts[types.TurnQuarter])
	assert.Equal(t, types.FaceF, p.MostUsedFace)
	assert.Equal(t, 5, p.QuarterTurns)
}

func TestAnalyzeMovementProfile_Empty(t *testing.T) {
	p := AnalyzeMovementProfile(nil)
	assert.Empty(t, p.FaceCounts)
	assert.Equal(t, types.Face(""), p.MostUsedFace)
	assert.Zero(t, p.QuarterTurns)
}
