package stepdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRegressions_FewerThanTwoSegmentsIsEmpty(t *testing.T) {
	assert.Nil(t, ClassifyRegressions(Segmentation{}, 0.05, LowerIsBetter))
	assert.Nil(t, ClassifyRegressions(Segmentation{RightEdges: []int{5}, Levels: []float64{1}}, 0.05, LowerIsBetter))
}

// TestClassifyRegressions_LowerIsBetter pins spec.md 4.6: an increase
// past best*(1+threshold) is a regression under the default direction.
func TestClassifyRegressions_LowerIsBetter(t *testing.T) {
	seg := Segmentation{
		RightEdges: []int{3, 6, 9},
		Levels:     []float64{1, 1.2, 1.04},
	}

	regs := ClassifyRegressions(seg, 0.05, LowerIsBetter)
	require := []Regression{
		{IndexBefore: 2, IndexAfter: 3, LevelBefore: 1, LevelAfter: 1.2},
	}
	assert.Equal(t, require, regs)
}

// TestClassifyRegressions_HigherIsBetter mirrors the LowerIsBetter case
// with the inequality flipped, per spec.md 4.6.
func TestClassifyRegressions_HigherIsBetter(t *testing.T) {
	seg := Segmentation{
		RightEdges: []int{3, 6, 9},
		Levels:     []float64{10, 8, 9.6},
	}

	regs := ClassifyRegressions(seg, 0.05, HigherIsBetter)
	want := []Regression{
		{IndexBefore: 2, IndexAfter: 3, LevelBefore: 10, LevelAfter: 8},
	}
	assert.Equal(t, want, regs)
}

// TestClassifyRegressions_BestTracksRunningExtreme checks that an
// improvement resets the baseline so later increases that stay within
// threshold of the new best are not flagged.
func TestClassifyRegressions_BestTracksRunningExtreme(t *testing.T) {
	seg := Segmentation{
		RightEdges: []int{2, 4, 6, 8},
		Levels:     []float64{10, 2, 2.05, 2.1},
	}

	regs := ClassifyRegressions(seg, 0.05, LowerIsBetter)
	assert.Empty(t, regs, "best should drop to 2 after the improvement, so later small increases stay under threshold")
}

// TestClassifyRegressions_ZeroThresholdFlagsAnyWorsening checks the
// boundary threshold=0 case: any strict worsening is a regression.
func TestClassifyRegressions_ZeroThresholdFlagsAnyWorsening(t *testing.T) {
	seg := Segmentation{
		RightEdges: []int{5, 10},
		Levels:     []float64{1, 1.0001},
	}
	regs := ClassifyRegressions(seg, 0, LowerIsBetter)
	assert.Len(t, regs, 1)
}
