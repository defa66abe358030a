package stepdetect

// ClassifyRegressions walks a final segmentation left to right and
// emits a Regression record for every segment transition whose level
// is worse than the running best-so-far by more than threshold
// (spec.md 4.6). "Worse" is direction-dependent: for LowerIsBetter
// metrics (the default) a regression is an increase past
// best*(1+threshold); for HigherIsBetter metrics it is a decrease past
// best*(1-threshold).
//
// A segmentation with fewer than 2 segments has no transitions and
// therefore no regressions.
func ClassifyRegressions(seg Segmentation, threshold float64, direction Direction) []Regression {
	k := len(seg.Levels)
	if k < 2 {
		return nil
	}

	var out []Regression
	best := seg.Levels[0]

	for s := 1; s < k; s++ {
		level := seg.Levels[s]

		var isRegression bool
		switch direction {
		case HigherIsBetter:
			isRegression = level < best*(1-threshold)
		default: // LowerIsBetter
			isRegression = level > best*(1+threshold)
		}

		if isRegression {
			out = append(out, Regression{
				IndexBefore: seg.RightEdges[s-1] - 1,
				IndexAfter:  seg.RightEdges[s-1],
				LevelBefore: seg.Levels[s-1],
				LevelAfter:  level,
			})
		}

		switch direction {
		case HigherIsBetter:
			if level > best {
				best = level
			}
		default: // LowerIsBetter
			if level < best {
				best = level
			}
		}
	}
	return out
}
