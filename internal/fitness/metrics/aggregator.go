package metrics

// WeightScheme is one fixed weighting of four sub-scores into a single
// 0-100 index. The two schemes come from two different model lineages
// and are not numerically compatible.
type WeightScheme struct {
	W1 float64
	W2 float64
	W3 float64
	W4 float64
}

// OverallFitnessWeights combines cardiovascular, strength, flexibility
// and endurance, in that order.
var OverallFitnessWeights = WeightScheme{W1: 0.30, W2: 0.25, W3: 0.20, W4: 0.25}

// PerformanceIndexWeights combines consistency, performance, variety
// and intensity, in that order.
var PerformanceIndexWeights = WeightScheme{W1: 0.30, W2: 0.30, W3: 0.20, W4: 0.20}

func (ws WeightScheme) Compose(s1, s2, s3, s4 float64) float64 {
	return ws.W1*s1 + ws.W2*s2 + ws.W3*s3 + ws.W4*s4
}

// OverallFitnessIndex is the fixed weighted sum of the four component
// scores. Always recomputed right before a metrics row is persisted,
// never set independently.
func OverallFitnessIndex(scores ComponentScores) float64 {
	return OverallFitnessWeights.Compose(
		scores.Cardiovascular, scores.Strength, scores.Flexibility, scores.Endurance,
	)
}

// FitnessGrade classifies an overall index into a letter grade.
func FitnessGrade(index float64) string {
	switch {
	case index >= 90:
		return "A+"
	case index >= 85:
		return "A"
	case index >= 80:
		return "A-"
	case index >= 75:
		return "B+"
	case index >= 70:
		return "B"
	case index >= 65:
		return "B-"
	case index >= 60:
		return "C+"
	case index >= 55:
		return "C"
	case index >= 50:
		return "C-"
	default:
		return "D"
	}
}

// TrendDelta returns the percent change from b to a. A zero or missing
// prior total reads as 0% change, not as an undefined delta.
func TrendDelta(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return (a - b) / b * 100
}
