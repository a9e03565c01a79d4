package plants

// RangeIndicator positions an acceptable range on a slider scale.
type RangeIndicator struct {
	Start   float64 `json:"start" example:"42.86"`
	End     float64 `json:"end" example:"50"`
	InRange bool    `json:"in_range" example:"true"`
}

// NewRangeIndicator maps [lo, hi] onto the scale as percentages and reports
// whether value lies inside [lo, hi].
func NewRangeIndicator(lo, hi, scaleMin, scaleMax, value float64) RangeIndicator {
	ind := RangeIndicator{InRange: value >= lo && value <= hi}
	if scaleMax <= scaleMin {
		return ind
	}
	ind.Start = percent(lo, scaleMin, scaleMax)
	ind.End = percent(hi, scaleMin, scaleMax)
	return ind
}

func percent(v, scaleMin, scaleMax float64) float64 {
	p := (v - scaleMin) / (scaleMax - scaleMin) * 100
	return max(0, min(p, 100))
}
