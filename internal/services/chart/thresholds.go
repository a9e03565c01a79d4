package chart

import "plant-care-api/internal/models"

// ThresholdDefaults is the fallback range used when a species has no thresholds.
type ThresholdDefaults struct {
	PHMin        float64
	PHMax        float64
	MoistureLow  float64
	MoistureHigh float64
}

var DefaultThresholds = ThresholdDefaults{
	PHMin:        6,
	PHMax:        7,
	MoistureLow:  60,
	MoistureHigh: 75,
}

func ResolvePHMin(t *models.Thresholds) float64 {
	if t == nil || t.PHMin == nil {
		return DefaultThresholds.PHMin
	}
	return *t.PHMin
}

func ResolvePHMax(t *models.Thresholds) float64 {
	if t == nil || t.PHMax == nil {
		return DefaultThresholds.PHMax
	}
	return *t.PHMax
}

func ResolveMoistureLow(t *models.Thresholds) float64 {
	if t == nil || t.MoistureMorning == nil {
		return DefaultThresholds.MoistureLow
	}
	return float64(*t.MoistureMorning)
}

func ResolveMoistureHigh(t *models.Thresholds) float64 {
	if t == nil || t.MoistureNight == nil {
		return DefaultThresholds.MoistureHigh
	}
	return float64(*t.MoistureNight)
}
