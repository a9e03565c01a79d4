package chart

import (
	"sort"

	"plant-care-api/internal/models"
)

// LabelLayout renders month, day and time without the year.
const LabelLayout = "Jan 2 15:04"

const (
	ColorPHLow        = "red"
	ColorPHHigh       = "green"
	ColorMoistureLow  = "#ffd13b"
	ColorMoistureHigh = "#9687eb"
)

type ReferenceLine struct {
	Value float64 `json:"value" example:"6"`
	Color string  `json:"color" example:"red"`
}

type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Len is the number of plotted points.
func (s Series) Len() int {
	return len(s.Values)
}

// SortByDate returns a copy of readings in ascending date order. Readings with
// equal dates keep their relative order.
func SortByDate(readings []models.Reading) []models.Reading {
	sorted := make([]models.Reading, len(readings))
	copy(sorted, readings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// SelectReferenceLines returns the low and high guide lines for kind.
// Fertility has no numeric thresholds and gets none.
func SelectReferenceLines(kind models.MeasurementKind, t *models.Thresholds) []ReferenceLine {
	switch kind {
	case models.KindPH:
		return []ReferenceLine{
			{Value: ResolvePHMin(t), Color: ColorPHLow},
			{Value: ResolvePHMax(t), Color: ColorPHHigh},
		}
	case models.KindMoisture:
		return []ReferenceLine{
			{Value: ResolveMoistureLow(t), Color: ColorMoistureLow},
			{Value: ResolveMoistureHigh(t), Color: ColorMoistureHigh},
		}
	default:
		return []ReferenceLine{}
	}
}

// PrepareSeries sorts a copy of readings and extracts the values of kind.
// Readings without a value for kind are skipped.
func PrepareSeries(kind models.MeasurementKind, readings []models.Reading) Series {
	series := Series{Labels: []string{}, Values: []float64{}}

	for _, r := range SortByDate(readings) {
		v, ok := valueOf(kind, r)
		if !ok {
			continue
		}
		series.Labels = append(series.Labels, r.Date.Format(LabelLayout))
		series.Values = append(series.Values, v)
	}

	return series
}

func valueOf(kind models.MeasurementKind, r models.Reading) (float64, bool) {
	switch kind {
	case models.KindPH:
		if r.PH != nil {
			return *r.PH, true
		}
	case models.KindMoisture:
		if r.Moisture != nil {
			return float64(*r.Moisture), true
		}
	case models.KindFertility:
		if r.Fertility != nil {
			return float64(*r.Fertility), true
		}
	}
	return 0, false
}
