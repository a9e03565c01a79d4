package models

import (
	"fmt"
	"strings"
	"time"
)

// MeasurementKind selects which reading field a chart plots.
type MeasurementKind string

const (
	KindPH        MeasurementKind = "ph"
	KindMoisture  MeasurementKind = "moisture"
	KindFertility MeasurementKind = "fertility"
)

func ParseMeasurementKind(s string) (MeasurementKind, error) {
	switch k := MeasurementKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPH, KindMoisture, KindFertility:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown measurement kind %q", ErrInvalidInput, s)
}

// Fertility levels as stored on a reading.
const (
	FertilityLow    = 0
	FertilityNormal = 1
	FertilityHigh   = 2
)

// Reading is one sensor measurement for a plant. Any of the values may be absent.
type Reading struct {
	ID        uint      `json:"id" example:"12"`
	PlantID   uint      `json:"user_plant_id" example:"3"`
	Date      time.Time `json:"date" example:"2025-08-22T07:30:00Z"`
	PH        *float64  `json:"ph" example:"6.4"`
	Moisture  *int      `json:"moisture" example:"68"`
	Fertility *int      `json:"fertility" example:"1"`
}

// Thresholds are the acceptable ranges of a species. Nil fields fall back to defaults.
type Thresholds struct {
	PHMin           *float64 `json:"ph_min" example:"6.0"`
	PHMax           *float64 `json:"ph_max" example:"7.0"`
	MoistureMorning *int     `json:"moisture_morning" example:"60"`
	MoistureNight   *int     `json:"moisture_night" example:"75"`
}
