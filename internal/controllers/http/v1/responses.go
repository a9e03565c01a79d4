package http

import (
	"plant-care-api/internal/services/plants"
)

const statusSuccess = "success"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Invalid credentials"`
}

type StatusResponse struct {
	Status string `json:"status" example:"success"`
}

type IDResponse struct {
	Status   string `json:"status" example:"success"`
	ID       uint   `json:"id" example:"12"`
	Existing bool   `json:"existing,omitempty" example:"false"`
}

type ProfileResponse struct {
	Status string `json:"status" example:"success"`
	plants.Profile
}

type SessionResponse struct {
	Status string `json:"status" example:"success"`
	plants.Session
}

type ThresholdsResponse struct {
	Status string `json:"status" example:"success"`
	plants.SpeciesThresholds
}

type PlantThresholdsResponse struct {
	Status string `json:"status" example:"success"`
	plants.PlantOverview
}

type TipsResponse struct {
	Status string   `json:"status" example:"success"`
	Tips   []string `json:"tips" example:"Keep soil evenly moist, not soggy"`
}

type CityRequest struct {
	City string `json:"city" example:"Utrecht"`
}
