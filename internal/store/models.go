package store

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	City         string    `gorm:"size:120" json:"city"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Species struct {
	ID                  uint     `gorm:"primaryKey" json:"id"`
	CommonName          string   `gorm:"size:120;index;not null" json:"common_name"`
	ScientificName      string   `gorm:"size:255" json:"scientific_name"`
	PHMin               *float64 `json:"ph_min"`
	PHMax               *float64 `json:"ph_max"`
	SoilMoistureMorning *int     `json:"soil_moisture_morning"`
	SoilMoistureNight   *int     `json:"soil_moisture_night"`
}

func (Species) TableName() string {
	return "species"
}

type UserPlant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	SpeciesID uint      `gorm:"index;not null" json:"species_id"`
	Label     string    `gorm:"size:120;not null" json:"label"`
	Species   Species   `gorm:"foreignKey:SpeciesID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Reading struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"-"`
	UserPlantID uint      `gorm:"index:idx_plant_date,priority:1;not null" json:"user_plant_id"`
	Date        time.Time `gorm:"index:idx_plant_date,priority:2;not null" json:"date"`
	PH          *float64  `json:"ph"`
	Moisture    *int      `json:"moisture"`
	Fertility   *int      `json:"fertility"`
}
