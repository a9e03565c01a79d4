package weather

import "plant-care-api/internal/models"

// MapWeatherIcon maps a WMO weather code to its display category.
func MapWeatherIcon(code int) models.IconKey {
	switch {
	case code == 0:
		return models.IconClear
	case code >= 1 && code <= 3:
		return models.IconPartlyCloudy
	case code == 45 || code == 48:
		return models.IconFog
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return models.IconRain
	case code >= 71 && code <= 77:
		return models.IconSnow
	case code >= 95:
		return models.IconStorm
	default:
		return models.IconCloud
	}
}
