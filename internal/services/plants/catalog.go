package plants

import (
	"strings"

	"plant-care-api/internal/store"
)

func floatRef(v float64) *float64 { return &v }
func intRef(v int) *int { return &v }

// DefaultSpecies is the catalog seeded on startup.
var DefaultSpecies = []store.Species{
	{CommonName: "Basil", ScientificName: "Ocimum basilicum", PHMin: floatRef(6.0), PHMax: floatRef(7.0), SoilMoistureMorning: intRef(60), SoilMoistureNight: intRef(75)},
	{CommonName: "Sage", ScientificName: "Salvia officinalis", PHMin: floatRef(6.0), PHMax: floatRef(7.0), SoilMoistureMorning: intRef(40), SoilMoistureNight: intRef(55)},
	{CommonName: "Cherry Tomatoes", ScientificName: "Solanum lycopersicum var. cerasiforme", PHMin: floatRef(6.0), PHMax: floatRef(6.5), SoilMoistureMorning: intRef(60), SoilMoistureNight: intRef(80)},
	{CommonName: "Cat Grass", ScientificName: "Avena sativa (or Hordeum vulgare, Triticum aestivum)", PHMin: floatRef(6.0), PHMax: floatRef(7.0), SoilMoistureMorning: intRef(65), SoilMoistureNight: intRef(85)},
	{CommonName: "Mint", ScientificName: "Mentha spp.", PHMin: floatRef(6.0), PHMax: floatRef(7.0), SoilMoistureMorning: intRef(70), SoilMoistureNight: intRef(85)},
	{CommonName: "Thyme", ScientificName: "Thymus vulgaris", PHMin: floatRef(6.0), PHMax: floatRef(8.0), SoilMoistureMorning: intRef(30), SoilMoistureNight: intRef(50)},
	{CommonName: "Jasmine", ScientificName: "Jasminum spp.", PHMin: floatRef(5.5), PHMax: floatRef(7.5), SoilMoistureMorning: intRef(50), SoilMoistureNight: intRef(65)},
	{CommonName: "Aloe Vera", ScientificName: "Aloe barbadensis miller", PHMin: floatRef(7.0), PHMax: floatRef(8.5), SoilMoistureMorning: intRef(20), SoilMoistureNight: intRef(30)},
	{CommonName: "Dipladenia", ScientificName: "Mandevilla sanderi (Dipladenia)", PHMin: floatRef(5.5), PHMax: floatRef(6.5), SoilMoistureMorning: intRef(55), SoilMoistureNight: intRef(70)},
	{CommonName: "Asparagus Fern", ScientificName: "Asparagus setaceus (syn. plumosus)", PHMin: floatRef(5.5), PHMax: floatRef(6.5), SoilMoistureMorning: intRef(70), SoilMoistureNight: intRef(85)},
	{CommonName: "Geranium", ScientificName: "Pelargonium spp.", PHMin: floatRef(6.0), PHMax: floatRef(6.5), SoilMoistureMorning: intRef(45), SoilMoistureNight: intRef(60)},
}

const defaultLocale = "en"

// careTips are keyed by lower-cased common name, then locale.
var careTips = map[string]map[string][]string{
	"basil": {
		"en": {"Keep soil evenly moist, not soggy", "Pinch tops to encourage bushy growth", "Avoid cold drafts"},
		"it": {"Mantieni il terreno uniformemente umido, non fradicio", "Pizzica le cime per favorire la crescita folta", "Evita correnti fredde"},
	},
	"sage": {
		"en": {"Let top soil dry before watering", "Prefers good air circulation", "Avoid over-fertilizing"},
		"it": {"Lascia asciugare lo strato superiore prima di annaffiare", "Preferisce buona circolazione d’aria", "Evita troppi fertilizzanti"},
	},
	"cherry tomatoes": {
		"en": {"Consistent moisture helps prevent splitting", "Needs 6–8h direct sun", "Feed lightly but regularly"},
		"it": {"Umidità costante previene le spaccature", "Necessita 6–8 ore di sole diretto", "Concima leggermente ma regolarmente"},
	},
	"cat grass": {
		"en": {"Keep evenly moist especially early", "Trim to encourage fresh growth"},
		"it": {"Mantieni umido soprattutto all’inizio", "Taglia per stimolare nuova crescita"},
	},
	"mint": {
		"en": {"Likes moist, rich soil", "Can spread aggressively, contain roots"},
		"it": {"Ama terreno umido e ricco", "Può espandersi: contenere le radici"},
	},
	"thyme": {
		"en": {"Allow soil to dry between waterings", "Avoid soggy conditions"},
		"it": {"Lascia asciugare il terreno tra un’annaffiatura e l’altra", "Evita ristagni"},
	},
	"jasmine": {
		"en": {"Enjoys bright light", "Moderate watering, do not waterlog"},
		"it": {"Ama luce intensa", "Annaffiature moderate, non inzuppare"},
	},
	"aloe vera": {
		"en": {"Allow soil to dry thoroughly", "Use well-draining mix"},
		"it": {"Lascia asciugare bene il terreno", "Usa substrato ben drenante"},
	},
	"dipladenia": {
		"en": {"Likes bright filtered light", "Do not let roots sit in water"},
		"it": {"Piace luce intensa filtrata", "Non lasciare le radici in acqua"},
	},
	"asparagus fern": {
		"en": {"Likes high humidity", "Let topsoil dry slightly"},
		"it": {"Gradisce alta umidità", "Lascia asciugare leggermente la superficie"},
	},
	"geranium": {
		"en": {"Allow partial drying between waterings", "Deadhead spent blooms"},
		"it": {"Lascia asciugare parzialmente tra annaffiature", "Rimuovi i fiori secchi"},
	},
}

// speciesNames translates catalog common names, keyed by locale.
var speciesNames = map[string]map[string]string{
	"it": {
		"Basil":           "Basilico",
		"Sage":            "Salvia",
		"Cherry Tomatoes": "Pomodorini",
		"Cat Grass":       "Erba gatta",
		"Mint":            "Menta",
		"Thyme":           "Timo",
		"Jasmine":         "Gelsomino",
		"Aloe Vera":       "Aloe vera",
		"Dipladenia":      "Dipladenia",
		"Asparagus Fern":  "Asparago piumoso",
		"Geranium":        "Geranio",
	},
}

// CareTips returns the tips for a species in locale, falling back to English.
// Unknown species have no tips.
func CareTips(commonName, locale string) []string {
	entry, ok := careTips[strings.ToLower(strings.TrimSpace(commonName))]
	if !ok {
		return []string{}
	}
	if tips, ok := entry[normalizeLocale(locale)]; ok {
		return tips
	}
	return entry[defaultLocale]
}

// TranslateSpecies returns the display name of commonName in locale, or
// commonName itself when no translation exists.
func TranslateSpecies(commonName, locale string) string {
	if name, ok := speciesNames[normalizeLocale(locale)][commonName]; ok {
		return name
	}
	return commonName
}

// normalizeLocale reduces "it-IT" or "IT" to "it".
func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	if locale == "" {
		return defaultLocale
	}
	return locale
}
