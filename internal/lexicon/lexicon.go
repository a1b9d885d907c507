// Package lexicon holds the static reference tables used by the signal
// extractors: the canonical English proficiency scale, the fuzzy-level
// vocabulary, experience keywords, excluded intent phrases and the commute
// time table. The vocabulary is fixed and mostly French, matching the CVs
// this tool screens.
package lexicon

// LevelOrder is the canonical English proficiency scale, lowest first.
// Index positions are meaningful: a level's rank is its index here.
var LevelOrder = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// LevelIndex returns the rank of a canonical level code, or 0 when the code
// is not part of the scale.
func LevelIndex(code string) int {
	for i, level := range LevelOrder {
		if level == code {
			return i
		}
	}
	return 0
}

// FuzzyLevels maps informal proficiency mentions to their normalized label.
var FuzzyLevels = map[string]string{
	"courant":       "courant",
	"fluent":        "courant",
	"bilingue":      "bilingue",
	"professionnel": "professionnel",
	"avancé":        "avancé",
	"intermédiaire": "intermédiaire",
	"notions":       "notions",
	"débutant":      "débutant",
}

// ExperienceKeywords maps lowercase experience-type triggers to the label
// reported in the enriched record.
var ExperienceKeywords = map[string]string{
	"stage":      "Stage",
	"freelance":  "Freelance",
	"alternance": "Alternance",
	"cdd":        "CDD",
	"cdi":        "CDI",
	"intérim":    "Intérim",
	"emploi":     "Emploi",
	"bénévolat":  "Bénévolat",
}

// ExcludedPhrases marks a line as intent or aspiration rather than actual
// experience. A line containing any of these is never counted.
var ExcludedPhrases = []string{
	"à la recherche",
	"souhaite",
	"je cherche",
	"je souhaite",
	"objectif",
	"intéressé par",
}

// Sentinels used when a signal cannot be resolved from the text.
const (
	UnknownLocation = "non renseignée"
	Unspecified     = "Non précisé"
	NoClearLine     = "Aucune phrase claire"
	SentinelCommute = 999
)

// CityCommute pairs a lowercase city name with commute estimates in minutes
// from the agency office.
type CityCommute struct {
	City      string
	Transport int
	Car       int
}

// CityCommuteTable lists known cities, nearest first. The slice order is the
// scan order used by the location extractor, keeping detection deterministic
// when one line mentions several cities.
var CityCommuteTable = []CityCommute{
	{"noisy-le-grand", 10, 15},
	{"champs-sur-marne", 5, 8},
	{"torcy", 15, 20},
	{"lognes", 8, 12},
	{"bussy-saint-georges", 18, 25},
	{"noisiel", 6, 10},
	{"chelles", 20, 30},
	{"vaires-sur-marne", 25, 35},
	{"gournay-sur-marne", 20, 25},
	{"neuilly-sur-marne", 20, 25},
	{"villiers-sur-marne", 12, 18},
	{"bry-sur-marne", 15, 22},
	{"le-perreux-sur-marne", 20, 28},
	{"fontenay-sous-bois", 18, 25},
	{"rosny-sous-bois", 25, 35},
	{"nogent-sur-marne", 22, 30},
	{"paris", 35, 45},
	{"bagnolet", 30, 40},
	{"montreuil", 25, 35},
	{"saint-mandé", 25, 30},
	{"vincennes", 22, 30},
	{"ivry-sur-seine", 30, 40},
	{"gentilly", 35, 45},
	{"pantin", 28, 38},
	{"le-kremlin-bicetre", 35, 45},
	{"charenton-le-pont", 28, 35},
	{"alfortville", 25, 32},
	{"maisons-alfort", 22, 30},
	{"creteil", 25, 30},
	{"villejuif", 35, 45},
	{"vitry-sur-seine", 35, 45},
	{"choisy-le-roi", 40, 50},
	{"orly", 45, 55},
	{"thiais", 40, 50},
	{"evry", 60, 75},
	{"juvisy-sur-orge", 50, 65},
	{"ris-orangis", 60, 70},
	{"aubervilliers", 45, 60},
	{"saint-denis", 40, 55},
	{"clichy", 50, 60},
	{"asnieres-sur-seine", 55, 65},
	{"levallois-perret", 50, 65},
	{"neuilly-sur-seine", 55, 70},
	{"courbevoie", 60, 75},
	{"nanterre", 65, 80},
	{"argenteuil", 65, 85},
	{"sarcelles", 65, 85},
	{"versailles", 55, 70},
	{"meaux", 50, 60},
	{"melun", 55, 70},
	{"lagny-sur-marne", 25, 35},
	{"thorigny-sur-marne", 30, 40},
}

var cityCommutes = func() map[string]CityCommute {
	m := make(map[string]CityCommute, len(CityCommuteTable))
	for _, entry := range CityCommuteTable {
		m[entry.City] = entry
	}
	return m
}()

// Commute resolves the commute estimate for a location. Unknown or
// unspecified locations get the sentinel pair so they fail any finite
// commute ceiling instead of slipping through.
func Commute(location string) (transport, car int) {
	if entry, ok := cityCommutes[location]; ok {
		return entry.Transport, entry.Car
	}
	return SentinelCommute, SentinelCommute
}

// KnownCity reports whether the location is part of the commute table.
func KnownCity(location string) bool {
	_, ok := cityCommutes[location]
	return ok
}
