// Package geographic clusters tweets by city and country and analyzes
// regional theme distribution.
package geographic

// cityToCountry maps lowercase city names to countries. Cities outside
// the table resolve to "Unknown".
var cityToCountry = map[string]string{
	"paris":      "France",
	"london":     "United Kingdom",
	"new york":   "United States",
	"tokyo":      "Japan",
	"berlin":     "Germany",
	"madrid":     "Spain",
	"rome":       "Italy",
	"amsterdam":  "Netherlands",
	"brussels":   "Belgium",
	"vienna":     "Austria",
	"zurich":     "Switzerland",
	"stockholm":  "Sweden",
	"oslo":       "Norway",
	"helsinki":   "Finland",
	"copenhagen": "Denmark",
	"dublin":     "Ireland",
	"lisbon":     "Portugal",
	"athens":     "Greece",
	"warsaw":     "Poland",
	"prague":     "Czech Republic",
	"budapest":   "Hungary",
	"bucharest":  "Romania",
	"sofia":      "Bulgaria",
	"zagreb":     "Croatia",
	"ljubljana":  "Slovenia",
	"bratislava": "Slovakia",
	"vilnius":    "Lithuania",
	"riga":       "Latvia",
	"tallinn":    "Estonia",
}

// themeKeywords assigns a theme when any keyword appears as a substring
// of the tweet content. Slice order fixes the theme order on ties.
var themeKeywords = []struct {
	Name     string
	Keywords []string
}{
	{"ai", []string{"ai", "artificial intelligence", "machinelearning", "ml"}},
	{"bigdata", []string{"bigdata", "hadoop", "spark", "analytics"}},
	{"cloud", []string{"cloud", "cloudcomputing", "aws", "azure"}},
	{"blockchain", []string{"blockchain", "crypto", "bitcoin"}},
	{"iot", []string{"iot", "internet of things", "sensors"}},
	{"datascience", []string{"datascience", "data science", "analytics"}},
	{"programming", []string{"python", "java", "javascript", "coding"}},
	{"mapreduce", []string{"mapreduce", "distributed computing"}},
}

// GeneralTheme is assigned when no keyword matches.
const GeneralTheme = "general"
