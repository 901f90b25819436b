package geographic

import (
	"math"
	"sort"
	"time"

	"github.com/dtnitsch/tweet-mapreduce/pkg/mapreduce"
)

// ThemeCount is one ranked theme.
type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

// CountryStats summarizes one country's tweets.
type CountryStats struct {
	TotalTweets  int            `json:"total_tweets"`
	TopThemes    []ThemeCount   `json:"top_themes"`
	Cities       []string       `json:"cities"`
	SampleTweets []string       `json:"sample_tweets"`
	Languages    map[string]int `json:"languages,omitempty"`
}

// CityStats summarizes one city's tweets. Country and coordinates come
// from the first fact seen for the city.
type CityStats struct {
	Country     string       `json:"country"`
	TotalTweets int          `json:"total_tweets"`
	TopThemes   []ThemeCount `json:"top_themes"`
	Coordinates []float64    `json:"coordinates"`
}

// Specialty is a theme over-represented in one country relative to the
// global distribution.
type Specialty struct {
	Theme              string  `json:"theme"`
	LocalPercentage    float64 `json:"local_percentage"`
	GlobalPercentage   float64 `json:"global_percentage"`
	OverRepresentation float64 `json:"over_representation"`
}

// ThemeAnalysis holds the global theme ranking and per-country
// specialties.
type ThemeAnalysis struct {
	GlobalThemes        []ThemeCount           `json:"global_themes"`
	RegionalSpecialties map[string][]Specialty `json:"regional_specialties"`
}

// Result is the geographic aggregate with its run envelope.
type Result struct {
	AnalysisType        string                    `json:"analysis_type"`
	GeneratedAt         string                    `json:"generated_at"`
	Methodology         string                    `json:"methodology"`
	TotalCountries      int                       `json:"total_countries"`
	TotalCities         int                       `json:"total_cities"`
	CountryStatistics   map[string]CountryStats   `json:"country_statistics"`
	CityStatistics      map[string]CityStats      `json:"city_statistics"`
	MonthlyDistribution map[string]map[string]int `json:"monthly_distribution"`
	ThemeAnalysis       ThemeAnalysis             `json:"theme_analysis"`
}

const (
	topCountryThemes = 5
	topCityThemes    = 3
	topGlobalThemes  = 10
	sampleTweets     = 3

	// A theme is a regional specialty when its local share exceeds
	// this multiple of its global share and it was mentioned at least
	// minSpecialtyCount times locally.
	specialtyRatio    = 1.5
	minSpecialtyCount = 2
)

// Reduce aggregates geographic facts into country, city, monthly and
// theme statistics.
func Reduce(entries []mapreduce.Entry[Mapped]) *Result {
	countryFacts := make(map[string][]Mapped)
	cityFacts := make(map[string][]Mapped)
	countryThemes := make(map[string]*mapreduce.Counter)
	cityThemes := make(map[string]*mapreduce.Counter)
	monthly := make(map[string]map[string]int)
	var countryOrder, cityOrder []string

	for _, e := range entries {
		fact := e.Value

		if _, ok := countryFacts[fact.Country]; !ok {
			countryOrder = append(countryOrder, fact.Country)
			countryThemes[fact.Country] = mapreduce.NewCounter()
		}
		countryFacts[fact.Country] = append(countryFacts[fact.Country], fact)

		if _, ok := cityFacts[fact.City]; !ok {
			cityOrder = append(cityOrder, fact.City)
			cityThemes[fact.City] = mapreduce.NewCounter()
		}
		cityFacts[fact.City] = append(cityFacts[fact.City], fact)

		for _, theme := range fact.Themes {
			countryThemes[fact.Country].Add(theme, 1)
			cityThemes[fact.City].Add(theme, 1)
		}

		if monthly[e.Key] == nil {
			monthly[e.Key] = make(map[string]int)
		}
		monthly[e.Key][fact.Country]++
	}

	countryStats := make(map[string]CountryStats, len(countryFacts))
	for _, country := range countryOrder {
		facts := countryFacts[country]

		var cities []string
		citySeen := make(map[string]bool)
		var samples []string
		languages := make(map[string]int)
		for i, f := range facts {
			if !citySeen[f.City] {
				citySeen[f.City] = true
				cities = append(cities, f.City)
			}
			if i < sampleTweets {
				samples = append(samples, f.TextPreview)
			}
			if f.Language != "" {
				languages[f.Language]++
			}
		}
		if len(languages) == 0 {
			languages = nil
		}

		countryStats[country] = CountryStats{
			TotalTweets:  len(facts),
			TopThemes:    themeCounts(countryThemes[country].MostCommon(topCountryThemes)),
			Cities:       cities,
			SampleTweets: samples,
			Languages:    languages,
		}
	}

	cityStats := make(map[string]CityStats, len(cityFacts))
	for _, city := range cityOrder {
		facts := cityFacts[city]
		cityStats[city] = CityStats{
			Country:     facts[0].Country,
			TotalTweets: len(facts),
			TopThemes:   themeCounts(cityThemes[city].MostCommon(topCityThemes)),
			Coordinates: facts[0].Coordinates,
		}
	}

	return &Result{
		AnalysisType:        "geographic_distribution",
		GeneratedAt:         time.Now().Format(time.RFC3339),
		Methodology:         "MapReduce - Geographic clustering and theme analysis",
		TotalCountries:      len(countryStats),
		TotalCities:         len(cityStats),
		CountryStatistics:   countryStats,
		CityStatistics:      cityStats,
		MonthlyDistribution: monthly,
		ThemeAnalysis:       analyzeThemes(countryOrder, countryThemes),
	}
}

// analyzeThemes ranks themes globally and finds per-country
// specialties: themes whose local mention share exceeds 1.5x the
// global share with at least 2 local mentions, ranked by
// over-representation ratio.
func analyzeThemes(countryOrder []string, countryThemes map[string]*mapreduce.Counter) ThemeAnalysis {
	global := mapreduce.NewCounter()
	for _, country := range countryOrder {
		for _, c := range countryThemes[country].MostCommon(0) {
			global.Add(c.Item, c.Count)
		}
	}
	globalTotal := global.Total()

	specialties := make(map[string][]Specialty, len(countryThemes))
	for _, country := range countryOrder {
		counter := countryThemes[country]
		localTotal := counter.Total()
		if localTotal == 0 {
			continue
		}

		var found []Specialty
		for _, c := range counter.MostCommon(0) {
			localShare := float64(c.Count) / float64(localTotal)
			globalShare := float64(global.Get(c.Item)) / float64(globalTotal)
			if globalShare == 0 {
				continue
			}
			if localShare > globalShare*specialtyRatio && c.Count >= minSpecialtyCount {
				found = append(found, Specialty{
					Theme:              c.Item,
					LocalPercentage:    round(localShare*100, 1),
					GlobalPercentage:   round(globalShare*100, 1),
					OverRepresentation: round(localShare/globalShare, 2),
				})
			}
		}

		sort.SliceStable(found, func(i, j int) bool {
			return found[i].OverRepresentation > found[j].OverRepresentation
		})
		specialties[country] = found
	}

	return ThemeAnalysis{
		GlobalThemes:        themeCounts(global.MostCommon(topGlobalThemes)),
		RegionalSpecialties: specialties,
	}
}

func themeCounts(counts []mapreduce.Count) []ThemeCount {
	out := make([]ThemeCount, len(counts))
	for i, c := range counts {
		out[i] = ThemeCount{Theme: c.Item, Count: c.Count}
	}
	return out
}

func round(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
