// Package cities carries the built-in catalog of common cities and the
// name lookups over it. The catalog is static reference data; anything the
// user tracks beyond it lives in their configuration.
package cities

import (
	"strings"

	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
)

var catalog = []overlap.City{
	{ID: "new-york", Name: "New York", Country: "United States", Timezone: "America/New_York"},
	{ID: "los-angeles", Name: "Los Angeles", Country: "United States", Timezone: "America/Los_Angeles"},
	{ID: "london", Name: "London", Country: "United Kingdom", Timezone: "Europe/London"},
	{ID: "paris", Name: "Paris", Country: "France", Timezone: "Europe/Paris"},
	{ID: "tokyo", Name: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo"},
	{ID: "sydney", Name: "Sydney", Country: "Australia", Timezone: "Australia/Sydney"},
	{ID: "singapore", Name: "Singapore", Country: "Singapore", Timezone: "Asia/Singapore"},
	{ID: "hong-kong", Name: "Hong Kong", Country: "Hong Kong", Timezone: "Asia/Hong_Kong"},
	{ID: "dubai", Name: "Dubai", Country: "United Arab Emirates", Timezone: "Asia/Dubai"},
	{ID: "mumbai", Name: "Mumbai", Country: "India", Timezone: "Asia/Kolkata"},
	{ID: "beijing", Name: "Beijing", Country: "China", Timezone: "Asia/Shanghai"},
	{ID: "moscow", Name: "Moscow", Country: "Russia", Timezone: "Europe/Moscow"},
	{ID: "berlin", Name: "Berlin", Country: "Germany", Timezone: "Europe/Berlin"},
	{ID: "toronto", Name: "Toronto", Country: "Canada", Timezone: "America/Toronto"},
	{ID: "chicago", Name: "Chicago", Country: "United States", Timezone: "America/Chicago"},
	{ID: "denver", Name: "Denver", Country: "United States", Timezone: "America/Denver"},
	{ID: "mexico-city", Name: "Mexico City", Country: "Mexico", Timezone: "America/Mexico_City"},
	{ID: "sao-paulo", Name: "São Paulo", Country: "Brazil", Timezone: "America/Sao_Paulo"},
	{ID: "buenos-aires", Name: "Buenos Aires", Country: "Argentina", Timezone: "America/Argentina/Buenos_Aires"},
	{ID: "cairo", Name: "Cairo", Country: "Egypt", Timezone: "Africa/Cairo"},
	{ID: "johannesburg", Name: "Johannesburg", Country: "South Africa", Timezone: "Africa/Johannesburg"},
	{ID: "istanbul", Name: "Istanbul", Country: "Turkey", Timezone: "Europe/Istanbul"},
	{ID: "seoul", Name: "Seoul", Country: "South Korea", Timezone: "Asia/Seoul"},
	{ID: "bangkok", Name: "Bangkok", Country: "Thailand", Timezone: "Asia/Bangkok"},
	{ID: "jakarta", Name: "Jakarta", Country: "Indonesia", Timezone: "Asia/Jakarta"},
}

// Catalog returns a copy of the built-in city list.
func Catalog() []overlap.City {
	return append([]overlap.City(nil), catalog...)
}

// ByID looks a city up by its catalog identifier.
func ByID(id string) (overlap.City, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return overlap.City{}, false
}

// Search matches cities by name or country, case-insensitively. An empty
// or blank query returns the whole catalog.
func Search(query string) []overlap.City {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Catalog()
	}
	var out []overlap.City
	for _, c := range catalog {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Country), q) {
			out = append(out, c)
		}
	}
	return out
}

// NormalizeTZ maps a known city name to its IANA zone. Input already
// containing a '/' is assumed to be a zone identifier and passed through;
// unknown names come back unchanged for the zone loader to reject.
func NormalizeTZ(input string) string {
	if strings.Contains(input, "/") {
		return input
	}
	for _, c := range catalog {
		if strings.EqualFold(c.Name, input) {
			return c.Timezone
		}
	}
	return input
}
