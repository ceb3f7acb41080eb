package core

import (
	"regexp"
	"strings"

	"github.com/gbb-community/showcase/schema"
)

// Ordered pattern lists for region detection. Every entry is matched as a
// whole word inside the lowercased location string, so a lone "ca" matches
// while the "ca" inside "antarctica" does not. Ambiguous terms are resolved
// by list priority: americas wins over europe, europe wins over
// asia-pacific. "georgia" is deliberately listed under americas (the US
// state), not as the country.
var (
	americasPatterns = []string{
		// Countries
		"usa", "united states", "america", "canada", "mexico", "brazil",
		"argentina", "chile", "colombia", "peru", "costa rica", "uruguay",
		// Major cities
		"seattle", "redmond", "san francisco", "new york", "austin",
		"chicago", "boston", "atlanta", "dallas", "denver", "miami",
		"toronto", "vancouver", "montreal", "sao paulo", "são paulo",
		"mexico city", "bogota", "buenos aires",
		// US states: abbreviations and the full names detection relies on
		"ca", "wa", "ny", "tx", "fl", "il", "ga", "nc", "co", "az", "or",
		"ma", "va", "pa", "oh", "mi", "mn", "ut",
		"california", "washington", "texas", "florida", "georgia",
		"virginia", "oregon", "colorado", "arizona", "massachusetts",
	}

	europePatterns = []string{
		// Countries
		"uk", "united kingdom", "england", "scotland", "ireland", "germany",
		"france", "spain", "italy", "netherlands", "portugal", "poland",
		"sweden", "norway", "denmark", "finland", "switzerland", "austria",
		"belgium", "greece", "czech", "romania",
		// Major cities
		"london", "madrid", "berlin", "paris", "amsterdam", "munich",
		"dublin", "barcelona", "rome", "milan", "zurich", "stockholm",
		"copenhagen", "oslo", "helsinki", "prague", "vienna", "lisbon",
		"warsaw", "brussels", "edinburgh",
	}

	asiaPacificPatterns = []string{
		// Countries
		"india", "china", "japan", "singapore", "australia", "new zealand",
		"korea", "indonesia", "malaysia", "philippines", "thailand",
		"vietnam", "taiwan", "hong kong",
		// Major cities
		"tokyo", "osaka", "bangalore", "bengaluru", "hyderabad", "mumbai",
		"delhi", "chennai", "pune", "beijing", "shanghai", "shenzhen",
		"sydney", "melbourne", "brisbane", "seoul", "auckland", "jakarta",
		"manila", "taipei",
	}
)

// regionMatchers holds one compiled alternation per region list, in
// evaluation priority order.
var regionMatchers = []struct {
	region schema.Region
	re     *regexp.Regexp
}{
	{schema.RegionAmericas, compilePatterns(americasPatterns)},
	{schema.RegionEurope, compilePatterns(europePatterns)},
	{schema.RegionAsiaPacific, compilePatterns(asiaPacificPatterns)},
}

// compilePatterns builds a single word-boundary alternation from a pattern
// list. Patterns are literal strings; QuoteMeta keeps dots and the like
// from turning into metacharacters.
func compilePatterns(patterns []string) *regexp.Regexp {
	quoted := make([]string, len(patterns))
	for i, p := range patterns {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
}

// DetectRegion classifies a free-text location string into a geographic
// bucket. It is pure and total: empty or unrecognized input yields
// RegionOther, never an error.
func DetectRegion(location string) schema.Region {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return schema.RegionOther
	}
	for _, m := range regionMatchers {
		if m.re.MatchString(loc) {
			return m.region
		}
	}
	return schema.RegionOther
}
