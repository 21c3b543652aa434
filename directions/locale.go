package directions

import (
	"strings"

	"golang.org/x/text/language"
)

// Regions whose locales measure distances in miles.
var imperialRegions = map[string]struct{}{
	"US": {},
	"LR": {},
	"MM": {},
	"GB": {},
}

// DefaultMeasurementSystem returns the measurement system customary for the
// locale's region. An undetermined locale defaults to metric.
func DefaultMeasurementSystem(locale language.Tag) MeasurementSystem {
	if locale == language.Und {
		return MeasurementSystemMetric
	}
	region, conf := locale.Region()
	if conf == language.No {
		return MeasurementSystemMetric
	}
	if _, ok := imperialRegions[region.String()]; ok {
		return MeasurementSystemImperial
	}
	return MeasurementSystemMetric
}

// ParseLocale parses a BCP 47 identifier. Underscore separators ("en_US")
// are accepted.
func ParseLocale(identifier string) (language.Tag, bool) {
	if identifier == "" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(identifier, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
