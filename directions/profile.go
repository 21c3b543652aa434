package directions

// ProfileIdentifier names the mode of transportation a route is computed for.
// Values outside the predefined constants are passed to the API verbatim.
type ProfileIdentifier string

const (
	ProfileAutomobile                ProfileIdentifier = "mapbox/driving"
	ProfileAutomobileAvoidingTraffic ProfileIdentifier = "mapbox/driving-traffic"
	ProfileCycling                   ProfileIdentifier = "mapbox/cycling"
	ProfileWalking                   ProfileIdentifier = "mapbox/walking"
)

// IsAutomobile reports whether the profile is one of the driving profiles.
func (p ProfileIdentifier) IsAutomobile() bool {
	return p == ProfileAutomobile || p == ProfileAutomobileAvoidingTraffic
}

func (p ProfileIdentifier) String() string { return string(p) }

// APIVersion selects the directions API a request targets.
type APIVersion string

const (
	V5 APIVersion = "v5"
	V4 APIVersion = "v4"
)

// ParseAPIVersion accepts "v5" or "v4".
func ParseAPIVersion(s string) (APIVersion, bool) {
	switch APIVersion(s) {
	case V5, V4:
		return APIVersion(s), true
	}
	return "", false
}
