package directions

import "strings"

// AttributeOptions is a set of per-segment attributes requested alongside
// each route leg.
type AttributeOptions uint

const (
	AttributeDistance AttributeOptions = 1 << iota
	AttributeExpectedTravelTime
	AttributeSpeed
	AttributeOpenStreetMapNodeIdentifier
	AttributeCongestionLevel
)

type flagToken[T ~uint] struct {
	flag  T
	token string
}

// Order defines the encoded order.
var attributeTokens = []flagToken[AttributeOptions]{
	{AttributeDistance, "distance"},
	{AttributeExpectedTravelTime, "duration"},
	{AttributeSpeed, "speed"},
	{AttributeOpenStreetMapNodeIdentifier, "nodes"},
	{AttributeCongestionLevel, "congestion"},
}

// ParseAttributeOptions builds a set from tokens. Empty tokens are skipped;
// any unknown token makes the whole parse fail.
func ParseAttributeOptions(descriptions []string) (AttributeOptions, bool) {
	return parseFlags(attributeTokens, descriptions)
}

// Contains reports whether every flag of other is in a.
func (a AttributeOptions) Contains(other AttributeOptions) bool {
	return a&other == other
}

// IsEmpty reports whether no attribute is requested.
func (a AttributeOptions) IsEmpty() bool { return a == 0 }

// String returns the comma-joined tokens of the set.
func (a AttributeOptions) String() string {
	return formatFlags(attributeTokens, a)
}

// RoadClasses is a set of road classes a route may avoid.
type RoadClasses uint

const (
	RoadClassToll RoadClasses = 1 << iota
	RoadClassRestricted
	RoadClassMotorway
	RoadClassFerry
	RoadClassTunnel
)

var roadClassTokens = []flagToken[RoadClasses]{
	{RoadClassToll, "toll"},
	{RoadClassRestricted, "restricted"},
	{RoadClassMotorway, "motorway"},
	{RoadClassFerry, "ferry"},
	{RoadClassTunnel, "tunnel"},
}

// ParseRoadClasses builds a set from tokens with the same rules as
// ParseAttributeOptions.
func ParseRoadClasses(descriptions []string) (RoadClasses, bool) {
	return parseFlags(roadClassTokens, descriptions)
}

// Contains reports whether every class of other is in r.
func (r RoadClasses) Contains(other RoadClasses) bool {
	return r&other == other
}

// IsEmpty reports whether no road class is avoided.
func (r RoadClasses) IsEmpty() bool { return r == 0 }

// String returns the comma-joined tokens of the set.
func (r RoadClasses) String() string {
	return formatFlags(roadClassTokens, r)
}

func parseFlags[T ~uint](tokens []flagToken[T], descriptions []string) (T, bool) {
	var set T
	for _, d := range descriptions {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		found := false
		for _, ft := range tokens {
			if ft.token == d {
				set |= ft.flag
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return set, true
}

func formatFlags[T ~uint](tokens []flagToken[T], set T) string {
	parts := make([]string, 0, len(tokens))
	for _, ft := range tokens {
		if set&ft.flag != 0 {
			parts = append(parts, ft.token)
		}
	}
	return strings.Join(parts, ",")
}
