package response

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Warning type constants
const (
	WarningWaypointDropped     = "waypoint_dropped"
	WarningIntermediateDropped = "intermediate_waypoint_dropped"
	WarningRouteDropped        = "route_dropped"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects records dropped during parsing and logs one
// consolidated line per warning type.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// Counts returns the number of occurrences per warning type, or nil when
// nothing was dropped.
func (w *WarningAggregator) Counts() map[string]int {
	if len(w.warnings) == 0 {
		return nil
	}
	counts := make(map[string]int, len(w.warnings))
	for t, info := range w.warnings {
		counts[t] = info.count
	}
	return counts
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(logger *zap.Logger, profile string) {
	if len(w.warnings) == 0 {
		return
	}

	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, warningType := range types {
		info := w.warnings[warningType]
		logger.Warn(formatWarningMessage(warningType, info),
			zap.String("warning", warningType),
			zap.String("profile", profile),
			zap.Int("count", info.count),
			zap.Strings("examples", info.examples),
		)
	}
}

// formatWarningMessage creates a human-readable warning message
func formatWarningMessage(warningType string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningWaypointDropped:
		description = "waypoints with no usable location"
		action = "Omitting them from the resolved waypoints"
	case WarningIntermediateDropped:
		description = "intermediate waypoints that are not point features"
		action = "Omitting them between origin and destination"
	case WarningRouteDropped:
		description = "malformed route records"
		action = "Returning the remaining routes"
	default:
		description = "unknown issue"
		action = "Continuing with the remaining records"
	}

	return fmt.Sprintf("Directions response has %s (%d occurrences). %s. Examples: %s",
		description, info.count, action, strings.Join(info.examples, "; "))
}
