// Package geo defines the waypoint types shared by directions requests and
// responses.
//
// A Waypoint is a stop in a routing request: the source, an intermediate
// stop or the destination. Coordinates are orb.Point values in [lon, lat]
// order, matching GeoJSON and the directions API wire format.
package geo
