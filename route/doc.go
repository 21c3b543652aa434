// Package route holds the typed routes decoded from a directions response.
//
// A Route is built from one raw route record together with the resolved
// waypoints and the RouteOptions of the request. The options decide how the
// record is read: the shape format selects between a GeoJSON geometry and an
// encoded polyline, and the attribute options select which per-segment
// annotations are expected.
//
// Encoded polylines are kept as strings; decoding them is left to callers.
package route
