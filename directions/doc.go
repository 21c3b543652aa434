// Package directions models a request to a Mapbox-style directions API.
//
// RouteOptions carries the waypoints, the profile and the output-shaping
// flags of one request. The same value builds the request path and query
// (Path, Params) for either API version and is later handed to the response
// package to interpret the reply.
//
// Version-specific behaviour is selected by RouteOptions.Version rather than
// by subtyping:
//
//	o := directions.NewFromCoordinates([]orb.Point{{13.4, 52.5}, {13.5, 52.4}},
//	    directions.WithProfile(directions.ProfileWalking),
//	    directions.WithLocale(language.MustParse("de-DE")),
//	)
//	o.IncludesSteps = true
//	path, query := o.Path(), o.Query()
//
//	legacy := directions.NewV4(o.Waypoints())
//	legacy.V4.IncludesShapes = false
//
// # Canonical tokens
//
// Every enumerated option has a fixed lowercase token used both on the wire
// and in persisted state. ShapeResolutionNone is encoded as "false", not
// "none"; the directions API expects that token.
//
// # Thread Safety
//
// RouteOptions has no internal locking. Values that are not mutated after
// construction are safe for concurrent reads.
package directions
