// Package response maps a raw directions API reply onto typed waypoints and
// routes.
//
// Parsing is best effort. A malformed waypoint or route record is dropped on
// its own and counted as a warning; the rest of the reply is still used. The
// one exception is the v4 reply, whose origin and destination are mandatory:
// without them Parse returns ErrMissingOrigin or ErrMissingDestination.
//
// The package performs no I/O:
//
//	res, err := response.ParseJSON(options, body)
//	if err != nil {
//	    // the reply cannot be interpreted for these options
//	}
//	for _, r := range res.Routes { ... }
package response
