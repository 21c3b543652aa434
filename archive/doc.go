// Package archive persists RouteOptions as a versioned, keyed record.
//
// A Record is a plain struct with one field per persisted option. It is
// written as JSON (Marshal) or as a protobuf google.protobuf.Struct
// (MarshalBinary), so a record stored by an older build keeps decoding after
// fields are added: unknown keys are ignored and SchemaVersion tells which
// layout produced the record.
//
// Example:
//
//	data, err := archive.Marshal(options)
//	if err != nil {
//	    // handle error
//	}
//	restored, err := archive.Unmarshal(data)
//	if errors.Is(err, archive.ErrInvalidRecord) {
//	    // record is corrupt or from a newer schema
//	}
//
// Only the request fields are persisted. The API version and v4 fields are
// not part of the record.
package archive
