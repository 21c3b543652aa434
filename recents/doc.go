// Package recents keeps a history of directions requests a user has made.
//
// Each entry stores the request options in their archived record form, so
// entries written by older builds keep loading. Entries whose record no
// longer decodes are skipped and logged instead of failing the listing.
package recents
