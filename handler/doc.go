// Package handler exposes directions requests, response parsing and recent
// searches over HTTP with gin.
package handler
