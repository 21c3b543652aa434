package internal

import "go.uber.org/zap"

// NewLogger returns the JSON production logger for env "production" and the
// console development logger for anything else.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
