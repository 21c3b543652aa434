// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The directions section supplies the defaults every request starts from.
package config
