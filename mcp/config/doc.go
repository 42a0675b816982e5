// Package config defines the YAML/JSON configuration of the unit converter
// service, its UNITCONV_* environment overlay and validation.
package config
