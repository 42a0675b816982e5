// Package logging configures the process wide zerolog logger.
package logging
