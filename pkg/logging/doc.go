// Package logging provides centralized structured logging configuration and utilities
// for the seed generation core.
//
// This package wraps logrus to provide consistent logging across the generator and its
// CLI. It supports environment-based configuration, multiple formatters, and contextual
// logging.
//
// # Configuration
//
// The logger can be configured via environment variables:
//   - LOG_LEVEL: Sets the minimum log level (debug, info, warn, error, fatal). Default: info
//   - LOG_FORMAT: Sets the output format (json, text). Default: text
//
// # Usage
//
// Initialize the logger at application startup:
//
//	logger := logging.NewLogger(logging.Config{
//	    Level:      logging.InfoLevel,
//	    Format:     logging.TextFormat,
//	    AddCaller:  true,
//	})
//
// Use structured fields for context:
//
//	logger.WithFields(logrus.Fields{
//	    "world":  0,
//	    "player": "Alice",
//	}).Info("placement round complete")
//
// # Performance
//
// Avoid logging above Info level inside the fixed-point placement loop; use conditional
// debug logging for expensive diagnostics:
//
//	if logger.GetLevel() >= logrus.DebugLevel {
//	    logger.WithFields(expensiveFields()).Debug("detailed solver state")
//	}
package logging
