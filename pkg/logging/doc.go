// Package logging provides structured logging utilities for FoodApp components.
//
// # Overview
//
// This package wraps the standard library slog package with FoodApp-specific
// defaults and conventions for consistent logging across all components. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("fooday", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("fetching menus", "date", "2026-08-30")
//	    slog.Warn("menu fetch failed", "restaurant", name, "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("foodayd", "v2.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("fooday", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug fooday menu
//	LOG_LEVEL=error foodayd
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-08-30T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "menu aggregated",
//	    "module": "foodayd",
//	    "version": "v1.0.0",
//	    "meals": 42
//	}
//
// Debug logs include source location.
package logging
