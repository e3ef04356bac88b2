// Package utils exposes reusable helpers consumed by the ghusers commands.
//
// ConfigurationLoader merges embedded defaults, configuration files, and
// GHUSERS_ environment variables through Viper; LoggerFactory builds zap
// loggers in structured or console form.
package utils
