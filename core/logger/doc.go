// Package logger builds the zap logger used across the service.
//
// Level debug selects zap's development config, anything else the
// production config at the parsed level. Format picks the json or console
// encoder. WithRayID attaches the request's ray id so every log line of a
// request can be correlated.
//
//	log, _ := logger.New(&cfg.Log)
//	logger.WithRayID(log, c).Error("Scan failed", zap.Error(err))
package logger
