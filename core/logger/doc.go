// Package logger provides the zap-based structured logging setup.
//
// It builds a production (JSON) or development (console) logger from the
// Log configuration section and offers WithRayID to stamp request-scoped
// log entries with the ray ID injected by the rayid middleware.
package logger
