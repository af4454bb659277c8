// Package logger provides structured, leveled logging backed by
// charmbracelet/log. Loggers travel through a context.Context so the
// orchestrator and its steps log through whatever the command configured.
package logger
