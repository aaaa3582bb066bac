package logging

import (
	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger routes Wails runtime logs into zerolog.
type WailsLogger struct {
	log zerolog.Logger
}

var _ logger.Logger = (*WailsLogger)(nil)

// NewWailsLogger wraps l for use as options.App.Logger.
func NewWailsLogger(l zerolog.Logger) *WailsLogger {
	return &WailsLogger{log: l.With().Str("component", "wails").Logger()}
}

func (w *WailsLogger) Print(message string)   { w.log.Log().Msg(message) }
func (w *WailsLogger) Trace(message string)   { w.log.Trace().Msg(message) }
func (w *WailsLogger) Debug(message string)   { w.log.Debug().Msg(message) }
func (w *WailsLogger) Info(message string)    { w.log.Info().Msg(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn().Msg(message) }
func (w *WailsLogger) Error(message string)   { w.log.Error().Msg(message) }

// Fatal logs at error level; Wails exits the process itself after calling it.
func (w *WailsLogger) Fatal(message string) { w.log.Error().Str("severity", "fatal").Msg(message) }

// WailsLevel maps a zerolog level name to the Wails log level.
func WailsLevel(level string) logger.LogLevel {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return logger.INFO
	}
	switch {
	case lvl <= zerolog.TraceLevel:
		return logger.TRACE
	case lvl == zerolog.DebugLevel:
		return logger.DEBUG
	case lvl == zerolog.InfoLevel, lvl == zerolog.NoLevel:
		return logger.INFO
	case lvl == zerolog.WarnLevel:
		return logger.WARNING
	default:
		return logger.ERROR
	}
}
