package log

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/nearest/pkg/errors"
)

// ZerologLogger adapts zerolog.Logger to Logger.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger writes JSON records to w at the given minimum level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	l := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{logger: l}
}

// FromZerolog wraps an existing zerolog.Logger.
func FromZerolog(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: l}
}

func (z *ZerologLogger) Debug(msg string, fields ...any) { z.logger.Debug().Fields(fields).Msg(msg) }
func (z *ZerologLogger) Info(msg string, fields ...any)  { z.logger.Info().Fields(fields).Msg(msg) }
func (z *ZerologLogger) Warn(msg string, fields ...any)  { z.logger.Warn().Fields(fields).Msg(msg) }
func (z *ZerologLogger) Error(msg string, fields ...any) { z.logger.Error().Fields(fields).Msg(msg) }

func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{logger: z.logger.With().Fields(fields).Logger()}
}

func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	zl := toZerologLevel(level)
	return zl >= z.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// UseZerologWarnings routes errors.Warn to l. Warnings that implement
// zerolog.LogObjectMarshaler are logged with their structured fields, and
// constant-feature warnings also carry FeatureIndexKey.
func UseZerologWarnings(l zerolog.Logger) {
	errors.SetZerologWarnFunc(func(w error) {
		ev := l.Warn()
		if m, ok := w.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(m)
		}
		var cfw *errors.ConstantFeatureWarning
		if errors.As(w, &cfw) {
			ev = ev.Str(OperationKey, OperationFit).Int(FeatureIndexKey, cfw.Feature)
		}
		ev.Msg(w.Error())
	})
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
