// Package logger builds log/slog loggers with context-extracted attributes.
//
// Loggers write JSON by default, or logfmt-style text with FormatText, to
// stderr so command output on stdout stays clean:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//	)
//
// # Context Extractors
//
// A ContextExtractor pulls an attribute out of a context on every log call:
//
//	commandExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if name, ok := ctx.Value(commandKey{}).(string); ok {
//			return slog.String("command", name), true
//		}
//		return slog.Attr{}, false
//	}
//	log := logger.New(logger.WithExtractors(commandExtractor))
//	log.InfoContext(ctx, "done")
//
// Any slog.Handler can be wrapped directly with NewLogHandlerDecorator.
//
// Libraries that accept an optional logger should default to NewNope.
package logger
