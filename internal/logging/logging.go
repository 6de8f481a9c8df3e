package logging

import (
	"context"
	"io"
	"os"
	"strings"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	auzerolog "github.com/StephanHCB/go-autumn-logging-zerolog"
	"github.com/rs/zerolog"
)

const ApplicationName = "reg-payment-winipayer-adapter"

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	// expected to terminate the process
	Fatal(format string, v ...interface{})
}

type loggingWrapper struct {
	logger *zerolog.Logger
}

func (l *loggingWrapper) Debug(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *loggingWrapper) Info(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l *loggingWrapper) Warn(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *loggingWrapper) Error(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

// expected to terminate the process
func (l *loggingWrapper) Fatal(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

// context key with a separate type, so no other package has a chance of accessing it
type key int

const (
	LoggerKey key = iota
	RequestIdKey
)

const DefaultRequestId = "00000000"

var baseLogger = newBaseLogger(os.Stdout)

func newBaseLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		With().
		Str("App", ApplicationName).
		Timestamp().
		Logger()
}

// Setup configures the global severity and the output style. Style "ecs" writes
// json lines, anything else human readable console output. The go-autumn-logging
// facade used by the rest client is pointed at zerolog as well.
func Setup(severity string, style string) {
	level, err := zerolog.ParseLevel(strings.ToLower(severity))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	aulogging.RequestIdRetriever = GetRequestID
	if style == "ecs" {
		auzerolog.SetupJsonLogging(ApplicationName)
		baseLogger = newBaseLogger(os.Stdout)
	} else {
		aulogging.DefaultRequestIdValue = DefaultRequestId
		auzerolog.SetupPlaintextLogging()
		baseLogger = newBaseLogger(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	// auzerolog resets the global level
	zerolog.SetGlobalLevel(level)
}

// you should only use this when your code really does not belong to request processing.
// otherwise be a good citizen and do pass down the context, so log output can be associated with
// the request being processed!
func NoCtx() Logger {
	return NewLogger()
}

func LoggerFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return NewLogger()
	}
	logger, ok := ctx.Value(LoggerKey).(Logger)
	if !ok {
		return NewLogger()
	}

	return logger
}

func CreateContextWithLoggerForRequestId(ctx context.Context, requestId string) context.Context {
	ctx = context.WithValue(ctx, RequestIdKey, requestId)
	return context.WithValue(ctx, LoggerKey, WithRequestID(ctx, requestId))
}

func WithRequestID(_ context.Context, requestId string) Logger {
	logger := baseLogger.With().Str("RequestId", requestId).Logger()
	return &loggingWrapper{
		logger: &logger,
	}
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return DefaultRequestId
	}
	if reqID, ok := ctx.Value(RequestIdKey).(string); ok {
		return reqID
	}
	return DefaultRequestId
}

func NewLogger() Logger {
	logger := baseLogger
	return &loggingWrapper{
		logger: &logger,
	}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct {
}

func (l *noopLogger) Debug(format string, v ...interface{}) {
}

func (l *noopLogger) Info(format string, v ...interface{}) {
}

func (l *noopLogger) Warn(format string, v ...interface{}) {
}

func (l *noopLogger) Error(format string, v ...interface{}) {
}

// expected to terminate the process
func (l *noopLogger) Fatal(format string, v ...interface{}) {
}
