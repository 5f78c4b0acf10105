package errors

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogHandler is an ErrorHandler that logs through a zap logger.
//
// Inspection errors are search blockers and other soft failures, so they
// are logged at debug level. Build failures are warnings and recovered
// panics are errors.
type LogHandler struct {
	// Logger receives the entries. A nil Logger falls back to stderr.
	Logger *zap.Logger
	// Verbose adds stack traces to build and panic entries.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger. A nil logger
// selects a console logger on stderr at warn level.
func NewLogHandler(logger *zap.Logger) *LogHandler {
	if logger == nil {
		logger = stderrLogger()
	}
	return &LogHandler{Logger: logger}
}

func stderrLogger() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		zapcore.WarnLevel,
	)
	return zap.New(core).Named("inspect")
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger == nil {
		h.Logger = stderrLogger()
	}
	return h.Logger
}

// HandleError logs an InspectionError at debug level.
func (h *LogHandler) HandleError(err *InspectionError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Path != "" {
		fields = append(fields, zap.String("path", err.Path))
	}
	h.logger().Debug("inspection error", fields...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.Any("value", err.Value)}
	if err.Op != "" {
		fields = append(fields, zap.String("op", err.Op))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("recovered panic", fields...)
}

// HandleBuildError logs a BuildError at warn level.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.String("widget", err.Widget)}
	if err.Recovered != nil {
		fields = append(fields, zap.Any("recovered", err.Recovered))
	}
	if err.Err != nil {
		fields = append(fields, zap.Error(err.Err))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Warn("build failed", fields...)
}
