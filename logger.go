package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bracketLevelEncoder renders levels as "[Info]", "[Warning]", "[Error]".
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("[Debug]")
	case zapcore.InfoLevel:
		enc.AppendString("[Info]")
	case zapcore.WarnLevel:
		enc.AppendString("[Warning]")
	default:
		enc.AppendString("[Error]")
	}
}

// newLogger builds the console logger used for per-file diagnostics. Output is
// interleaved with the report on w, so there are no timestamps or callers.
func newLogger(w io.Writer, debug bool) *zap.SugaredLogger {
	encCfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      bracketLevelEncoder,
		ConsoleSeparator: " ",
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}
