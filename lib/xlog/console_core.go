package xlog

import (
	"go.uber.org/zap/zapcore"
)

var _ xLogCore = (*consoleCore)(nil)

type consoleCore struct{}

func (cc *consoleCore) build(
	lvlEnabler zapcore.LevelEnabler,
	encoder LogEncoderType,
	writer LogOutWriterType,
	lvlEnc zapcore.LevelEncoder,
	tsEnc zapcore.TimeEncoder,
) (core zapcore.Core, stop func() error, err error) {
	config := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   lvlEnc,
		TimeKey:       "ts",
		EncodeTime:    tsEnc,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "fn",
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
	ws, stop := getOutWriterByType(writer)
	core = zapcore.NewCore(getEncoderByType(encoder)(config), ws, lvlEnabler)
	return core, stop, nil
}

// Used to redirect the logs into an existing core, i.e. zaptest observer.
type wrappedCore struct {
	core zapcore.Core
}

func (wc *wrappedCore) build(
	lvlEnabler zapcore.LevelEnabler,
	_ LogEncoderType,
	_ LogOutWriterType,
	_ zapcore.LevelEncoder,
	_ zapcore.TimeEncoder,
) (core zapcore.Core, stop func() error, err error) {
	if wc.core == nil {
		return nil, nil, errNilCore
	}
	// A core stricter than the logger level keeps its own level.
	if !wc.core.Enabled(zapcore.LevelOf(lvlEnabler)) {
		return wc.core, nil, nil
	}
	core, err = zapcore.NewIncreaseLevelCore(wc.core, lvlEnabler)
	return core, nil, err
}
