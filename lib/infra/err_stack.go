package infra

import (
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

const errStackMaxDepth = 32

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) fileLine() (string, int) {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFile", 0
	}
	return fn.FileLine(frame.pc())
}

func (frame Frame) name() string {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

func (frame Frame) MarshalText() ([]byte, error) {
	name := frame.name()
	if name == "unknownFunc" {
		return []byte("unknownFrame"), nil
	}
	file, line := frame.fileLine()
	builder := strings.Builder{}
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString(" ")
	_, _ = builder.WriteString(file)
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(line))
	return []byte(builder.String()), nil
}

type frames []Frame

func (fs frames) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range fs {
		text, _ := f.MarshalText()
		enc.AppendByteString(text)
	}
	return nil
}

func callers(skip int) frames {
	var pcs [errStackMaxDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	fs := make(frames, 0, n)
	for i := 0; i < n; i++ {
		fs = append(fs, Frame(pcs[i]))
	}
	return fs
}

// ErrorStack is an error carrying the call frames where it was
// created and the causes it wraps.
// It could be inlined into zap fields as an object.
type ErrorStack interface {
	error
	zapcore.ObjectMarshaler
	Unwrap() []error
	Frames() []Frame
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	cause  error // multierr combined
	msg    string
	frames frames
}

func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		cause:  err,
		frames: callers(1),
	}
}

func WrapErrorStackWithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		cause:  err,
		msg:    msg,
		frames: callers(1),
	}
}

// AppendErrorStack returns a new error stack with errs appended as
// causes, es is never modified.
// If es is an error stack, its message and frames are carried over.
// Otherwise es (including a wrapped error stack) becomes the first cause.
func AppendErrorStack(es error, errs ...error) error {
	var target *errorStack
	if origin, ok := es.(*errorStack); ok && origin != nil {
		target = &errorStack{
			cause:  origin.cause,
			msg:    origin.msg,
			frames: origin.frames,
		}
	} else {
		target = &errorStack{
			cause:  es,
			frames: callers(1),
		}
	}
	for _, err := range errs {
		target.cause = multierr.Append(target.cause, err)
	}
	if target.cause == nil && target.msg == "" {
		return nil
	}
	return target
}

func (es *errorStack) Error() string {
	if es == nil {
		return ""
	}
	if es.cause == nil {
		return es.msg
	}
	if es.msg == "" {
		return es.cause.Error()
	}
	return es.msg + ": " + es.cause.Error()
}

func (es *errorStack) Unwrap() []error {
	if es == nil || es.cause == nil {
		return nil
	}
	return multierr.Errors(es.cause)
}

func (es *errorStack) Frames() []Frame {
	if es == nil {
		return nil
	}
	return es.frames
}

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("error", es.Error())
	causes := es.Unwrap()
	if len(causes) > 0 {
		msgs := make([]string, 0, len(causes))
		for _, cause := range causes {
			msgs = append(msgs, cause.Error())
		}
		if err := enc.AddArray("causes", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
			for _, msg := range msgs {
				ae.AppendString(msg)
			}
			return nil
		})); err != nil {
			return err
		}
	}
	return enc.AddArray("errorStack", es.frames)
}
