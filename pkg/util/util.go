package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s", e.msg)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.code, target)
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrNotFound             = errors.New("requested item is not found")
	ErrNoResult             = errors.New("no route satisfies the query")
	ErrDataCorruption       = errors.New("navigation data is corrupted")
	ErrReadOrder            = errors.New("compiler phase invoked before its prerequisite")
	ErrAlreadyRead          = errors.New("compiler phase already completed")
	ErrNotReady             = errors.New("compiled data requested before compilation finished")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInternalConsistency  = errors.New("internal consistency violation")
)

func StringToFloat64(str string) (float64, error) {
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	return val, nil
}

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
