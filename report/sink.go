package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sortlab/bench"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Sink consumes results one size at a time.
// Emit is called in sweep order; Close is called once after the last Emit.
type Sink interface {
	Emit(r bench.Result) error
	Close() error
}

// Format names an output flavour of DirSink.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// multi fans out to several sinks.
type multi []Sink

// Multi returns a Sink that forwards to every sink in order. Emit stops at
// the first error; Close closes all sinks and joins their errors.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

// Emit implements Sink.
func (m multi) Emit(r bench.Result) error {
	for _, s := range m {
		if err := s.Emit(r); err != nil {
			return err
		}
	}

	return nil
}

// Close implements Sink.
func (m multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
