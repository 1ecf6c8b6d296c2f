// Package loader reads and writes the line-oriented users file:
// one record per line as three whitespace-separated tokens
// "age first_name last_name".
//
// Lines that do not split into exactly three tokens are skipped without
// error. A leading UTF-8 byte order mark is ignored.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/sortlab/record"
)

// ErrBadAge is returned when a three-token line carries an age that is not
// a non-negative integer.
var ErrBadAge = errors.New("loader: invalid age")

// fieldsPerLine is the token count of a well-formed line.
const fieldsPerLine = 3

const utf8BOM = "\ufeff"

// Parse reads records from r in input order. Lines of any length are
// accepted; the last line may lack a trailing newline.
func Parse(r io.Reader) ([]record.Record, error) {
	br := bufio.NewReader(r)

	var (
		out  []record.Record
		line int
	)
	for {
		text, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("loader: read: %w", readErr)
		}
		if text == "" && readErr == io.EOF {
			break
		}
		line++
		if line == 1 {
			text = strings.TrimPrefix(text, utf8BOM)
		}

		if rec, ok, err := parseLine(text, line); err != nil {
			return nil, err
		} else if ok {
			out = append(out, rec)
		}
		if readErr == io.EOF {
			break
		}
	}

	return out, nil
}

// parseLine turns one line into a record. ok is false for lines that do
// not hold exactly three tokens.
func parseLine(text string, line int) (rec record.Record, ok bool, err error) {
	fields := strings.Fields(text)
	if len(fields) != fieldsPerLine {
		return record.Record{}, false, nil
	}
	age, convErr := strconv.Atoi(fields[0])
	if convErr != nil || age < 0 {
		return record.Record{}, false, fmt.Errorf("%w: line %d: %q", ErrBadAge, line, fields[0])
	}

	return record.Record{Age: age, FirstName: fields[1], LastName: fields[2]}, true, nil
}

// LoadFile opens path and parses it with Parse.
func LoadFile(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Write emits records in the format Parse reads, one per line.
func Write(w io.Writer, records []record.Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%d %s %s\n", r.Age, r.FirstName, r.LastName); err != nil {
			return fmt.Errorf("loader: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes records to it.
func WriteFile(path string, records []record.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("loader: close: %w", cerr)
		}
	}()

	return Write(f, records)
}
