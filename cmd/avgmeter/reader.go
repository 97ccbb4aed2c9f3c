package main

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/baldisbk/avgmeter"
)

// ParseLine reads one observation: "value" or "value weight",
// whitespace-separated. A bare value gets weight 1.
func ParseLine(line string) (value, weight float64, err error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		weight = 1
	case 2:
		weight, err = strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return 0, 0, xerrors.Errorf("weight %q: %w", fields[1], err)
		}
	default:
		return 0, 0, xerrors.Errorf("want value [weight], got %d fields", len(fields))
	}
	value, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, xerrors.Errorf("value %q: %w", fields[0], err)
	}
	return value, weight, nil
}

// Feed pumps observations from r into the meter until EOF or ctx is
// cancelled. Blank lines and #-comments are skipped, unparsable lines
// are logged and skipped. Returns the number of accepted observations.
func Feed(ctx context.Context, sl *zap.SugaredLogger, r io.Reader, m *avgmeter.Meter, progress func(num int)) (int, error) {
	scanner := bufio.NewScanner(r)
	num, lineno := 0, 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return num, nil
		default:
		}
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		value, weight, err := ParseLine(line)
		if err != nil {
			sl.Errorf("Error parsing line %d: %#v", lineno, err)
			continue
		}
		m.Update(value, weight)
		num++
		if progress != nil {
			progress(num)
		}
	}
	if err := scanner.Err(); err != nil {
		return num, xerrors.Errorf("read: %w", err)
	}
	return num, nil
}
