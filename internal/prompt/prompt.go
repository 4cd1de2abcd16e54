// Package prompt asks the user for filter values one field at a time.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cli-tabdb-helper/internal/dataset"
	"cli-tabdb-helper/internal/filter"
)

var labels = map[dataset.Field]string{
	dataset.FieldArtist:       "artist",
	dataset.FieldYear:         "year (e.g. 1985)",
	dataset.FieldType:         "type",
	dataset.FieldGender:       "gender of lead vocalist",
	dataset.FieldDuration:     "duration (whole minutes)",
	dataset.FieldLanguage:     "language",
	dataset.FieldTabber:       "tabber",
	dataset.FieldSource:       "source",
	dataset.FieldDate:         "date",
	dataset.FieldDifficulty:   "difficulty (number)",
	dataset.FieldSpecialBooks: "special books",
}

// Label returns the prompt text for f.
func Label(f dataset.Field) string {
	name, ok := labels[f]
	if !ok {
		name = f.String()
	}
	return fmt.Sprintf("Enter %s (press enter to skip): ", name)
}

// Collector reads one line per filter field.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewCollector creates a Collector that prompts on out and reads from in.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{in: bufio.NewReader(in), out: out}
}

// Collect prompts for every filter field in order. A blank line skips the
// field; once input ends the remaining fields are skipped as well. Cancelling
// ctx returns immediately, even while a read is pending; the Collector must
// not be used again after that.
func (c *Collector) Collect(ctx context.Context) (filter.Raw, error) {
	raw := make(filter.Raw, len(dataset.FilterFields))
	for _, f := range dataset.FilterFields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := io.WriteString(c.out, Label(f)); err != nil {
			return nil, fmt.Errorf("write prompt: %w", err)
		}

		line, err := c.readLine(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		raw[f] = strings.TrimRight(line, "\r\n")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return raw, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
	}
	return raw, nil
}

type readResult struct {
	line string
	err  error
}

// readLine reads one line on a separate goroutine so a blocked terminal read
// does not hold up cancellation.
func (c *Collector) readLine(ctx context.Context) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		done <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.line, res.err
	}
}
