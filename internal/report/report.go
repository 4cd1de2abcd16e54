// Package report writes command results to the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cli-tabdb-helper/internal/dataset"
	"cli-tabdb-helper/internal/filter"
	"cli-tabdb-helper/internal/stats"
)

const (
	// NoFiltersMessage is printed when every filter was skipped.
	NoFiltersMessage = "Please enter at least one filter"
	// NoResultsMessage is printed when the filters match nothing.
	NoResultsMessage = "0 result found, please try again"
)

// Reporter prints results to a single writer.
type Reporter struct {
	out io.Writer
}

// New returns a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Warnings prints one line per dropped filter value.
func (r *Reporter) Warnings(warnings []filter.Warning) {
	for _, w := range warnings {
		fmt.Fprintln(r.out, w.String())
	}
}

// Result prints the outcome of a filter run.
func (r *Reporter) Result(res filter.Result) {
	switch {
	case res.Predicates == 0:
		fmt.Fprintln(r.out, NoFiltersMessage)
	case len(res.Songs) == 0:
		fmt.Fprintln(r.out, NoResultsMessage)
	default:
		r.songs(res.Songs)
	}
}

func (r *Reporter) songs(songs []string) {
	noun := "songs"
	if len(songs) == 1 {
		noun = "song"
	}
	fmt.Fprintf(r.out, "%d %s found:\n", len(songs), noun)
	for _, s := range songs {
		fmt.Fprintln(r.out, s)
	}
}

// Requests prints the requested songs of one artist.
func (r *Reporter) Requests(requests []dataset.Request) {
	if len(requests) == 0 {
		fmt.Fprintln(r.out, NoResultsMessage)
		return
	}
	songs := make([]string, 0, len(requests))
	for _, req := range requests {
		songs = append(songs, req.Song)
	}
	r.songs(songs)
}

// PlayCount prints how often one song was played.
func (r *Reporter) PlayCount(song string, n int) {
	times := "times"
	if n == 1 {
		times = "time"
	}
	fmt.Fprintf(r.out, "%s was played %d %s\n", song, n, times)
}

// Counts prints a value/count table for one stats dimension.
func (r *Reporter) Counts(d stats.Dimension, counts []stats.Count) error {
	table := tablewriter.NewWriter(r.out)
	table.Header(string(d), "songs")
	for _, c := range counts {
		if err := table.Append([]string{c.Value, strconv.Itoa(c.Songs)}); err != nil {
			return fmt.Errorf("render %s table: %w", d, err)
		}
	}
	return table.Render()
}

// Sessions prints the per-session play counts with a running total.
func (r *Reporter) Sessions(sessions []dataset.Session) error {
	table := tablewriter.NewWriter(r.out)
	table.Header("session", "played", "cumulative")
	total := 0
	for _, s := range sessions {
		total += s.Played
		row := []string{s.Date, strconv.Itoa(s.Played), strconv.Itoa(total)}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("render sessions table: %w", err)
		}
	}
	return table.Render()
}
