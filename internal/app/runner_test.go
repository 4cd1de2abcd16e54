package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cli-tabdb-helper/internal/config"
	"cli-tabdb-helper/internal/dataset"
)

const tabdb = `song,artist,year,type,gender,duration,language,tabber,source,date,difficulty,special books
Alpha,A,2018,pop,female,3,English,Tom,web,2023-01-10,2,
Beta,B,2020,rock,male,4,French,Ann,book,2023-01-17,3,Xmas
Gamma,A,2019,pop,male,3,English,Tom,web,2023-01-24,2,
`

func writeData(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func testConfig(dir string) config.Config {
	return config.Config{
		DataDir:   dir,
		TabDB:     "tabdb.csv",
		PlayDB:    "playdb.csv",
		RequestDB: "requestdb.csv",
	}
}

// answers builds stdin for the eleven prompts from field values.
func answers(values map[dataset.Field]string) string {
	var b strings.Builder
	for _, f := range dataset.FilterFields {
		b.WriteString(values[f])
		b.WriteString("\n")
	}
	return b.String()
}

func runFilter(t *testing.T, dir, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), testConfig(dir), Options{
		Mode: ModeFilter,
		In:   strings.NewReader(input),
		Out:  &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

// results strips the prompts and returns what the reporter printed.
func results(output string) string {
	idx := strings.LastIndex(output, "(press enter to skip): ")
	if idx < 0 {
		return output
	}
	return output[idx+len("(press enter to skip): "):]
}

func TestFilterScenarios(t *testing.T) {
	dir := writeData(t, map[string]string{"tabdb.csv": tabdb})

	tests := []struct {
		name   string
		values map[dataset.Field]string
		want   string
	}{
		{
			name:   "artist matches two songs",
			values: map[dataset.Field]string{dataset.FieldArtist: "A"},
			want:   "2 songs found:\nAlpha\nGamma\n",
		},
		{
			name:   "invalid year is skipped",
			values: map[dataset.Field]string{dataset.FieldYear: "abc", dataset.FieldArtist: "B"},
			want:   "Invalid year input. Skipping year filter.\n1 song found:\nBeta\n",
		},
		{
			name:   "invalid year only leaves no filters",
			values: map[dataset.Field]string{dataset.FieldYear: "abc"},
			want:   "Invalid year input. Skipping year filter.\nPlease enter at least one filter\n",
		},
		{
			name:   "all blank",
			values: map[dataset.Field]string{},
			want:   "Please enter at least one filter\n",
		},
		{
			name:   "unknown artist",
			values: map[dataset.Field]string{dataset.FieldArtist: "Z"},
			want:   "0 result found, please try again\n",
		},
		{
			name:   "filters that only match separately",
			values: map[dataset.Field]string{dataset.FieldArtist: "A", dataset.FieldYear: "2020"},
			want:   "0 result found, please try again\n",
		},
		{
			name: "special books column",
			values: map[dataset.Field]string{
				dataset.FieldSpecialBooks: "Xmas",
				dataset.FieldDifficulty:   "3",
			},
			want: "1 song found:\nBeta\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := results(runFilter(t, dir, answers(tt.values)))
			if got != tt.want {
				t.Fatalf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	dir := writeData(t, map[string]string{"tabdb.csv": tabdb})
	input := answers(map[dataset.Field]string{dataset.FieldLanguage: "English", dataset.FieldType: "pop"})

	first := runFilter(t, dir, input)
	second := runFilter(t, dir, input)
	if first != second {
		t.Fatalf("outputs differ:\n%s\n---\n%s", first, second)
	}
}

func TestFilterFromQueryFile(t *testing.T) {
	dir := writeData(t, map[string]string{
		"tabdb.csv":  tabdb,
		"query.yaml": "artist: A\nyear: 2019\n",
	})

	var out bytes.Buffer
	err := Run(context.Background(), testConfig(dir), Options{
		Mode:      ModeFilter,
		QueryFile: filepath.Join(dir, "query.yaml"),
		In:        strings.NewReader(""),
		Out:       &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got, want := out.String(), "1 song found:\nGamma\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestFilterConfigurationErrors(t *testing.T) {
	missingColumn := strings.Replace(tabdb, ",tabber", "", 1)

	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{name: "missing file", files: map[string]string{}, wantErr: dataset.ErrNotFound},
		{name: "missing column", files: map[string]string{"tabdb.csv": missingColumn}, wantErr: dataset.ErrMissingColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeData(t, tt.files)
			var out bytes.Buffer
			err := Run(context.Background(), testConfig(dir), Options{
				Mode: ModeFilter,
				In:   strings.NewReader(answers(map[dataset.Field]string{dataset.FieldArtist: "A"})),
				Out:  &out,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if out.Len() != 0 {
				t.Fatalf("expected no prompts before the dataset loads, got %q", out.String())
			}
		})
	}
}

func TestStats(t *testing.T) {
	dir := writeData(t, map[string]string{"tabdb.csv": tabdb})

	var out bytes.Buffer
	err := Run(context.Background(), testConfig(dir), Options{Mode: ModeStats, Dimension: "decade", Out: &out})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, want := range []string{"2010s", "2020s"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("stats output missing %q:\n%s", want, out.String())
		}
	}

	err = Run(context.Background(), testConfig(dir), Options{Mode: ModeStats, Dimension: "tempo", Out: &out})
	if err == nil {
		t.Fatalf("expected error for unknown dimension")
	}
}

func TestPlays(t *testing.T) {
	dir := writeData(t, map[string]string{
		"playdb.csv": "song,artist,2023-01-10,2023-01-17\nAlpha,A,x,x\nBeta,B,,x\n",
	})

	var out bytes.Buffer
	err := Run(context.Background(), testConfig(dir), Options{Mode: ModePlays, Song: "Alpha", Out: &out})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got, want := out.String(), "Alpha was played 2 times\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}

	out.Reset()
	err = Run(context.Background(), testConfig(dir), Options{Mode: ModePlays, Out: &out})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "2023-01-17") {
		t.Fatalf("sessions table missing date:\n%s", out.String())
	}
}

func TestRequests(t *testing.T) {
	dir := writeData(t, map[string]string{
		"requestdb.csv": "song,artist\nAlpha,A\nBeta,B\nGamma,A\n",
	})

	var out bytes.Buffer
	err := Run(context.Background(), testConfig(dir), Options{Mode: ModeRequests, Artist: "A", Out: &out})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got, want := out.String(), "2 songs found:\nAlpha\nGamma\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}

	if err := Run(context.Background(), testConfig(dir), Options{Mode: ModeRequests, Out: &out}); err == nil {
		t.Fatalf("expected error without artist")
	}
}

func TestUnknownMode(t *testing.T) {
	if err := Run(context.Background(), testConfig(t.TempDir()), Options{Mode: Mode(42), Out: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
