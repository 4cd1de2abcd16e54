package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cli-tabdb-helper/internal/dataset"
	"cli-tabdb-helper/internal/filter"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"A",       // artist
		"2020",    // year
		"",        // type
		"female",  // gender
		"",        // duration
		"English", // language
		"",        // tabber
		"",        // source
		"",        // date
		"x",       // difficulty
		"Xmas",    // special books
	}, "\n") + "\n"

	var out bytes.Buffer
	raw, err := NewCollector(strings.NewReader(input), &out).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "A", raw[dataset.FieldArtist])
	assert.Equal(t, "2020", raw[dataset.FieldYear])
	assert.Equal(t, "", raw[dataset.FieldType])
	assert.Equal(t, "female", raw[dataset.FieldGender])
	assert.Equal(t, "English", raw[dataset.FieldLanguage])
	assert.Equal(t, "x", raw[dataset.FieldDifficulty])
	assert.Equal(t, "Xmas", raw[dataset.FieldSpecialBooks])
	assert.Len(t, raw, len(dataset.FilterFields))

	prompts := out.String()
	for _, f := range dataset.FilterFields {
		assert.Contains(t, prompts, Label(f))
	}
	assert.Less(t, strings.Index(prompts, Label(dataset.FieldArtist)), strings.Index(prompts, Label(dataset.FieldYear)))
	assert.Equal(t, len(dataset.FilterFields), strings.Count(prompts, "(press enter to skip)"))
}

func TestCollect_KeepsSpacesAndStripsCRLF(t *testing.T) {
	t.Parallel()

	raw, err := NewCollector(strings.NewReader(" A \r\n"), &bytes.Buffer{}).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, " A ", raw[dataset.FieldArtist])
}

func TestCollect_EndOfInputSkipsRest(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	raw, err := NewCollector(strings.NewReader("A\n1999"), &out).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "A", raw[dataset.FieldArtist])
	assert.Equal(t, "1999", raw[dataset.FieldYear])
	assert.Equal(t, "", raw[dataset.FieldType])
	assert.NotContains(t, out.String(), Label(dataset.FieldType))

	spec, warnings := filter.Coerce(raw)
	assert.Empty(t, warnings)
	assert.False(t, spec.Empty())
}

func TestCollect_EmptyInput(t *testing.T) {
	t.Parallel()

	raw, err := NewCollector(strings.NewReader(""), &bytes.Buffer{}).Collect(context.Background())
	require.NoError(t, err)

	spec, _ := filter.Coerce(raw)
	assert.True(t, spec.Empty())
}

func TestCollect_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCollector(strings.NewReader("A\n"), &bytes.Buffer{}).Collect(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCollect_CancelWhileReading(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	errc := make(chan error, 1)
	go func() {
		_, err := NewCollector(pr, &bytes.Buffer{}).Collect(ctx)
		errc <- err
	}()

	select {
	case err := <-errc:
		assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("Collect did not return after the context was cancelled")
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Enter artist (press enter to skip): ", Label(dataset.FieldArtist))
	assert.Equal(t, "Enter song (press enter to skip): ", Label(dataset.FieldSong))
}
