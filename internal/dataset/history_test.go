package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playLog = `song,artist,2023-01-10,2023-01-17,2023-01-24
Alpha,A,x,,x
Beta,B,x,x,
Alpha,A,,x,
`

func TestPlayLog_PlayCount(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "playdb.csv", playLog)
	log, err := LoadPlayLog(path)
	require.NoError(t, err)

	assert.Equal(t, 3, log.PlayCount("Alpha"), "rows with the same song are summed")
	assert.Equal(t, 2, log.PlayCount("Beta"))
	assert.Equal(t, 0, log.PlayCount("alpha"))
	assert.Equal(t, 0, log.PlayCount("Missing"))
}

func TestPlayLog_Sessions(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "playdb.csv", playLog)
	log, err := LoadPlayLog(path)
	require.NoError(t, err)

	assert.Equal(t, []Session{
		{Date: "2023-01-10", Played: 2},
		{Date: "2023-01-17", Played: 2},
		{Date: "2023-01-24", Played: 1},
	}, log.Sessions())
}

func TestLoadPlayLog_MissingColumn(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "playdb.csv", "song,2023-01-10\nAlpha,x\n")
	_, err := LoadPlayLog(path)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestRequestsByArtist(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "requestdb.csv", "song,artist,requested by\nAlpha,A,Sam\nBeta,B,Jo\nGamma,A,\n")
	requests, err := LoadRequests(path)
	require.NoError(t, err)
	require.Len(t, requests, 3)

	assert.Equal(t, []Request{{Song: "Alpha", Artist: "A"}, {Song: "Gamma", Artist: "A"}}, RequestsByArtist(requests, "A"))
	assert.Empty(t, RequestsByArtist(requests, "Z"))
}
