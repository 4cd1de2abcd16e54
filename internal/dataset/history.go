package dataset

const (
	columnSong   = "song"
	columnArtist = "artist"
)

// Session is one play date column of the play log.
type Session struct {
	Date   string
	Played int
}

// PlayLog is the per-session play history: one row per song and one column
// per session, where a non-empty cell means the song was played.
type PlayLog struct {
	table  *Table
	song   int
	artist int
}

// LoadPlayLog reads the play history at path.
func LoadPlayLog(path string) (*PlayLog, error) {
	t, err := ReadTable(path, columnSong, columnArtist)
	if err != nil {
		return nil, err
	}
	return &PlayLog{table: t, song: t.Index(columnSong), artist: t.Index(columnArtist)}, nil
}

// PlayCount returns how many sessions song was played in, summed over every
// row carrying that exact song name.
func (p *PlayLog) PlayCount(song string) int {
	count := 0
	for row := range p.table.Rows {
		if p.table.Cell(row, p.song) != song {
			continue
		}
		for col := range p.table.Header {
			if p.isSession(col) && p.table.Cell(row, col) != "" {
				count++
			}
		}
	}
	return count
}

// Sessions returns the session columns in file order with the number of
// songs played in each.
func (p *PlayLog) Sessions() []Session {
	var sessions []Session
	for col, name := range p.table.Header {
		if !p.isSession(col) {
			continue
		}
		s := Session{Date: name}
		for row := range p.table.Rows {
			if p.table.Cell(row, col) != "" {
				s.Played++
			}
		}
		sessions = append(sessions, s)
	}
	return sessions
}

func (p *PlayLog) isSession(col int) bool {
	return col != p.song && col != p.artist
}

// Request is one song request.
type Request struct {
	Song   string
	Artist string
}

// LoadRequests reads the request log at path.
func LoadRequests(path string) ([]Request, error) {
	t, err := ReadTable(path, columnSong, columnArtist)
	if err != nil {
		return nil, err
	}
	song, artist := t.Index(columnSong), t.Index(columnArtist)
	requests := make([]Request, 0, len(t.Rows))
	for row := range t.Rows {
		requests = append(requests, Request{Song: t.Cell(row, song), Artist: t.Cell(row, artist)})
	}
	return requests, nil
}

// RequestsByArtist returns the requests for artist in file order.
func RequestsByArtist(requests []Request, artist string) []Request {
	var out []Request
	for _, r := range requests {
		if r.Artist == artist {
			out = append(out, r)
		}
	}
	return out
}
