// Package tagreader maps a canonical song metadata record onto each tag
// container family's native key space and back. It owns the field precedence
// rules, the FMPS extended-field handling and the selective write-back
// modes; opening and parsing the raw containers is the container
// implementation's business.
package tagreader

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/fmps"
	"github.com/bilde2910/Clementine/song"
)

// strategy is the per-family bidirectional field mapping.
type strategy interface {
	read(c container.Container, s *song.Song, st *readState)
	// write applies every extended field the family maps during a full save.
	write(c container.Container, s *song.Song)
	// writeStatistics touches only the playcount and score slots.
	writeStatistics(c container.Container, s *song.Song)
	// writeRating touches only the rating slots.
	writeRating(c container.Container, s *song.Song)
}

var strategies = map[container.Kind]strategy{
	container.KindMPEG:      id3v2Strategy{},
	container.KindFLAC:      xiphStrategy{},
	container.KindOggFLAC:   xiphStrategy{},
	container.KindOggSpeex:  xiphStrategy{},
	container.KindOggVorbis: xiphStrategy{},
	container.KindOggOpus:   xiphStrategy{},
	container.KindMP4:       mp4Strategy{},
	container.KindAPE:       apeStrategy{},
	container.KindMPC:       apeStrategy{},
	container.KindWavPack:   apeStrategy{},
	container.KindASF:       asfStrategy{},
}

var fileTypes = map[container.Kind]song.FileType{
	container.KindASF:       song.TypeASF,
	container.KindFLAC:      song.TypeFLAC,
	container.KindMP4:       song.TypeMP4,
	container.KindMPC:       song.TypeMPC,
	container.KindMPEG:      song.TypeMPEG,
	container.KindOggFLAC:   song.TypeOggFLAC,
	container.KindOggSpeex:  song.TypeOggSpeex,
	container.KindOggVorbis: song.TypeOggVorbis,
	container.KindOggOpus:   song.TypeOggOpus,
	container.KindAIFF:      song.TypeAIFF,
	container.KindWAV:       song.TypeWAV,
	container.KindTrueAudio: song.TypeTrueAudio,
	container.KindWavPack:   song.TypeWavPack,
	container.KindAPE:       song.TypeAPE,
}

// readState carries the raw disc and compilation values across a read pass;
// both get their cross-format post-processing once all sources ran.
type readState struct {
	disc        string
	compilation string
}

// Read populates a fresh record from the file's identity and the container's
// tags. A nil container (missing, unreadable or unsupported file) yields a
// record with Valid false and every field at its default; that is the only
// failure signal, no error propagates.
func Read(path string, c container.Container) *song.Song {
	s := song.New()
	statFile(path, s)

	if c == nil {
		slog.Debug("no tag container for file", "path", path)
		return s
	}

	if t := c.Tag(); t != nil {
		s.Title = decode(t.Title())
		s.Artist = decode(t.Artist())
		s.Album = decode(t.Album())
		s.Genre = decode(t.Genre())
		s.Comment = decode(t.Comment())
		s.Year = t.Year()
		s.Track = t.Track()
		s.Valid = true
	}

	var st readState
	if strat, ok := strategies[c.Kind()]; ok {
		strat.read(c, s, &st)
	}

	finishDisc(s, st.disc)
	finishCompilation(s, st.compilation)

	if p, ok := c.Properties(); ok {
		s.Bitrate = p.Bitrate
		s.Samplerate = p.SampleRate
		s.LengthNanosec = int64(p.LengthMs) * int64(nsecPerMsec)
	}

	if t, ok := fileTypes[c.Kind()]; ok {
		s.Type = t
	}

	normalizeSentinels(s)
	return s
}

// Save writes the basic fields plus every extended field the family maps,
// replacing single-valued native slots. Rating and play statistics are left
// to their dedicated save modes.
func Save(c container.Container, s *song.Song) bool {
	if c == nil {
		return false
	}
	t := c.Tag()
	if t == nil {
		slog.Debug("container has no tag to save into")
		return false
	}

	t.SetTitle(s.Title)
	t.SetArtist(s.Artist)
	t.SetAlbum(s.Album)
	t.SetGenre(s.Genre)
	t.SetComment(s.Comment)
	t.SetYear(orZero(s.Year))
	t.SetTrack(orZero(s.Track))

	if strat, ok := strategies[c.Kind()]; ok {
		strat.write(c, s)
	}
	return c.Save()
}

// SaveStatistics writes only the playcount and score extended encodings
// (including the legacy POPM counter for ID3v2). It never touches the
// rating or any basic field, and succeeds without writing when the family
// has no statistics slots.
func SaveStatistics(c container.Container, s *song.Song) bool {
	if c == nil {
		return false
	}
	strat, ok := strategies[c.Kind()]
	if !ok {
		// Nothing to save for this family.
		return true
	}
	strat.writeStatistics(c, s)
	return c.Save()
}

// SaveRating writes only the rating extended encoding (and the POPM byte
// for ID3v2). An unrated song (-1) is not materialized as an explicit
// "unrated" marker: the call succeeds without writing anything, matching
// the native formats' absence-means-unrated convention.
func SaveRating(c container.Container, s *song.Song) bool {
	if s.Unrated() {
		slog.Debug("unrated: nothing to write")
		return true
	}
	if c == nil {
		return false
	}
	strat, ok := strategies[c.Kind()]
	if !ok {
		return true
	}
	strat.writeRating(c, s)
	return c.Save()
}

const nsecPerMsec = 1000000

// decode normalizes a native text value; containers already hand over UTF-8.
func decode(v string) string { return strings.TrimSpace(v) }

// finishDisc resolves the raw disc value collected during the read. An
// "N/M" form keeps the left operand only; the total-discs operand is
// discarded.
func finishDisc(s *song.Song, disc string) {
	if disc == "" {
		return
	}
	n, _, _ := strings.Cut(disc, "/")
	v, err := strconv.Atoi(strings.TrimSpace(n))
	if err != nil {
		slog.Debug("unparseable disc number", "value", disc)
		return
	}
	s.Disc = v
}

// finishCompilation resolves the raw compilation flag. Without a native
// field, a "Various Artists" artist implies a compilation.
func finishCompilation(s *song.Song, compilation string) {
	if compilation == "" {
		if strings.EqualFold(s.Artist, "various artists") {
			s.Compilation = true
		}
		return
	}
	n, _ := strconv.Atoi(strings.TrimSpace(compilation))
	s.Compilation = n == 1
}

// normalizeSentinels forces every not-positive numeric field back to the -1
// absence sentinel after a read pass, so callers never observe a zero from
// a tag that was merely missing.
func normalizeSentinels(s *song.Song) {
	for _, f := range []*int{&s.Track, &s.Disc, &s.Year, &s.Bitrate, &s.Samplerate} {
		if *f <= 0 {
			*f = -1
		}
	}
	if s.BPM <= 0 {
		s.BPM = -1
	}
	if s.Lastplayed <= 0 {
		s.Lastplayed = -1
	}
}

// orZero maps the -1 absence sentinel to the native "unset" zero for basic
// tag setters.
func orZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// numString renders a numeric field for a native text slot, empty when
// unset so the slot is removed rather than zeroed.
func numString(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func floatString(v float64) string {
	if v <= -1 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func boolString(v bool) string {
	if v {
		return "1"
	}
	return ""
}

// serializeNum encodes a single canonical value in the FMPS encoding. A
// one-value row serializes to the plain number, which keeps the written
// fields readable by players that expect a bare scalar.
func serializeNum(v float64) string {
	return fmps.Serialize([]fmps.Row{{fmps.Float(v)}})
}

// fmpsNum parses an FMPS-encoded value and extracts the numeric scalar at
// the given position of the first row. Malformed input is a missing field,
// never an error.
func fmpsNum(text string, pos int) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	rows, err := fmps.Parse(text)
	if err != nil {
		slog.Debug("malformed fmps value", "value", text)
		return 0, false
	}
	return fmps.NumAt(rows, pos)
}

// yearFrom extracts a year from a date-ish value: the leading four
// characters when they are numeric, otherwise a tolerant date parse.
// An unreadable value is absent, never zero.
func yearFrom(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	head := v
	if len(head) > 4 {
		head = head[:4]
	}
	if y, err := strconv.Atoi(head); err == nil && y > 0 {
		return y, true
	}
	if t, err := dateparse.ParseAny(v); err == nil {
		return t.Year(), true
	}
	slog.Debug("unparseable date value", "value", v)
	return 0, false
}

// first returns the head of a keyed store's value list.
func first(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}
