package tagreader

import (
	"strconv"
	"strings"

	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/popm"
	"github.com/bilde2910/Clementine/song"
)

// id3v2Strategy maps the MPEG family: ID3v2 text frames, TXXX user-text
// frames for the FMPS fields, and the legacy POPM frame.
type id3v2Strategy struct{}

func (id3v2Strategy) read(c container.Container, s *song.Song, st *readState) {
	fs, ok := c.(container.FrameStore)
	if !ok {
		return
	}

	if v := firstFrameText(fs, frameDiscNumber); v != "" {
		st.disc = strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(firstFrameText(fs, frameBPM)); v != "" {
		if bpm, err := strconv.ParseFloat(v, 64); err == nil {
			s.BPM = bpm
		}
	}
	if v := firstFrameText(fs, frameComposer); v != "" {
		s.Composer = decode(v)
	}
	if v := firstFrameText(fs, frameGrouping); v != "" {
		s.Grouping = decode(v)
	}
	if v := firstFrameText(fs, framePerformer); v != "" {
		s.Performer = decode(v)
	}
	// TPE1 is the artist, already read from the basic tag.
	if v := firstFrameText(fs, frameAlbumArtist); v != "" {
		s.AlbumArtist = decode(v)
	}
	if v := firstFrameText(fs, frameCompilation); v != "" {
		st.compilation = strings.TrimSpace(v)
	}

	// Prefer the full original-release date, truncated to a year; fall back
	// to the year-only frame.
	if v := firstFrameText(fs, frameOriginalDate); v != "" {
		if y, ok := yearFrom(v); ok {
			s.OriginalYear = y
		}
	} else if v := firstFrameText(fs, frameOriginalYear); v != "" {
		if y, ok := yearFrom(v); ok {
			s.OriginalYear = y
		}
	}

	// Unsynchronized lyrics win over synchronized ones.
	if v := firstFrameText(fs, frameLyrics); v != "" {
		s.Lyrics = decode(v)
	} else if v := firstFrameText(fs, frameSyncedLyrics); v != "" {
		s.Lyrics = decode(v)
	}

	if len(fs.Frames(framePicture)) > 0 {
		s.ArtAutomatic = song.EmbeddedCover
	}

	// Find a suitable comment frame, ignoring iTunes normalization data.
	s.Comment = ""
	for _, f := range fs.Frames(frameComment) {
		if f.Description == commentITunesNorm {
			continue
		}
		s.Comment = decode(f.Text)
		break
	}

	// FMPS user-text frames. First frame per description wins.
	fmpsFrames := map[string]string{}
	for _, f := range fs.Frames(frameUserText) {
		if !strings.HasPrefix(f.Description, fmpsPrefix) {
			continue
		}
		if _, ok := fmpsFrames[f.Description]; !ok {
			fmpsFrames[f.Description] = f.Text
		}
	}
	// Plain variants take precedence over the per-user variants, which only
	// apply while the field is still unset.
	if v, ok := fmpsNum(fmpsFrames[fmpsRating], 0); ok {
		s.MergeRating(v)
	}
	if v, ok := fmpsNum(fmpsFrames[fmpsRatingUser], 1); ok {
		s.MergeRating(v)
	}
	if v, ok := fmpsNum(fmpsFrames[fmpsPlayCount], 0); ok {
		song.SetIfUnset(&s.Playcount, int(v))
	}
	if v, ok := fmpsNum(fmpsFrames[fmpsPlayCountUser], 1); ok {
		song.SetIfUnset(&s.Playcount, int(v))
	}
	if v, ok := fmpsNum(fmpsFrames[fmpsScore], 0); ok {
		song.SetIfUnset(&s.Score, int(v*100))
	}

	// POPM comes after the FMPS frames so those take precedence; the legacy
	// values only fill fields still unset.
	if p, ok := fs.Popularimeter(); ok {
		if p.Rating > 0 {
			s.MergeRating(popm.ToRating(p.Rating))
		}
		song.SetIfUnset(&s.Playcount, int(p.Counter))
	}
}

func (id3v2Strategy) write(c container.Container, s *song.Song) {
	fs, ok := c.(container.FrameStore)
	if !ok {
		return
	}
	setTextFrame(fs, frameDiscNumber, numString(s.Disc))
	setTextFrame(fs, frameBPM, floatString(s.BPM))
	setTextFrame(fs, frameComposer, s.Composer)
	setTextFrame(fs, frameGrouping, s.Grouping)
	setTextFrame(fs, framePerformer, s.Performer)
	setLyricsFrame(fs, s.Lyrics)
	// TPE1 is the artist, already set through the basic tag.
	setTextFrame(fs, frameAlbumArtist, s.AlbumArtist)
	setTextFrame(fs, frameCompilation, boolString(s.Compilation))
}

func (id3v2Strategy) writeStatistics(c container.Container, s *song.Song) {
	fs, ok := c.(container.FrameStore)
	if !ok {
		return
	}
	if s.Playcount > 0 {
		fs.SetUserText(fmpsPlayCount, serializeNum(float64(s.Playcount)))

		// Also mirror into the legacy POPM counter, keeping whatever rating
		// and email the frame already carries.
		p, _ := fs.Popularimeter()
		p.Counter = uint32(s.Playcount)
		fs.SetPopularimeter(p)
	}
	if s.Score > 0 {
		fs.SetUserText(fmpsScore, serializeNum(float64(s.Score)/100))
	}
}

func (id3v2Strategy) writeRating(c container.Container, s *song.Song) {
	fs, ok := c.(container.FrameStore)
	if !ok {
		return
	}
	fs.SetUserText(fmpsRating, serializeNum(s.Rating))

	p, _ := fs.Popularimeter()
	p.Rating = popm.FromRating(s.Rating)
	fs.SetPopularimeter(p)
}

// setTextFrame replaces the text payload of a single-valued frame. Existing
// frames are rebuilt from their serialized form first so frame-level flags
// and grouping survive the edit; extra frames of the same identifier are
// re-added untouched.
func setTextFrame(fs container.FrameStore, id, text string) {
	frames := fs.Frames(id)
	fs.RemoveFrames(id)
	if len(frames) == 0 {
		fs.AddTextFrame(id, "", text)
		return
	}
	fs.AddRenderedTextFrame(id, frames[0].Rendered, text)
	for _, f := range frames[1:] {
		fs.AddRenderedFrame(f.Rendered)
	}
}

// setLyricsFrame does the same dance for the unsynchronized-lyrics frame.
func setLyricsFrame(fs container.FrameStore, text string) {
	frames := fs.Frames(frameLyrics)
	fs.RemoveFrames(frameLyrics)
	if len(frames) == 0 {
		fs.AddTextFrame(frameLyrics, lyricsDescription, text)
		return
	}
	fs.AddRenderedTextFrame(frameLyrics, frames[0].Rendered, text)
	for _, f := range frames[1:] {
		fs.AddRenderedFrame(f.Rendered)
	}
}

func firstFrameText(fs container.FrameStore, id string) string {
	frames := fs.Frames(id)
	if len(frames) == 0 {
		return ""
	}
	return frames[0].Text
}
