package tagreader

import (
	"strconv"
	"strings"

	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/song"
)

// apeStrategy maps APE items. It serves Monkey's Audio, Musepack and
// WavPack, which all carry an APE tag.
type apeStrategy struct{}

func (apeStrategy) read(c container.Container, s *song.Song, st *readState) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}

	if v := first(ks.Get(apeAlbumArtist)); v != "" {
		s.AlbumArtist = decode(v)
	}
	if ks.Contains(apeCoverArt) {
		s.ArtAutomatic = song.EmbeddedCover
	}
	if v := first(ks.Get(apeCompilation)); v != "" {
		st.compilation = strings.TrimSpace(v)
	}
	if v := first(ks.Get(apeDisc)); v != "" {
		st.disc = strings.TrimSpace(v)
	}
	if v := first(ks.Get(apeBPM)); v != "" {
		if bpm, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			s.BPM = bpm
		}
	}
	if v := first(ks.Get(apeComposer)); v != "" {
		s.Composer = decode(v)
	}
	if v := first(ks.Get(apePerformer)); v != "" {
		s.Performer = decode(v)
	}
	if v := first(ks.Get(apeGrouping)); v != "" {
		s.Grouping = decode(v)
	}

	if v, ok := fmpsNum(first(ks.Get(apeRating)), 0); ok {
		s.MergeRating(v)
	}
	if v, ok := fmpsNum(first(ks.Get(apePlayCount)), 0); ok {
		song.SetIfUnset(&s.Playcount, int(v))
	}
	if v, ok := fmpsNum(first(ks.Get(apeScore)), 0); ok {
		song.SetIfUnset(&s.Score, int(v*100))
	}

	if v := first(ks.Get(apeLyrics)); v != "" {
		s.Lyrics = decode(v)
	}
}

func (apeStrategy) write(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	ks.Set(apeAlbumArtist, s.AlbumArtist, true)
	ks.Set(apeDisc, numString(s.Disc), true)
	ks.Set(apeBPM, floatString(s.BPM), true)
	ks.Set(apeCompilation, boolString(s.Compilation), true)
	ks.Set(apeComposer, s.Composer, true)
	ks.Set(apePerformer, s.Performer, true)
	ks.Set(apeGrouping, s.Grouping, true)
	ks.Set(apeLyrics, s.Lyrics, true)
}

func (apeStrategy) writeStatistics(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	if s.Playcount > 0 {
		ks.Set(apePlayCount, serializeNum(float64(s.Playcount)), true)
	}
	if s.Score > 0 {
		ks.Set(apeScore, serializeNum(float64(s.Score)/100), true)
	}
}

func (apeStrategy) writeRating(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	ks.Set(apeRating, serializeNum(s.Rating), true)
}
