package tagreader

import (
	"strconv"
	"strings"

	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/song"
)

// mp4Strategy maps the MP4 atom tree, including the iTunes freeform atoms
// carrying the FMPS fields.
type mp4Strategy struct{}

func (mp4Strategy) read(c container.Container, s *song.Song, st *readState) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}

	if v := first(ks.Get(mp4AlbumArtist)); v != "" {
		s.AlbumArtist = decode(v)
	}
	if ks.Contains(mp4Cover) {
		s.ArtAutomatic = song.EmbeddedCover
	}
	if v := first(ks.Get(mp4Disc)); v != "" {
		st.disc = strings.TrimSpace(v)
	}

	if v, ok := fmpsNum(first(ks.Get(mp4Rating)), 0); ok {
		s.MergeRating(v)
	}
	if v, ok := fmpsNum(first(ks.Get(mp4PlayCount)), 0); ok {
		song.SetIfUnset(&s.Playcount, int(v))
	}
	if v, ok := fmpsNum(first(ks.Get(mp4Score)), 0); ok {
		song.SetIfUnset(&s.Score, int(v*100))
	}

	if vs := ks.Get(mp4Composer); len(vs) > 0 {
		s.Composer = decode(strings.Join(vs, ", "))
	}
	if vs := ks.Get(mp4Grouping); len(vs) > 0 {
		s.Grouping = decode(strings.Join(vs, " "))
	}
	if vs := ks.Get(mp4Lyrics); len(vs) > 0 {
		s.Lyrics = decode(strings.Join(vs, " "))
	}

	if v := first(ks.Get(mp4OriginalYear)); v != "" {
		if y, ok := yearFrom(v); ok {
			s.OriginalYear = y
		}
	}
}

func (mp4Strategy) write(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	// disk and tmpo are integer atoms; an unset value is written as zero
	// rather than removed.
	ks.Set(mp4Disc, strconv.Itoa(orZero(s.Disc)), true)
	if s.BPM <= -1 {
		ks.Set(mp4BPM, "0", true)
	} else {
		ks.Set(mp4BPM, strconv.Itoa(int(s.BPM)), true)
	}
	ks.Set(mp4Composer, s.Composer, true)
	ks.Set(mp4Grouping, s.Grouping, true)
	ks.Set(mp4Lyrics, s.Lyrics, true)
	ks.Set(mp4AlbumArtist, s.AlbumArtist, true)
	if s.Compilation {
		ks.Set(mp4Compilation, "1", true)
	} else {
		ks.Set(mp4Compilation, "0", true)
	}
}

func (mp4Strategy) writeStatistics(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	if s.Score > 0 {
		ks.Set(mp4Score, serializeNum(float64(s.Score)/100), true)
	}
	if s.Playcount > 0 {
		ks.Set(mp4PlayCount, serializeNum(float64(s.Playcount)), true)
	}
}

func (mp4Strategy) writeRating(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	ks.Set(mp4Rating, serializeNum(s.Rating), true)
}
