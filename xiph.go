package tagreader

import (
	"strconv"
	"strings"

	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/song"
)

// xiphStrategy maps every family carrying a Xiph/Vorbis comment block: bare
// FLAC and the whole Ogg family (Vorbis, FLAC, Speex, Opus).
type xiphStrategy struct{}

func (xiphStrategy) read(c container.Container, s *song.Song, st *readState) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}

	if v := first(ks.Get(vorbisComposer)); v != "" {
		s.Composer = decode(v)
	}
	if v := first(ks.Get(vorbisPerformer)); v != "" {
		s.Performer = decode(v)
	}
	if v := first(ks.Get(vorbisGrouping)); v != "" {
		s.Grouping = decode(v)
	}

	// The single-word key is the preferred spelling; no cross-family
	// fallback beyond the two Vorbis variants.
	if v := first(ks.Get(vorbisAlbumArtist)); v != "" {
		s.AlbumArtist = decode(v)
	} else if v := first(ks.Get(vorbisAlbumArtistAlt)); v != "" {
		s.AlbumArtist = decode(v)
	}

	if v := first(ks.Get(vorbisOriginalDate)); v != "" {
		if y, ok := yearFrom(v); ok {
			s.OriginalYear = y
		}
	} else if v := first(ks.Get(vorbisOriginalYear)); v != "" {
		if y, ok := yearFrom(v); ok {
			s.OriginalYear = y
		}
	}

	if v := strings.TrimSpace(first(ks.Get(vorbisBPM))); v != "" {
		if bpm, err := strconv.ParseFloat(v, 64); err == nil {
			s.BPM = bpm
		}
	}
	if v := first(ks.Get(vorbisDiscNumber)); v != "" {
		st.disc = strings.TrimSpace(v)
	}
	if v := first(ks.Get(vorbisCompilation)); v != "" {
		st.compilation = strings.TrimSpace(v)
	}

	if ks.Contains(vorbisCoverArt) || ks.Contains(vorbisPictureBlock) {
		s.ArtAutomatic = song.EmbeddedCover
	}
	if pl, ok := c.(container.PictureLister); ok && len(pl.Pictures()) > 0 {
		s.ArtAutomatic = song.EmbeddedCover
	}

	if v, ok := fmpsNum(first(ks.Get(vorbisRating)), 0); ok {
		s.MergeRating(v)
	}
	if v, ok := fmpsNum(first(ks.Get(vorbisPlayCount)), 0); ok {
		song.SetIfUnset(&s.Playcount, int(v))
	}
	if v, ok := fmpsNum(first(ks.Get(vorbisScore)), 0); ok {
		song.SetIfUnset(&s.Score, int(v*100))
	}

	if v := first(ks.Get(vorbisLyrics)); v != "" {
		s.Lyrics = decode(v)
	} else if v := first(ks.Get(vorbisUnsyncedLyrics)); v != "" {
		s.Lyrics = decode(v)
	}
}

func (xiphStrategy) write(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	ks.Set(vorbisComposer, s.Composer, true)
	ks.Set(vorbisPerformer, s.Performer, true)
	ks.Set(vorbisGrouping, s.Grouping, true)
	ks.Set(vorbisBPM, floatString(s.BPM), true)
	ks.Set(vorbisDiscNumber, numString(s.Disc), true)
	ks.Set(vorbisCompilation, boolString(s.Compilation), true)

	// Both spellings are in the wild but the single-word key is preferred;
	// keep the tag coherent by dropping the other one.
	ks.Set(vorbisAlbumArtist, s.AlbumArtist, true)
	ks.Remove(vorbisAlbumArtistAlt)

	ks.Set(vorbisLyrics, s.Lyrics, true)
	ks.Remove(vorbisUnsyncedLyrics)
}

func (xiphStrategy) writeStatistics(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	if s.Playcount > 0 {
		ks.Set(vorbisPlayCount, serializeNum(float64(s.Playcount)), true)
	}
	if s.Score > 0 {
		ks.Set(vorbisScore, serializeNum(float64(s.Score)/100), true)
	}
}

func (xiphStrategy) writeRating(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	ks.Set(vorbisRating, serializeNum(s.Rating), true)
}
