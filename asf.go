package tagreader

import (
	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/song"
)

// asfStrategy maps Windows Media extended content description attributes.
// Only the statistics attributes and the original release date have a home
// here; the remaining extended fields have no ASF mapping.
type asfStrategy struct{}

func (asfStrategy) read(c container.Container, s *song.Song, st *readState) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}

	if v, ok := fmpsNum(first(ks.Get(asfRating)), 0); ok {
		s.MergeRating(v)
	}
	if v, ok := fmpsNum(first(ks.Get(asfPlayCount)), 0); ok {
		song.SetIfUnset(&s.Playcount, int(v))
	}
	if v, ok := fmpsNum(first(ks.Get(asfScore)), 0); ok {
		song.SetIfUnset(&s.Score, int(v*100))
	}

	date := first(ks.Get(asfOriginalDate))
	if date == "" {
		date = first(ks.Get(asfOriginalYear))
	}
	if date != "" {
		if y, ok := yearFrom(date); ok {
			s.OriginalYear = y
		}
	}
}

func (asfStrategy) write(c container.Container, s *song.Song) {}

func (asfStrategy) writeStatistics(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	if s.Playcount > 0 {
		ks.Set(asfPlayCount, serializeNum(float64(s.Playcount)), true)
	}
	if s.Score > 0 {
		ks.Set(asfScore, serializeNum(float64(s.Score)/100), true)
	}
}

func (asfStrategy) writeRating(c container.Container, s *song.Song) {
	ks, ok := c.(container.KeyedStore)
	if !ok {
		return
	}
	ks.Set(asfRating, serializeNum(s.Rating), true)
}
