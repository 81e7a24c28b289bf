package song

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSentinels(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Equal(t, -1, s.Year)
	assert.Equal(t, -1, s.Track)
	assert.Equal(t, -1, s.Disc)
	assert.Equal(t, float64(-1), s.BPM)
	assert.Equal(t, -1, s.Bitrate)
	assert.Equal(t, -1, s.Samplerate)
	assert.Equal(t, int64(-1), s.Lastplayed)
	assert.Equal(t, -1, s.OriginalYear)
	assert.Equal(t, int64(-1), s.LengthNanosec)
	assert.True(t, s.Unrated())
	assert.False(t, s.Valid)
}

func TestSetIfUnset(t *testing.T) {
	t.Parallel()

	v := -1
	SetIfUnset(&v, 5)
	assert.Equal(t, 5, v)

	SetIfUnset(&v, 9)
	assert.Equal(t, 5, v, "first writer wins")

	v = 0
	SetIfUnset(&v, 3)
	assert.Equal(t, 3, v, "zero counts as unset")

	v = 7
	SetIfUnset(&v, 0)
	assert.Equal(t, 7, v, "zero candidates never apply")

	var f float64 = -1
	SetIfUnset(&f, 0.5)
	assert.Equal(t, 0.5, f)
}

func TestMergeRating(t *testing.T) {
	t.Parallel()

	s := New()
	s.MergeRating(0.8)
	assert.Equal(t, 0.8, s.Rating)

	s.MergeRating(0.4)
	assert.Equal(t, 0.8, s.Rating, "first writer wins")

	s = New()
	s.MergeRating(4.2)
	assert.Equal(t, 1.0, s.Rating, "clamped into range")
}
