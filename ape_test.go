package tagreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/container/memtag"
	"github.com/bilde2910/Clementine/song"
)

func TestAPERead(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindAPE)
	f.Set("ALBUM ARTIST", "an album artist", true)
	f.Set("COVER ART (FRONT)", "image bytes", true)
	f.Set("DISC", "3/4", true)
	f.Set("BPM", "120.5", true)
	f.Set("COMPILATION", "1", true)
	f.Set("COMPOSER", "a composer", true)
	f.Set("PERFORMER", "a performer", true)
	f.Set("LYRICS", "words", true)
	f.Set("FMPS_RATING", "0.4", true)
	f.Set("FMPS_PLAYCOUNT", "2", true)

	s := Read("a.ape", f)

	assert.Equal(t, "an album artist", s.AlbumArtist)
	assert.Equal(t, song.EmbeddedCover, s.ArtAutomatic)
	assert.Equal(t, 3, s.Disc)
	assert.Equal(t, 120.5, s.BPM)
	assert.True(t, s.Compilation)
	assert.Equal(t, "a composer", s.Composer)
	assert.Equal(t, "a performer", s.Performer)
	assert.Equal(t, "words", s.Lyrics)
	assert.Equal(t, 0.4, s.Rating)
	assert.Equal(t, 2, s.Playcount)
	assert.Equal(t, song.TypeAPE, s.Type)
}

// Item keys are case-insensitive in the wild; mixed-case tags still map.
func TestAPEKeyCase(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindMPC)
	f.Set("Album Artist", "an album artist", true)
	f.Set("Composer", "a composer", true)

	s := Read("a.mpc", f)
	assert.Equal(t, "an album artist", s.AlbumArtist)
	assert.Equal(t, "a composer", s.Composer)
	assert.Equal(t, song.TypeMPC, s.Type)
}

func TestAPEWrite(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindWavPack)
	s := song.New()
	s.AlbumArtist = "an album artist"
	s.Disc = 2
	s.BPM = 98
	s.Compilation = true
	s.Composer = "a composer"
	require.True(t, Save(f, s))

	assert.Equal(t, []string{"an album artist"}, f.Get("ALBUM ARTIST"))
	assert.Equal(t, []string{"2"}, f.Get("DISC"))
	assert.Equal(t, []string{"98"}, f.Get("BPM"))
	assert.Equal(t, []string{"1"}, f.Get("COMPILATION"))
	assert.Equal(t, []string{"a composer"}, f.Get("COMPOSER"))
	assert.False(t, f.Contains("PERFORMER"), "unset fields removed")
}

func TestAPEWriteRatingAndStatistics(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindAPE)
	s := song.New()
	s.Rating = 0.6
	require.True(t, SaveRating(f, s))
	assert.Equal(t, []string{"0.6"}, f.Get("FMPS_RATING"))

	s.Playcount = 13
	require.True(t, SaveStatistics(f, s))
	assert.Equal(t, []string{"13"}, f.Get("FMPS_PLAYCOUNT"))
	assert.False(t, f.Contains("FMPS_RATING_AMAROK_SCORE"), "zero score not written")
}
