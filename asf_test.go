package tagreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/container/memtag"
	"github.com/bilde2910/Clementine/song"
)

func TestASFRead(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindASF)
	f.Set("FMPS/Rating", "0.8", true)
	f.Set("FMPS/Playcount", "6", true)
	f.Set("FMPS/Rating_Amarok_Score", "0.25", true)
	f.Set("WM/OriginalReleaseTime", "1971-11-02", true)

	s := Read("a.wma", f)
	assert.Equal(t, 0.8, s.Rating)
	assert.Equal(t, 6, s.Playcount)
	assert.Equal(t, 25, s.Score)
	assert.Equal(t, 1971, s.OriginalYear)
	assert.Equal(t, song.TypeASF, s.Type)
}

func TestASFOriginalYearFallback(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindASF)
	f.Set("WM/OriginalReleaseYear", "1984", true)
	assert.Equal(t, 1984, Read("a.wma", f).OriginalYear)
}

// ASF maps no extended fields during a full save; only the basic tag and
// the dedicated statistics and rating attributes ever change.
func TestASFWrite(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindASF)
	f.Set("FMPS/Rating", "0.2", true)

	s := song.New()
	s.Title = "a title"
	s.AlbumArtist = "ignored"
	require.True(t, Save(f, s))

	assert.Equal(t, "a title", f.Title())
	assert.Equal(t, []string{"0.2"}, f.Get("FMPS/Rating"))
}

func TestASFWriteRatingAndStatistics(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindASF)
	s := song.New()
	s.Rating = 1
	require.True(t, SaveRating(f, s))
	assert.Equal(t, []string{"1"}, f.Get("FMPS/Rating"))

	s.Playcount = 3
	s.Score = 40
	require.True(t, SaveStatistics(f, s))
	assert.Equal(t, []string{"3"}, f.Get("FMPS/Playcount"))
	assert.Equal(t, []string{"0.4"}, f.Get("FMPS/Rating_Amarok_Score"))
}
