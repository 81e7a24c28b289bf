package tagreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/container/memtag"
	"github.com/bilde2910/Clementine/song"
)

func TestXiphRead(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindOggVorbis)
	f.Set("COMPOSER", "Komeda", true)
	f.Set("PERFORMER", "a performer", true)
	f.Set("CONTENT GROUP", "a grouping", true)
	f.Set("BPM", "98", true)
	f.Set("DISCNUMBER", "1/2", true)
	f.Set("LYRICS", "words", true)

	s := Read("a.ogg", f)

	assert.Equal(t, "Komeda", s.Composer)
	assert.Equal(t, "a performer", s.Performer)
	assert.Equal(t, "a grouping", s.Grouping)
	assert.Equal(t, float64(98), s.BPM)
	assert.Equal(t, 1, s.Disc)
	assert.Equal(t, "words", s.Lyrics)
	assert.Equal(t, song.TypeOggVorbis, s.Type)
}

func TestXiphAlbumArtist(t *testing.T) {
	t.Parallel()

	t.Run("single-word key preferred", func(t *testing.T) {
		f := memtag.New(container.KindFLAC)
		f.Set("ALBUMARTIST", "primary", true)
		f.Set("ALBUM ARTIST", "legacy", true)
		assert.Equal(t, "primary", Read("a.flac", f).AlbumArtist)
	})

	t.Run("legacy spelling fallback", func(t *testing.T) {
		f := memtag.New(container.KindFLAC)
		f.Set("ALBUM ARTIST", "legacy", true)
		assert.Equal(t, "legacy", Read("a.flac", f).AlbumArtist)
	})
}

func TestXiphOriginalYear(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindFLAC)
	f.Set("ORIGINALDATE", "1971-11-02", true)
	f.Set("ORIGINALYEAR", "1999", true)
	assert.Equal(t, 1971, Read("a.flac", f).OriginalYear, "full date preferred")
}

func TestXiphArt(t *testing.T) {
	t.Parallel()

	t.Run("legacy coverart key", func(t *testing.T) {
		f := memtag.New(container.KindOggVorbis)
		f.Set("COVERART", "base64...", true)
		assert.Equal(t, song.EmbeddedCover, Read("a.ogg", f).ArtAutomatic)
	})

	t.Run("picture block", func(t *testing.T) {
		f := memtag.New(container.KindOggVorbis)
		f.Set("METADATA_BLOCK_PICTURE", "base64...", true)
		assert.Equal(t, song.EmbeddedCover, Read("a.ogg", f).ArtAutomatic)
	})

	t.Run("picture list", func(t *testing.T) {
		f := memtag.New(container.KindFLAC)
		f.AddPicture(container.Picture{Type: container.PictureFrontCover, Data: []byte{1}})
		assert.Equal(t, song.EmbeddedCover, Read("a.flac", f).ArtAutomatic)
	})

	t.Run("no art", func(t *testing.T) {
		f := memtag.New(container.KindFLAC)
		assert.Empty(t, Read("a.flac", f).ArtAutomatic)
	})
}

func TestXiphFMPS(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindFLAC)
	f.Set("FMPS_RATING", "0.6", true)
	f.Set("FMPS_PLAYCOUNT", "21", true)
	f.Set("FMPS_RATING_AMAROK_SCORE", "0.75", true)

	s := Read("a.flac", f)
	assert.Equal(t, 0.6, s.Rating)
	assert.Equal(t, 21, s.Playcount)
	assert.Equal(t, 75, s.Score)
}

func TestXiphWrite(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindFLAC)
	f.Set("ALBUM ARTIST", "legacy", true)
	f.Set("UNSYNCEDLYRICS", "old words", true)

	s := song.New()
	s.AlbumArtist = "an album artist"
	s.Lyrics = "new words"
	s.Disc = 2
	require.True(t, Save(f, s))

	assert.Equal(t, []string{"an album artist"}, f.Get("ALBUMARTIST"))
	assert.False(t, f.Contains("ALBUM ARTIST"), "legacy spelling dropped on save")
	assert.Equal(t, []string{"new words"}, f.Get("LYRICS"))
	assert.False(t, f.Contains("UNSYNCEDLYRICS"))
	assert.Equal(t, []string{"2"}, f.Get("DISCNUMBER"))
}

func TestXiphWriteUnsetRemoves(t *testing.T) {
	t.Parallel()

	f := memtag.New(container.KindFLAC)
	f.Set("COMPOSER", "someone", true)
	f.Set("BPM", "98", true)

	require.True(t, Save(f, song.New()))

	assert.False(t, f.Contains("COMPOSER"), "empty field removes the key")
	assert.False(t, f.Contains("BPM"))
}
