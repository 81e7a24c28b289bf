package tagreader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bilde2910/Clementine/container"
	"github.com/bilde2910/Clementine/container/memtag"
)

func TestEmbeddedArt(t *testing.T) {
	t.Parallel()

	t.Run("front cover wins", func(t *testing.T) {
		f := memtag.New(container.KindFLAC)
		f.AddPicture(container.Picture{Type: container.PictureOther, Data: []byte("back")})
		f.AddPicture(container.Picture{Type: container.PictureFrontCover, Data: []byte("front")})
		assert.Equal(t, []byte("front"), EmbeddedArt(f))
	})

	t.Run("first picture fallback", func(t *testing.T) {
		f := memtag.New(container.KindFLAC)
		f.AddPicture(container.Picture{Type: container.PictureOther, Data: []byte("one")})
		f.AddPicture(container.Picture{Type: container.PictureOther, Data: []byte("two")})
		assert.Equal(t, []byte("one"), EmbeddedArt(f))
	})

	t.Run("no pictures", func(t *testing.T) {
		assert.Nil(t, EmbeddedArt(memtag.New(container.KindFLAC)))
	})

	t.Run("nil container", func(t *testing.T) {
		assert.Nil(t, EmbeddedArt(nil))
	})
}
