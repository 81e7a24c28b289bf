package tagreader

import (
	"github.com/bilde2910/Clementine/container"
)

// EmbeddedArt returns the cover image carried inside the container, or nil
// when the container holds no pictures or cannot list them.
func EmbeddedArt(c container.Container) []byte {
	if c == nil {
		return nil
	}
	pl, ok := c.(container.PictureLister)
	if !ok {
		return nil
	}
	pic, ok := ChooseEmbeddedArt(pl.Pictures())
	if !ok {
		return nil
	}
	return pic.Data
}

// ChooseEmbeddedArt picks the picture to surface as the cover. A front cover
// wins over anything else; otherwise the first picture stands in.
func ChooseEmbeddedArt(pics []container.Picture) (container.Picture, bool) {
	if len(pics) == 0 {
		return container.Picture{}, false
	}
	for _, p := range pics {
		if p.Type == container.PictureFrontCover {
			return p, true
		}
	}
	return pics[0], true
}
