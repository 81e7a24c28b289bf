package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	// a FLAC stream in an Ogg envelope satisfies both; the probe order picks
	// ogg-flac over ogg-vorbis
	got := Resolve(func(k Kind) bool {
		return k == KindOggFLAC || k == KindOggVorbis
	})
	assert.Equal(t, KindOggFLAC, got)

	got = Resolve(func(k Kind) bool { return k == KindWavPack })
	assert.Equal(t, KindWavPack, got)

	got = Resolve(func(Kind) bool { return false })
	assert.Equal(t, KindUnknown, got)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ogg-vorbis", KindOggVorbis.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
