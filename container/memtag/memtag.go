// Package memtag provides an in-memory container.Container. It backs the
// engine tests and lets callers exercise read and write paths without a real
// audio file on disk.
package memtag

import (
	"bytes"
	"strings"

	"github.com/bilde2910/Clementine/container"
)

// fieldSep joins the pieces of a fake rendered frame. The rendered form is
// id, description, text and flags in that order; rebuilding a frame from it
// keeps the flags the same way a real serialized frame would.
const fieldSep = "\x1f"

// RenderFrame builds the rendered form of a frame carrying the given flags.
func RenderFrame(id, description, text, flags string) []byte {
	return []byte(strings.Join([]string{id, description, text, flags}, fieldSep))
}

// FrameFlags extracts the flags from a rendered frame, empty when the frame
// carries none.
func FrameFlags(rendered []byte) string {
	parts := strings.Split(string(rendered), fieldSep)
	if len(parts) != 4 {
		return ""
	}
	return parts[3]
}

// File is one in-memory tag tree. The zero value is not usable; construct
// with New.
type File struct {
	kind container.Kind

	title, artist, album, genre, comment string
	year, track                          int

	items    map[string][]string
	frames   []container.Frame
	popm     *container.Popularimeter
	pics     []container.Picture
	props    *container.Properties
	saves    int
	failSave bool
}

func New(kind container.Kind) *File {
	return &File{kind: kind, items: map[string][]string{}}
}

func (f *File) Kind() container.Kind { return f.kind }
func (f *File) Tag() container.Tag   { return f }
func (f *File) Saves() int           { return f.saves }
func (f *File) FailSaves(fail bool)  { f.failSave = fail }

func (f *File) Save() bool {
	if f.failSave {
		return false
	}
	f.saves++
	return true
}

func (f *File) Properties() (container.Properties, bool) {
	if f.props == nil {
		return container.Properties{}, false
	}
	return *f.props, true
}

func (f *File) SetProperties(p container.Properties) { f.props = &p }

func (f *File) Title() string   { return f.title }
func (f *File) Artist() string  { return f.artist }
func (f *File) Album() string   { return f.album }
func (f *File) Genre() string   { return f.genre }
func (f *File) Comment() string { return f.comment }
func (f *File) Year() int       { return f.year }
func (f *File) Track() int      { return f.track }

func (f *File) SetTitle(v string)   { f.title = v }
func (f *File) SetArtist(v string)  { f.artist = v }
func (f *File) SetAlbum(v string)   { f.album = v }
func (f *File) SetGenre(v string)   { f.genre = v }
func (f *File) SetComment(v string) { f.comment = v }
func (f *File) SetYear(v int)       { f.year = v }
func (f *File) SetTrack(v int)      { f.track = v }

// normKey folds item keys for the APE family, whose item keys are
// case-insensitive in the wild.
func (f *File) normKey(key string) string {
	switch f.kind {
	case container.KindAPE, container.KindMPC, container.KindWavPack:
		return strings.ToUpper(key)
	}
	return key
}

func (f *File) Get(key string) []string {
	return f.items[f.normKey(key)]
}

func (f *File) Set(key, value string, overwrite bool) {
	key = f.normKey(key)
	if overwrite {
		if value == "" {
			delete(f.items, key)
			return
		}
		f.items[key] = []string{value}
		return
	}
	if value == "" {
		return
	}
	f.items[key] = append(f.items[key], value)
}

func (f *File) Remove(key string) {
	delete(f.items, f.normKey(key))
}

func (f *File) Contains(key string) bool {
	return len(f.items[f.normKey(key)]) > 0
}

func (f *File) Pictures() []container.Picture { return f.pics }

func (f *File) AddPicture(p container.Picture) { f.pics = append(f.pics, p) }

func (f *File) Frames(id string) []container.Frame {
	var out []container.Frame
	for _, fr := range f.frames {
		if fr.ID == id {
			out = append(out, fr)
		}
	}
	return out
}

func (f *File) RemoveFrames(id string) {
	kept := f.frames[:0]
	for _, fr := range f.frames {
		if fr.ID != id {
			kept = append(kept, fr)
		}
	}
	f.frames = kept
}

func (f *File) AddRenderedFrame(rendered []byte) {
	fr, ok := parseRendered(rendered)
	if !ok {
		return
	}
	f.frames = append(f.frames, fr)
}

func (f *File) AddRenderedTextFrame(id string, rendered []byte, text string) {
	if rendered == nil {
		f.AddTextFrame(id, "", text)
		return
	}
	fr, ok := parseRendered(rendered)
	if !ok {
		f.AddTextFrame(id, "", text)
		return
	}
	fr.Text = text
	fr.Rendered = RenderFrame(fr.ID, fr.Description, text, FrameFlags(rendered))
	f.frames = append(f.frames, fr)
}

func (f *File) AddTextFrame(id, description, text string) {
	f.frames = append(f.frames, container.Frame{
		ID:          id,
		Description: description,
		Text:        text,
		Rendered:    RenderFrame(id, description, text, ""),
	})
}

func (f *File) SetUserText(description, text string) {
	for i, fr := range f.frames {
		if fr.ID == "TXXX" && fr.Description == description {
			f.frames[i].Text = text
			f.frames[i].Rendered = RenderFrame(fr.ID, description, text, FrameFlags(fr.Rendered))
			return
		}
	}
	f.AddTextFrame("TXXX", description, text)
}

func (f *File) Popularimeter() (container.Popularimeter, bool) {
	if f.popm == nil {
		return container.Popularimeter{}, false
	}
	return *f.popm, true
}

func (f *File) SetPopularimeter(p container.Popularimeter) { f.popm = &p }

func parseRendered(rendered []byte) (container.Frame, bool) {
	parts := bytes.Split(rendered, []byte(fieldSep))
	if len(parts) != 4 {
		return container.Frame{}, false
	}
	return container.Frame{
		ID:          string(parts[0]),
		Description: string(parts[1]),
		Text:        string(parts[2]),
		Rendered:    append([]byte(nil), rendered...),
	}, true
}
