// Package taglibfile adapts a taglib-opened audio file to the engine's
// container surface. Taglib exposes one unified upper-case property map for
// every format, so the native frame, item and atom keys the engine speaks
// are translated to their property-map spellings here.
//
// Two native capabilities do not survive the property-map round trip: POPM
// frames and frame-level flags. Popularimeter reports absent and rendered
// frame forms are nil, which makes the engine fall back to plain text
// frames.
package taglibfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/sentriz/audiotags"

	"github.com/bilde2910/Clementine/container"
)

var ErrWrite = errors.New("error writing tags")

var extKinds = map[string][]container.Kind{
	".mp3":  {container.KindMPEG},
	".flac": {container.KindFLAC},
	".m4a":  {container.KindMP4},
	".m4b":  {container.KindMP4},
	".mp4":  {container.KindMP4},
	".aac":  {container.KindMPEG},
	".mpc":  {container.KindMPC},
	".ogg":  {container.KindOggVorbis},
	".oga":  {container.KindOggFLAC, container.KindOggVorbis},
	".opus": {container.KindOggOpus},
	".spx":  {container.KindOggSpeex},
	".wma":  {container.KindASF},
	".asf":  {container.KindASF},
	".aiff": {container.KindAIFF},
	".aif":  {container.KindAIFF},
	".wav":  {container.KindWAV},
	".tta":  {container.KindTrueAudio},
	".wv":   {container.KindWavPack},
	".ape":  {container.KindAPE},
}

func CanRead(absPath string) bool {
	_, ok := extKinds[strings.ToLower(filepath.Ext(absPath))]
	return ok
}

type File struct {
	kind container.Kind
	raw  map[string][]string

	file           *audiotags.File
	properties     *audiotags.AudioProperties
	propertiesOnce sync.Once
}

func Open(path string) (*File, error) {
	kinds, ok := extKinds[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("unsupported extension %q", filepath.Ext(path))
	}
	kind := container.Resolve(func(k container.Kind) bool {
		return slices.Contains(kinds, k)
	})

	f, err := audiotags.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	return &File{kind: kind, raw: f.ReadTags(), file: f}, nil
}

func (f *File) Kind() container.Kind { return f.kind }
func (f *File) Tag() container.Tag   { return f }

func (f *File) Properties() (container.Properties, bool) {
	f.propertiesOnce.Do(func() {
		f.properties = f.file.ReadAudioProperties()
	})
	if f.properties == nil {
		return container.Properties{}, false
	}
	return container.Properties{
		LengthMs:   f.properties.LengthMs,
		Bitrate:    f.properties.Bitrate,
		SampleRate: f.properties.Samplerate,
	}, true
}

func (f *File) Save() bool {
	return f.file.WriteTags(f.raw)
}

func (f *File) Close() {
	f.file.Close()
}

func (f *File) Title() string   { return f.firstProp("title") }
func (f *File) Artist() string  { return f.firstProp("artist") }
func (f *File) Album() string   { return f.firstProp("album") }
func (f *File) Genre() string   { return f.firstProp("genre") }
func (f *File) Comment() string { return f.firstProp("comment") }

func (f *File) Year() int {
	y, _ := strconv.Atoi(firstN(f.firstProp("date"), 4))
	return y
}

func (f *File) Track() int {
	t, _, _ := strings.Cut(f.firstProp("tracknumber"), "/")
	n, _ := strconv.Atoi(strings.TrimSpace(t))
	return n
}

func (f *File) SetTitle(v string)   { f.setProp("title", v) }
func (f *File) SetArtist(v string)  { f.setProp("artist", v) }
func (f *File) SetAlbum(v string)   { f.setProp("album", v) }
func (f *File) SetGenre(v string)   { f.setProp("genre", v) }
func (f *File) SetComment(v string) { f.setProp("comment", v) }

func (f *File) SetYear(v int)  { f.setProp("date", zeroEmpty(v)) }
func (f *File) SetTrack(v int) { f.setProp("tracknumber", zeroEmpty(v)) }

func (f *File) Get(key string) []string {
	return f.raw[f.propKey(key)]
}

func (f *File) Set(key, value string, overwrite bool) {
	key = f.propKey(key)
	if overwrite {
		if value == "" {
			delete(f.raw, key)
			return
		}
		f.raw[key] = []string{value}
		return
	}
	if value == "" {
		return
	}
	f.raw[key] = append(f.raw[key], value)
}

func (f *File) Remove(key string) {
	delete(f.raw, f.propKey(key))
}

func (f *File) Contains(key string) bool {
	return len(f.raw[f.propKey(key)]) > 0
}

// frameProps translates the ID3v2 frame identifiers the engine uses to the
// property names taglib maps them to.
var frameProps = map[string]string{
	"TPOS": "DISCNUMBER",
	"TBPM": "BPM",
	"TCOM": "COMPOSER",
	"TIT1": "CONTENTGROUP",
	"TOPE": "ORIGINALARTIST",
	"TPE2": "ALBUMARTIST",
	"TCMP": "COMPILATION",
	"TDOR": "ORIGINALDATE",
	"TORY": "ORIGINALDATE",
	"USLT": "LYRICS",
	"SYLT": "LYRICS",
	"COMM": "COMMENT",
}

// mp4Props translates the handful of MP4 atoms whose property-map names do
// not follow from the atom name itself.
var mp4Props = map[string]string{
	"aART": "ALBUMARTIST",
	"disk": "DISCNUMBER",
	"tmpo": "BPM",
	"©wrt": "COMPOSER",
	"©grp": "GROUPING",
	"©lyr": "LYRICS",
	"cpil": "COMPILATION",
}

func (f *File) propKey(key string) string {
	switch f.kind {
	case container.KindMPEG:
		if p, ok := frameProps[key]; ok {
			return p
		}
	case container.KindMP4:
		if p, ok := mp4Props[key]; ok {
			return p
		}
		// Freeform atoms keep their final name component.
		if i := strings.LastIndex(key, ":"); i >= 0 {
			key = key[i+1:]
		}
	case container.KindASF:
		key = strings.ReplaceAll(key, "/", "_")
	}
	return strings.ToUpper(strings.ReplaceAll(key, " ", ""))
}

func (f *File) Frames(id string) []container.Frame {
	var out []container.Frame
	for _, v := range f.raw[f.propKey(id)] {
		out = append(out, container.Frame{ID: id, Text: v})
	}
	return out
}

func (f *File) RemoveFrames(id string) {
	delete(f.raw, f.propKey(id))
}

func (f *File) AddRenderedFrame(rendered []byte) {}

func (f *File) AddRenderedTextFrame(id string, rendered []byte, text string) {
	f.AddTextFrame(id, "", text)
}

func (f *File) AddTextFrame(id, description, text string) {
	key := f.propKey(id)
	if id == "TXXX" {
		key = f.propKey(description)
	}
	f.raw[key] = append(f.raw[key], text)
}

func (f *File) SetUserText(description, text string) {
	f.raw[f.propKey(description)] = []string{text}
}

func (f *File) Popularimeter() (container.Popularimeter, bool) {
	return container.Popularimeter{}, false
}

func (f *File) SetPopularimeter(p container.Popularimeter) {}

func (f *File) firstProp(key string) string {
	vs := f.raw[f.propKey(key)]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

func (f *File) setProp(key, value string) {
	f.Set(key, value, true)
}

func zeroEmpty(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
