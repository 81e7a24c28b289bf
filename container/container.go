// Package container defines the capability surface the tag engine expects
// from an opened audio file's native tag tree. Implementations own the file
// and its frame/item/atom objects; the engine only ever reads values or
// hands new ones over, it never retains references into the container.
package container

// Kind is the closed set of container format families the engine can map.
type Kind int

const (
	KindUnknown Kind = iota
	KindASF
	KindFLAC
	KindMP4
	KindMPC
	KindMPEG
	KindOggFLAC
	KindOggSpeex
	KindOggVorbis
	KindOggOpus
	KindAIFF
	KindWAV
	KindTrueAudio
	KindWavPack
	KindAPE
)

var kindNames = map[Kind]string{
	KindUnknown:   "unknown",
	KindASF:       "asf",
	KindFLAC:      "flac",
	KindMP4:       "mp4",
	KindMPC:       "mpc",
	KindMPEG:      "mpeg",
	KindOggFLAC:   "ogg-flac",
	KindOggSpeex:  "ogg-speex",
	KindOggVorbis: "ogg-vorbis",
	KindOggOpus:   "ogg-opus",
	KindAIFF:      "aiff",
	KindWAV:       "wav",
	KindTrueAudio: "trueaudio",
	KindWavPack:   "wavpack",
	KindAPE:       "ape",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// probeOrder is the fixed priority used to pick a family when a container
// could structurally satisfy more than one, eg. a FLAC stream inside an Ogg
// envelope, or ID3v2 inside RIFF. First match wins.
var probeOrder = []Kind{
	KindASF,
	KindFLAC,
	KindMP4,
	KindMPC,
	KindMPEG,
	KindOggFLAC,
	KindOggSpeex,
	KindOggVorbis,
	KindOggOpus,
	KindAIFF,
	KindWAV,
	KindTrueAudio,
	KindWavPack,
	KindAPE,
}

// Resolve walks the probe order and returns the first kind matches accepts,
// or KindUnknown.
func Resolve(matches func(Kind) bool) Kind {
	for _, k := range probeOrder {
		if matches(k) {
			return k
		}
	}
	return KindUnknown
}

// Properties are the audio properties extracted by the container's parser.
type Properties struct {
	LengthMs   int
	Bitrate    int
	SampleRate int
}

// Tag is the basic, format-independent tag surface every family provides.
type Tag interface {
	Title() string
	Artist() string
	Album() string
	Genre() string
	Comment() string
	Year() int
	Track() int

	SetTitle(v string)
	SetArtist(v string)
	SetAlbum(v string)
	SetGenre(v string)
	SetComment(v string)
	SetYear(v int)
	SetTrack(v int)
}

// Container wraps one open file's tag tree. Its lifecycle is owned by the
// caller and must outlive any engine call using it.
type Container interface {
	Kind() Kind
	// Tag returns the basic tag, or nil when the file carries none.
	Tag() Tag
	// Properties reports audio properties when the parser extracted any.
	Properties() (Properties, bool)
	// Save persists pending changes. A false return means the container
	// refused to persist; callers cannot distinguish partial from no write.
	Save() bool
}

// KeyedStore is the shared shape of Vorbis field lists, APE item maps, MP4
// atom trees and ASF attribute maps: ordered value lists under string keys.
// Set with overwrite replaces the whole list; setting an empty value with
// overwrite removes the key entirely (taglib addField/addValue semantics),
// so absent stays absent instead of becoming an empty entry.
type KeyedStore interface {
	Get(key string) []string
	Set(key, value string, overwrite bool)
	Remove(key string)
	Contains(key string) bool
}

// PictureType follows the ID3v2 APIC picture type registry; only the values
// the engine cares about are named.
type PictureType int

const (
	PictureOther      PictureType = 0
	PictureFrontCover PictureType = 3
)

// Picture is one embedded image, already extracted by the container.
type Picture struct {
	Type PictureType
	Data []byte
}

// PictureLister exposes the container's attached pictures in list order.
type PictureLister interface {
	Pictures() []Picture
}

// Frame is one ID3v2 frame. Rendered holds the frame's full serialized form
// including frame-level flags and grouping, so a frame can be rebuilt
// without losing them.
type Frame struct {
	ID          string
	Text        string
	Description string
	Rendered    []byte
}

// Popularimeter is the POPM frame payload.
type Popularimeter struct {
	Email   string
	Rating  uint8
	Counter uint32
}

// FrameStore is the ID3v2 capability. Adding a frame transfers ownership to
// the container.
type FrameStore interface {
	// Frames returns all frames with the given identifier, in tag order.
	Frames(id string) []Frame
	RemoveFrames(id string)
	// AddRenderedFrame reconstructs a frame from its serialized form and
	// adds it untouched.
	AddRenderedFrame(rendered []byte)
	// AddRenderedTextFrame reconstructs a frame from its serialized form,
	// keeping flags and grouping, then replaces its text payload. A nil
	// rendered form behaves like AddTextFrame.
	AddRenderedTextFrame(id string, rendered []byte, text string)
	// AddTextFrame adds a bare new text frame. The description applies to
	// frames that carry one (TXXX, COMM, USLT) and is ignored otherwise.
	AddTextFrame(id, description, text string)
	// SetUserText replaces or creates the TXXX frame with the given
	// description.
	SetUserText(description, text string)
	Popularimeter() (Popularimeter, bool)
	SetPopularimeter(p Popularimeter)
}
