// Package song holds the format-independent metadata record and the merge
// policy strategies use to populate it.
package song

// FileType identifies the container format family a song was read from.
type FileType int

const (
	TypeUnknown FileType = iota
	TypeASF
	TypeFLAC
	TypeMP4
	TypeMPC
	TypeMPEG
	TypeOggFLAC
	TypeOggSpeex
	TypeOggVorbis
	TypeOggOpus
	TypeAIFF
	TypeWAV
	TypeTrueAudio
	TypeWavPack
	TypeAPE
	TypeStream
)

var typeNames = map[FileType]string{
	TypeUnknown:   "unknown",
	TypeASF:       "asf",
	TypeFLAC:      "flac",
	TypeMP4:       "mp4",
	TypeMPC:       "mpc",
	TypeMPEG:      "mpeg",
	TypeOggFLAC:   "ogg-flac",
	TypeOggSpeex:  "ogg-speex",
	TypeOggVorbis: "ogg-vorbis",
	TypeOggOpus:   "ogg-opus",
	TypeAIFF:      "aiff",
	TypeWAV:       "wav",
	TypeTrueAudio: "trueaudio",
	TypeWavPack:   "wavpack",
	TypeAPE:       "ape",
	TypeStream:    "stream",
}

func (t FileType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// EmbeddedCover marks ArtAutomatic when the container carries embedded art.
// Anything else in that field is a filesystem path chosen by the caller.
const EmbeddedCover = "(embedded)"

// Song is the canonical metadata record. One instance per file processed;
// created empty, populated by a read, optionally mutated, consumed by a
// write, never retained across files.
//
// Numeric fields use -1 as the "absent" sentinel rather than an optional
// wrapper, for wire compatibility with the originating schema. Rating is -1
// (unrated) or within [0, 1]. Playcount is >= 0 and Score is 0-100, both
// with 0 meaning unset.
type Song struct {
	BaseFilename string `json:"basefilename"`
	URL          string `json:"url"`
	Filesize     int64  `json:"filesize"`
	Mtime        int64  `json:"mtime"`
	Ctime        int64  `json:"ctime"`

	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	Genre       string `json:"genre"`
	Comment     string `json:"comment"`
	AlbumArtist string `json:"albumartist"`
	Composer    string `json:"composer"`
	Performer   string `json:"performer"`
	Grouping    string `json:"grouping"`
	Lyrics      string `json:"lyrics"`

	Year         int     `json:"year"`
	Track        int     `json:"track"`
	Disc         int     `json:"disc"`
	BPM          float64 `json:"bpm"`
	Bitrate      int     `json:"bitrate"`
	Samplerate   int     `json:"samplerate"`
	Lastplayed   int64   `json:"lastplayed"`
	OriginalYear int     `json:"originalyear"`

	Rating    float64 `json:"rating"`
	Playcount int     `json:"playcount"`
	Score     int     `json:"score"`

	Compilation  bool   `json:"compilation"`
	ArtAutomatic string `json:"art_automatic"`

	LengthNanosec int64 `json:"length_nanosec"`

	Type  FileType `json:"type"`
	Valid bool     `json:"valid"`
}

// New returns an empty record with every numeric sentinel in place.
func New() *Song {
	return &Song{
		Year:          -1,
		Track:         -1,
		Disc:          -1,
		BPM:           -1,
		Bitrate:       -1,
		Samplerate:    -1,
		Lastplayed:    -1,
		OriginalYear:  -1,
		Rating:        -1,
		LengthNanosec: -1,
	}
}

// Unrated reports whether the song carries no rating.
func (s *Song) Unrated() bool { return s.Rating < 0 }

type number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// SetIfUnset assigns candidate to dst only while dst is still unset (<= 0)
// and the candidate is usable (> 0). This is the single merge policy behind
// the cross-format precedence rules: within one read pass the first source
// to produce a value wins, later (lower-priority) sources never overwrite it.
func SetIfUnset[T number](dst *T, candidate T) {
	if *dst <= 0 && candidate > 0 {
		*dst = candidate
	}
}

// MergeRating applies a candidate rating under the same first-writer-wins
// policy, clamping out-of-range values into [0, 1] before storage.
func (s *Song) MergeRating(candidate float64) {
	if candidate > 1 {
		candidate = 1
	}
	SetIfUnset(&s.Rating, candidate)
}
