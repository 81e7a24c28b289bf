package tagreader

// Native key tables, one block per container family. These are fixed wire
// identifiers; changing any of them breaks interchange with other players.

// ID3v2 frame identifiers.
const (
	frameDiscNumber   = "TPOS"
	frameBPM          = "TBPM"
	frameComposer     = "TCOM"
	frameGrouping     = "TIT1" // content group
	framePerformer    = "TOPE" // original artist/performer
	frameAlbumArtist  = "TPE2" // non-standard: Apple, Microsoft
	frameCompilation  = "TCMP"
	frameOriginalDate = "TDOR"
	frameOriginalYear = "TORY"
	frameLyrics       = "USLT"
	frameSyncedLyrics = "SYLT"
	framePicture      = "APIC"
	frameComment      = "COMM"
	frameUserText     = "TXXX"
)

// TXXX descriptions for the FMPS extended fields, and the COMM description
// of the iTunes volume-normalization comment we never treat as a semantic
// comment.
const (
	fmpsRating        = "FMPS_Rating"
	fmpsRatingUser    = "FMPS_Rating_User"
	fmpsPlayCount     = "FMPS_PlayCount"
	fmpsPlayCountUser = "FMPS_PlayCount_User"
	fmpsScore         = "FMPS_Rating_Amarok_Score"

	fmpsPrefix = "FMPS_"

	commentITunesNorm = "iTunNORM"

	lyricsDescription = "Clementine editor"
)

// Xiph/Vorbis comment keys.
const (
	vorbisComposer        = "COMPOSER"
	vorbisPerformer       = "PERFORMER"
	vorbisGrouping        = "CONTENT GROUP"
	vorbisAlbumArtist     = "ALBUMARTIST"
	vorbisAlbumArtistAlt  = "ALBUM ARTIST"
	vorbisOriginalDate    = "ORIGINALDATE"
	vorbisOriginalYear    = "ORIGINALYEAR"
	vorbisBPM             = "BPM"
	vorbisDiscNumber      = "DISCNUMBER"
	vorbisCompilation     = "COMPILATION"
	vorbisCoverArt        = "COVERART"
	vorbisPictureBlock    = "METADATA_BLOCK_PICTURE"
	vorbisRating          = "FMPS_RATING"
	vorbisPlayCount       = "FMPS_PLAYCOUNT"
	vorbisScore           = "FMPS_RATING_AMAROK_SCORE"
	vorbisLyrics          = "LYRICS"
	vorbisUnsyncedLyrics  = "UNSYNCEDLYRICS"
)

// APE item keys. APE keys are case-insensitive; stores normalize case.
const (
	apeAlbumArtist = "ALBUM ARTIST"
	apeCoverArt    = "COVER ART (FRONT)"
	apeCompilation = "COMPILATION"
	apeDisc        = "DISC"
	apeRating      = "FMPS_RATING"
	apePlayCount   = "FMPS_PLAYCOUNT"
	apeScore       = "FMPS_RATING_AMAROK_SCORE"
	apeBPM         = "BPM"
	apePerformer   = "PERFORMER"
	apeComposer    = "COMPOSER"
	apeGrouping    = "GROUPING"
	apeLyrics      = "LYRICS"
)

// MP4 atom keys.
const (
	mp4AlbumArtist  = "aART"
	mp4Cover        = "covr"
	mp4Disc         = "disk"
	mp4Rating       = "----:com.apple.iTunes:FMPS_Rating"
	mp4PlayCount    = "----:com.apple.iTunes:FMPS_Playcount"
	mp4Score        = "----:com.apple.iTunes:FMPS_Rating_Amarok_Score"
	mp4BPM          = "tmpo"
	mp4Composer     = "©wrt"
	mp4Grouping     = "©grp"
	mp4Lyrics       = "©lyr"
	mp4OriginalYear = "----:com.apple.iTunes:ORIGINAL YEAR"
	mp4Compilation  = "cpil"
)

// ASF attribute keys.
const (
	asfRating       = "FMPS/Rating"
	asfPlayCount    = "FMPS/Playcount"
	asfScore        = "FMPS/Rating_Amarok_Score"
	asfOriginalDate = "WM/OriginalReleaseTime"
	asfOriginalYear = "WM/OriginalReleaseYear"
)
