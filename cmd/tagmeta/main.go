package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
	"go.senan.xyz/flagconf"
	"go.senan.xyz/natcmp"
	"go.senan.xyz/table/table"

	tagreader "github.com/bilde2910/Clementine"
	"github.com/bilde2910/Clementine/cmd/internal/logging"
	"github.com/bilde2910/Clementine/container/taglibfile"
	"github.com/bilde2910/Clementine/song"
)

var dmp = diffmatchpatch.New()

func main() {
	exit := logging.Logging()
	defer exit()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage:\n")
		fmt.Fprintf(os.Stderr, "  $ %s read   [-json]                     -- [PATH]...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  $ %s write  [-dry-run] [-FIELD VALUE]... -- [PATH]...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  $ %s rating [-dry-run] -rating RATING   -- [PATH]...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  $ %s stats  [-dry-run] [-playcount N] [-score N] -- [PATH]...\n", os.Args[0])
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "example:\n")
		fmt.Fprintf(os.Stderr, "  $ %s read -- a.flac b.flac c.flac\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  $ %s read -json -- a.mp3\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  $ %s write -album \"album name\" -disc 2 -- x.flac\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  $ %s rating -rating 0.8 -- a.mp3\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  $ %s stats -playcount 5 -score 82 -- dir/\n", os.Args[0])
	}

	configPath := flag.String("config-path", defaultConfigPath(), "Path to config file")
	printVersion := flag.Bool("version", false, "Print the version and exit")

	flag.Parse()
	flagconf.ReadEnvPrefix = func(_ *flag.FlagSet) string { return tagreader.Name }
	flagconf.ParseEnv()
	flagconf.ParseConfig(*configPath)

	if *printVersion {
		fmt.Printf("%s %s\n", flag.CommandLine.Name(), tagreader.Version)
		return
	}

	command := flag.Arg(0)
	switch command {
	case "read", "write", "rating", "stats":
	default:
		flag.Usage()
		os.Exit(1)
	}

	subflag := flag.NewFlagSet(command, flag.ExitOnError)
	dryRun := subflag.Bool("dry-run", false, "show changes without writing them")
	asJSON := subflag.Bool("json", false, "print records as JSON")

	var fields fieldFlags
	fields.register(subflag)

	ratingArg := subflag.Float64("rating", -1, "rating in [0, 1], or -1 to leave unrated")
	playcountArg := subflag.Int("playcount", 0, "play count")
	scoreArg := subflag.Int("score", 0, "score, 0-100")

	subflag.Parse(flag.Args()[1:])

	argPaths := subflag.Args()
	if i := slices.Index(argPaths, "--"); i >= 0 {
		argPaths = argPaths[i+1:]
	}
	if len(argPaths) == 0 {
		fmt.Fprintf(os.Stderr, "no paths provided\n")
		fmt.Fprintln(os.Stderr)
		flag.Usage()
		os.Exit(1)
	}

	var err error
	switch command {
	case "read":
		err = iterFiles(argPaths, func(p string) error {
			return read(p, *asJSON)
		})
	case "write":
		fields.markSet(subflag)
		err = iterFiles(argPaths, func(p string) error {
			return write(p, &fields, *dryRun)
		})
	case "rating":
		err = iterFiles(argPaths, func(p string) error {
			return rate(p, *ratingArg, *dryRun)
		})
	case "stats":
		err = iterFiles(argPaths, func(p string) error {
			return stats(p, *playcountArg, *scoreArg, *dryRun)
		})
	}
	if err != nil {
		slog.Error("processing files", "err", err)
	}
}

func defaultConfigPath() string {
	userConfig, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(userConfig, tagreader.Name, "config")
}

func read(path string, asJSON bool) error {
	f, err := taglibfile.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s := tagreader.Read(path, f)

	if asJSON {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	t := table.NewStringWriter()
	for _, r := range recordRows(s) {
		fmt.Fprintf(t, "%s\t%s\t%s\n", path, r[0], r[1])
	}
	fmt.Print(t.String())
	return nil
}

func write(path string, fields *fieldFlags, dryRun bool) error {
	f, err := taglibfile.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s := tagreader.Read(path, f)
	before := *s
	fields.apply(s)

	if dryRun {
		printDiff(path, &before, s)
		return nil
	}
	if !tagreader.Save(f, s) {
		return fmt.Errorf("save %s: %w", path, taglibfile.ErrWrite)
	}
	return nil
}

func rate(path string, rating float64, dryRun bool) error {
	f, err := taglibfile.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s := tagreader.Read(path, f)
	before := *s
	s.Rating = rating

	if dryRun {
		printDiff(path, &before, s)
		return nil
	}
	if !tagreader.SaveRating(f, s) {
		return fmt.Errorf("save rating %s: %w", path, taglibfile.ErrWrite)
	}
	return nil
}

func stats(path string, playcount, score int, dryRun bool) error {
	f, err := taglibfile.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s := tagreader.Read(path, f)
	before := *s
	s.Playcount = playcount
	s.Score = score

	if dryRun {
		printDiff(path, &before, s)
		return nil
	}
	if !tagreader.SaveStatistics(f, s) {
		return fmt.Errorf("save statistics %s: %w", path, taglibfile.ErrWrite)
	}
	return nil
}

func printDiff(path string, before, after *song.Song) {
	brows, arows := recordRows(before), recordRows(after)
	t := table.NewStringWriter()
	for i := range brows {
		if brows[i] == arows[i] {
			continue
		}
		diffs := dmp.DiffMain(brows[i][1], arows[i][1], false)
		fmt.Fprintf(t, "%s\t%s\t%s\n", path, brows[i][0], fmtDiff(diffs))
	}
	if out := t.String(); out != "" {
		fmt.Print(out)
	}
}

func fmtDiff(diff []diffmatchpatch.Diff) string {
	if d := dmp.DiffPrettyText(diff); d != "" {
		return d
	}
	return "[empty]"
}

func recordRows(s *song.Song) [][2]string {
	return [][2]string{
		{"Title", s.Title},
		{"Artist", s.Artist},
		{"Album", s.Album},
		{"AlbumArtist", s.AlbumArtist},
		{"Composer", s.Composer},
		{"Performer", s.Performer},
		{"Grouping", s.Grouping},
		{"Genre", s.Genre},
		{"Comment", s.Comment},
		{"Lyrics", s.Lyrics},
		{"Year", strconv.Itoa(s.Year)},
		{"OriginalYear", strconv.Itoa(s.OriginalYear)},
		{"Track", strconv.Itoa(s.Track)},
		{"Disc", strconv.Itoa(s.Disc)},
		{"BPM", strconv.FormatFloat(s.BPM, 'f', -1, 64)},
		{"Compilation", strconv.FormatBool(s.Compilation)},
		{"Rating", strconv.FormatFloat(s.Rating, 'f', -1, 64)},
		{"Playcount", strconv.Itoa(s.Playcount)},
		{"Score", strconv.Itoa(s.Score)},
		{"Art", s.ArtAutomatic},
		{"Length", (time.Duration(s.LengthNanosec) * time.Nanosecond).String()},
		{"Bitrate", strconv.Itoa(s.Bitrate)},
		{"Samplerate", strconv.Itoa(s.Samplerate)},
		{"Type", s.Type.String()},
		{"Valid", strconv.FormatBool(s.Valid)},
	}
}

// fieldFlags holds the record fields settable from the write command; only
// flags the user actually passed are applied.
type fieldFlags struct {
	title, artist, album, genre, comment string
	albumartist, composer, performer     string
	grouping, lyrics                     string
	year, track, disc                    int
	bpm                                  float64
	compilation                          bool
	set                                  map[string]bool
}

func (ff *fieldFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&ff.title, "title", "", "title")
	fs.StringVar(&ff.artist, "artist", "", "artist")
	fs.StringVar(&ff.album, "album", "", "album")
	fs.StringVar(&ff.genre, "genre", "", "genre")
	fs.StringVar(&ff.comment, "comment", "", "comment")
	fs.StringVar(&ff.albumartist, "albumartist", "", "album artist")
	fs.StringVar(&ff.composer, "composer", "", "composer")
	fs.StringVar(&ff.performer, "performer", "", "performer")
	fs.StringVar(&ff.grouping, "grouping", "", "grouping")
	fs.StringVar(&ff.lyrics, "lyrics", "", "lyrics")
	fs.IntVar(&ff.year, "year", -1, "year")
	fs.IntVar(&ff.track, "track", -1, "track number")
	fs.IntVar(&ff.disc, "disc", -1, "disc number")
	fs.Float64Var(&ff.bpm, "bpm", -1, "beats per minute")
	fs.BoolVar(&ff.compilation, "compilation", false, "part of a compilation")
}

func (ff *fieldFlags) markSet(fs *flag.FlagSet) {
	ff.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { ff.set[f.Name] = true })
}

func (ff *fieldFlags) apply(s *song.Song) {
	for name, dst := range map[string]*string{
		"title": &s.Title, "artist": &s.Artist, "album": &s.Album,
		"genre": &s.Genre, "comment": &s.Comment, "albumartist": &s.AlbumArtist,
		"composer": &s.Composer, "performer": &s.Performer,
		"grouping": &s.Grouping, "lyrics": &s.Lyrics,
	} {
		if ff.set[name] {
			*dst = ff.value(name)
		}
	}
	if ff.set["year"] {
		s.Year = ff.year
	}
	if ff.set["track"] {
		s.Track = ff.track
	}
	if ff.set["disc"] {
		s.Disc = ff.disc
	}
	if ff.set["bpm"] {
		s.BPM = ff.bpm
	}
	if ff.set["compilation"] {
		s.Compilation = ff.compilation
	}
}

func (ff *fieldFlags) value(name string) string {
	switch name {
	case "title":
		return ff.title
	case "artist":
		return ff.artist
	case "album":
		return ff.album
	case "genre":
		return ff.genre
	case "comment":
		return ff.comment
	case "albumartist":
		return ff.albumartist
	case "composer":
		return ff.composer
	case "performer":
		return ff.performer
	case "grouping":
		return ff.grouping
	case "lyrics":
		return ff.lyrics
	}
	return ""
}

func iterFiles(paths []string, f func(p string) error) error {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return err
		}

		switch info.Mode().Type() {
		// recurse if dir, only attempt when CanRead
		case os.ModeDir:
			err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.Type().IsRegular() {
					return nil
				}
				if !taglibfile.CanRead(path) {
					return nil
				}
				files = append(files, path)
				return nil
			})
			if err != nil {
				return fmt.Errorf("walk: %w", err)
			}
		default:
			files = append(files, p)
		}
	}

	slices.SortFunc(files, natcmp.Compare)

	var pathErrs []error
	for _, p := range files {
		if err := f(p); err != nil {
			pathErrs = append(pathErrs, err)
		}
	}
	return errors.Join(pathErrs...)
}
