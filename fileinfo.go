package tagreader

import (
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/djherbis/times"

	"github.com/bilde2910/Clementine/song"
)

// statFile fills in the fields that come from the filesystem rather than the
// tag data. A stat failure leaves them at their defaults.
func statFile(path string, s *song.Song) {
	s.BaseFilename = filepath.Base(path)
	s.URL = fileURL(path)

	info, err := os.Stat(path)
	if err != nil {
		slog.Debug("stat file", "path", path, "err", err)
		return
	}
	s.Filesize = info.Size()
	s.Mtime = info.ModTime().Unix()
	s.Ctime = s.Mtime

	// Prefer the real creation time where the platform records one.
	ts := times.Get(info)
	if ts.HasBirthTime() {
		s.Ctime = ts.BirthTime().Unix()
	}
}

func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}
