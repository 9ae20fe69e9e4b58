package assets

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Loader reads images from a filesystem rooted at the site directory.
// Absolute paths, and relative paths that climb out of the root, are read
// from disk directly.
type Loader struct {
	fsys   fs.FS
	dir    string
	logger *zap.Logger
}

// NewLoader creates a loader over fsys. A nil logger disables logging.
func NewLoader(fsys fs.FS, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fsys: fsys, logger: logger}
}

// NewDirLoader creates a loader reading relative paths from dir.
func NewDirLoader(dir string, logger *zap.Logger) *Loader {
	l := NewLoader(os.DirFS(dir), logger)
	l.dir = dir
	return l
}

// Load reads the file at p. It never fails: a missing file, an empty path
// or any other read error returns an Image with Found set to false.
func (l *Loader) Load(p string) Image {
	img := Image{Path: p}
	if p == "" {
		l.logger.Debug("empty image path")
		return img
	}

	data, err := l.read(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("image not found", zap.String("path", p))
		} else {
			l.logger.Warn("image unreadable", zap.String("path", p), zap.Error(err))
		}
		return img
	}

	img.Data = data
	img.Found = true
	return img
}

func (l *Loader) read(p string) ([]byte, error) {
	if filepath.IsAbs(p) {
		return os.ReadFile(p)
	}

	name := path.Clean(strings.TrimPrefix(filepath.ToSlash(p), "./"))
	if fs.ValidPath(name) {
		return fs.ReadFile(l.fsys, name)
	}
	if l.dir == "" {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return os.ReadFile(filepath.Join(l.dir, filepath.FromSlash(p)))
}
