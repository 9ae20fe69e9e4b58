package cmd

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const watchDebounce = 500 * time.Millisecond

var (
	exportOut   string
	exportWatch bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the rendered page to a single HTML file",
	Long: `export renders the page once and writes it to --out. The file is
self-contained: images are embedded, so it can be opened or hosted as is.
With --watch the page is re-exported whenever a file under images/ changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite(appConfig)
		if err != nil {
			return err
		}
		if err := exportPage(s, exportOut); err != nil {
			return err
		}
		logger.Info("page exported", zap.String("out", exportOut))

		if !exportWatch {
			return nil
		}
		return watchAndExport(s, exportOut)
	},
}

// exportPage renders to memory, writes a temp file next to out and renames
// it over out, so readers never see a partial page.
func exportPage(s site, out string) error {
	var buf bytes.Buffer
	if err := s.renderer.RenderContent(&buf, s.content); err != nil {
		return err
	}

	dir := filepath.Dir(out)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(out)+".*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return fmt.Errorf("replace %s: %w", out, err)
	}
	return nil
}

func watchAndExport(s site, out string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	root := filepath.Join(appConfig.AssetsDir, "images")
	if err := addWatchDirs(watcher, root); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					logger.Warn("watch new directory", zap.String("path", event.Name), zap.Error(err))
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case <-rebuild:
			if err := exportPage(s, out); err != nil {
				logger.Error("re-export failed", zap.Error(err))
				continue
			}
			logger.Info("page re-exported", zap.String("out", out))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))

		case <-stop:
			return nil
		}
	}
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	if !isDir(root) {
		return fmt.Errorf("image directory %s not found, nothing to watch", root)
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("walk image directory", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "index.html", "output file")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "re-export when images change")
	rootCmd.AddCommand(exportCmd)
}
