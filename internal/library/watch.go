package library

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the library at path whenever the file is written, created or
// replaced, and passes the result (or the load error) to onChange. It blocks
// until ctx is done. onChange runs on the watcher goroutine.
//
// The parent directory is watched rather than the file itself so that editors
// that save by renaming a temporary file over the original keep triggering
// reloads.
func Watch(ctx context.Context, path string, onChange func(*Library, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	debugLogger.Printf("watching %s", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debugLogger.Printf("%s: %s", event.Op, event.Name)
			lib, err := Load(abs)
			onChange(lib, err)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			debugLogger.Printf("watch error: %v", err)
		}
	}
}
