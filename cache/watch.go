package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates the cache whenever a file in one of dirs is created,
// written, removed or renamed. dirs are operating system paths. Directories
// that do not exist are skipped. Watch returns once the watches are in
// place; watching stops when ctx is done.
func (cfs *FS) Watch(ctx context.Context, dirs ...string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("Watch: %w", err)
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("Watch: skipping %s: %s", d, err)
				continue
			}
			w.Close()
			return fmt.Errorf("Watch: %w", err)
		}
	}
	go cfs.watch(ctx, w)
	return nil
}

const changeOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

func (cfs *FS) watch(ctx context.Context, w *fsnotify.Watcher) {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&changeOps != 0 {
				cfs.Invalidate()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %s", err)
		}
	}
}
