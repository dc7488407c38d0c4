package paramfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eq/params"
)

// Watcher reloads a parameter file into a store whenever it changes.
//
// The file's directory is watched rather than the file itself so that
// editors which save by renaming a new file into place are followed.
type Watcher struct {
	path   string
	store  *params.Store
	log    *logrus.Entry
	onLoad func(n int, err error)

	fs *fsnotify.Watcher
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets the entry reload events are logged to.
func WithLogger(log *logrus.Entry) WatcherOption {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

// OnLoad registers fn to be called after every reload attempt.
func OnLoad(fn func(n int, err error)) WatcherOption {
	return func(w *Watcher) { w.onLoad = fn }
}

// NewWatcher starts watching path. Events are handled by Run.
func NewWatcher(path string, store *params.Store, opts ...WatcherOption) (*Watcher, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("paramfile: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("paramfile: create watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("paramfile: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:  abs,
		store: store,
		log:   logrus.WithField("component", "paramfile"),
		fs:    fw,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run reloads the file whenever it is written or created until ctx is
// done, then releases the watch. A reload that fails leaves the store
// untouched.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	log := w.log.WithFields(logrus.Fields{
		"function": "Watcher.Run",
		"path":     w.path,
	})
	log.Info("watching parameter file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			n, err := Load(w.path, w.store)
			if err != nil {
				log.WithError(err).Warn("parameter file reload failed")
			} else {
				log.WithField("values", n).Debug("parameter file reloaded")
			}
			if w.onLoad != nil {
				w.onLoad(n, err)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}
