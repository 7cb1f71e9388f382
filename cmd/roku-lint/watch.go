package main

import (
	"context"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/TheEndless/roku-builder/internal/engine"
)

const watchDebounce = 300 * time.Millisecond

func watchCmd(args []string) {
	run, err := parseArgs(args)
	if err != nil {
		log.Fatal(err)
	}
	run.opts.Progress = false

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	if err := runWatch(run, stop); err != nil {
		log.Fatal(err)
	}
}

func runWatch(run runConfig, stop <-chan os.Signal) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range run.opts.Roots {
		if err := addWatchRecursive(watcher, root); err != nil {
			return err
		}
	}

	rescan := func() {
		res, err := engine.Run(context.Background(), run.opts)
		if err != nil {
			log.Printf("scan failed: %v", err)
			return
		}
		if err := render(os.Stdout, res, run); err != nil {
			log.Printf("render failed: %v", err)
			return
		}
		reportErrors(os.Stderr, res)
	}
	rescan()

	var timer *time.Timer
	for {
		select {
		case <-stop:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if skipWatchEvent(ev.Name) {
				continue
			}
			// new directories need their own watch
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addWatchRecursive(watcher, ev.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, rescan)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func addWatchRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

func skipWatchEvent(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~")
}
