package prefabs

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch starts a watcher over the on-disk prefabs and levels directories and
// sends a notification on the returned channel when any yaml or json file
// changes, debounced so a single save does not fire twice. Used only in
// debug mode. Returns nil if the watcher cannot start (directories missing
// when running from the embedded assets alone).
func Watch() <-chan string {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("[prefabs] watch unavailable: %v", err)
		return nil
	}
	watched := 0
	for _, dir := range []string{"prefabs", "levels"} {
		if err := watcher.Add(dir); err == nil {
			watched++
		}
	}
	if watched == 0 {
		watcher.Close()
		return nil
	}

	out := make(chan string, 1)
	go func() {
		defer watcher.Close()
		var (
			pending string
			timer   *time.Timer
			fire    <-chan time.Time
		)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				switch filepath.Ext(event.Name) {
				case ".yaml", ".yml", ".json":
				default:
					continue
				}
				pending = event.Name
				if timer == nil {
					timer = time.NewTimer(100 * time.Millisecond)
				} else {
					timer.Reset(100 * time.Millisecond)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				select {
				case out <- pending:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[prefabs] watch error: %v", err)
			}
		}
	}()
	return out
}
