package cron

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"talentpulse/config"
	"talentpulse/internal/core"
	"talentpulse/internal/service"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce 編輯器存檔常連續觸發多個事件，合併為一次重算
const watchDebounce = 500 * time.Millisecond

// DatasetWatcher 監看資料檔所在目錄，資料檔被寫入、建立或改名時觸發重算
type DatasetWatcher struct {
	logger    *zap.Logger
	refresher Refresher
	path      string
	enabled   bool
	debounce  time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewDatasetWatcher(logger *zap.Logger, conf *config.Configuration, dashboardService *service.DashboardService) *DatasetWatcher {
	return newDatasetWatcher(logger, service.ResolveDatasetPath(conf.Dataset.Path), conf.Dataset.Watch && conf.Dataset.Path != "", dashboardService)
}

func newDatasetWatcher(logger *zap.Logger, path string, enabled bool, refresher Refresher) *DatasetWatcher {
	return &DatasetWatcher{
		logger:    logger,
		refresher: refresher,
		path:      filepath.Clean(path),
		enabled:   enabled,
		debounce:  watchDebounce,
	}
}

// Start DATASET.WATCH=false 時不做事
func (w *DatasetWatcher) Start() error {
	if !w.enabled {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return err
	}

	w.mu.Lock()
	w.watcher = watcher
	w.done = make(chan struct{})
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop(watcher, w.done)
	w.logger.Info("watching dataset file", zap.String("path", w.path))
	return nil
}

func (w *DatasetWatcher) loop(watcher *fsnotify.Watcher, done chan struct{}) {
	defer w.wg.Done()
	for {
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("dataset watcher error", zap.Error(err))
		}
	}
}

func (w *DatasetWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.refresh)
}

func (w *DatasetWatcher) refresh() {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("panic during refresh after dataset change",
				zap.String("path", w.path),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	if _, err := w.refresher.Refresh(ctx, core.RefreshTriggerWatch); err != nil {
		w.logger.Error("refresh after dataset change failed", zap.String("path", w.path), zap.Error(err))
	}
}

func (w *DatasetWatcher) Stop() {
	w.mu.Lock()
	watcher, done := w.watcher, w.done
	w.watcher, w.done = nil, nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	if watcher == nil {
		return
	}
	close(done)
	_ = watcher.Close()
	w.wg.Wait()
}
