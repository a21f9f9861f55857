package hotload

import (
	"os"
	"slices"
	"time"
)

func statDir(path string) (isDir bool, ok bool) {
	info, err := os.Stat(path)
	if err != nil {
		return false, false
	}
	return info.IsDir(), true
}

// armOrResetDebounce 启动或重置一个基于配置防抖时长的定时器.
func (wc *WatchContext) armOrResetDebounce() {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if wc.timer != nil {
		wc.timer.Reset(wc.debounceDuration)
		return
	}
	wc.timer = time.AfterFunc(wc.debounceDuration, wc.onDebounceFire)
}

// onDebounceFire 在防抖定时器触发时运行：清空变更列表并调用钩子.
func (wc *WatchContext) onDebounceFire() {
	wc.mu.Lock()
	changed := wc.changed
	wc.changed = nil
	wc.timer = nil
	wc.mu.Unlock()

	if len(changed) == 0 {
		return
	}
	slices.Sort(changed)
	changed = slices.Compact(changed)
	wc.logger.Info().Strs("files", changed).Msg("change detected")

	// 钩子串行执行
	wc.hookMu.Lock()
	defer wc.hookMu.Unlock()
	wc.hook()
}

func (wc *WatchContext) stopTimer() {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if wc.timer != nil {
		wc.timer.Stop()
		wc.timer = nil
	}
}
