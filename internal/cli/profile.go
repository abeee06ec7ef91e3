package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	memProfiler *memProfilerState
)

type memProfilerState struct {
	mu        sync.Mutex
	dumpPath  string
	heapDumps [][]byte
	stop      chan struct{}
	done      chan struct{}
}

func StartCPUProfiler(profileOutput io.Writer) error {
	if err := pprof.StartCPUProfile(profileOutput); err != nil {
		return fmt.Errorf("starting CPU profiler: %w", err)
	}
	return nil
}

func StopCPUProfiler() {
	pprof.StopCPUProfile()
}

func StartMemoryProfiler(profileDumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}

	state := &memProfilerState{dumpPath: profileDumpPath, stop: make(chan struct{}), done: make(chan struct{})}
	memProfiler = state

	go func() {
		defer close(state.done)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-state.stop:
				return
			case <-ticker.C:
				state.dump()
			}
		}
	}()
}

func (m *memProfilerState) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		slog.Warn("Error writing heap profile", "error", err)
		return
	}
	m.mu.Lock()
	m.heapDumps = append(m.heapDumps, w.Bytes())
	m.mu.Unlock()
}

func StopMemoryProfiler() {
	state := memProfiler
	if state == nil {
		return
	}
	memProfiler = nil

	close(state.stop)
	<-state.done
	state.dump()

	if err := os.MkdirAll(state.dumpPath, 0o755); err != nil {
		slog.Error("Error creating memory profile directory", "error", err)
		return
	}
	for dIdx, dump := range state.heapDumps {
		err := os.WriteFile(filepath.Join(state.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0o644)
		if err != nil {
			slog.Error("Error writing memory profile to disk", "error", err)
		}
	}
}
