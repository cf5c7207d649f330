package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// VectorizeStats aggregates pipeline and system metrics.
type VectorizeStats struct {
	// --- PIPELINE METRICS ---
	FitsCompleted  uint64 `json:"fits_completed"`
	DocsVectorized uint64 `json:"docs_vectorized"`
	TokensSeen     uint64 `json:"tokens_seen"`
	UnknownDropped uint64 `json:"unknown_dropped"`
	VocabularySize int    `json:"vocabulary_size"`

	// --- SYSTEM METRICS ---
	AllocMemMb   uint64 `json:"alloc_mem_mb"`
	ProcessRssMb uint64 `json:"process_rss_mb"`
	NumGC        uint32 `json:"num_gc"`
}

// MonitoringManager tracks vectorization throughput. Counters are
// atomic so fit and transform paths can report without contention.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats VectorizeStats

	FitsCompleted  uint64
	DocsVectorized uint64
	TokensSeen     uint64
	UnknownDropped uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log}
}

func (mm *MonitoringManager) IncrFitsCompleted() {
	atomic.AddUint64(&mm.FitsCompleted, 1)
}

func (mm *MonitoringManager) AddDocsVectorized(n uint64) {
	atomic.AddUint64(&mm.DocsVectorized, n)
}

func (mm *MonitoringManager) AddTokensSeen(n uint64) {
	atomic.AddUint64(&mm.TokensSeen, n)
}

func (mm *MonitoringManager) AddUnknownDropped(n uint64) {
	atomic.AddUint64(&mm.UnknownDropped, n)
}

func (mm *MonitoringManager) SetVocabularySize(size int) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.VocabularySize = size
}

// Listen refreshes the stats snapshot on a fixed interval until the
// context is cancelled.
func (mm *MonitoringManager) Listen(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("Monitoring manager stopped")
			return
		case <-ticker.C:
			mm.updateStats()
		}
	}
}

func (mm *MonitoringManager) updateStats() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.refreshLocked()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC

	// Resident set size of the whole process, not just the Go heap.
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := p.MemoryInfo(); err == nil {
			mm.latestStats.ProcessRssMb = info.RSS / 1024 / 1024
		}
	}

	mm.log.Debug("Stats updated",
		"fits", mm.latestStats.FitsCompleted,
		"docs", mm.latestStats.DocsVectorized,
		"tokens", mm.latestStats.TokensSeen,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

func (mm *MonitoringManager) GetLatest() VectorizeStats {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.refreshLocked()
	return mm.latestStats
}

// refreshLocked folds the atomic counters into the snapshot so callers
// reading between ticks still see current totals.
func (mm *MonitoringManager) refreshLocked() {
	mm.latestStats.FitsCompleted = atomic.LoadUint64(&mm.FitsCompleted)
	mm.latestStats.DocsVectorized = atomic.LoadUint64(&mm.DocsVectorized)
	mm.latestStats.TokensSeen = atomic.LoadUint64(&mm.TokensSeen)
	mm.latestStats.UnknownDropped = atomic.LoadUint64(&mm.UnknownDropped)
}
