// Package resources provides process resource monitoring for the collection
// daemon.
//
// This package implements the resource snapshot layer behind the daemon's
// runtime introspection endpoint. A long-running collection daemon holds an
// in-memory submission queue and a deduplication cache, so operators need
// visibility into memory pressure and goroutine growth to spot leaks before
// they turn into dropped records.
//
// DATA COLLECTION STRATEGY:
// Uses a hybrid approach combining Go's runtime package for Go-specific
// metrics and gopsutil for accurate system-level memory information. This
// provides visibility into both application and system resource utilization.
//
// All resource data structures support JSON serialization for the HTTP API.
package resources

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/zuup-ai/zuup-collect/internal/logging"
)

// ProcessResources represents a point-in-time resource snapshot of one
// collection daemon. Contains system memory metrics and Go runtime
// statistics for health monitoring and leak detection.
//
// All fields are JSON-serializable for the daemon's runtime endpoint.
type ProcessResources struct {
	InstanceName string    `json:"instance_name"` // Human-readable daemon instance name
	Timestamp    time.Time `json:"timestamp"`     // When this snapshot was taken

	// CPU Information
	CPUCores int `json:"cpu_cores"` // Number of CPU cores visible to the process

	// Memory Information (in bytes) - actual system memory, not Go runtime
	MemoryTotal     uint64  `json:"memory_total"`     // Total physical system memory
	MemoryUsed      uint64  `json:"memory_used"`      // Currently used system memory
	MemoryAvailable uint64  `json:"memory_available"` // Available system memory
	MemoryUsage     float64 `json:"memory_usage"`     // System memory usage percentage (0-100)

	// Go Runtime Information
	GoRoutines int     `json:"go_routines"`  // Number of active goroutines
	GoMemAlloc uint64  `json:"go_mem_alloc"` // Bytes allocated by Go runtime
	GoMemSys   uint64  `json:"go_mem_sys"`   // Bytes obtained from system by Go
	GoGCCycles uint32  `json:"go_gc_cycles"` // Number of completed GC cycles
	GoGCPause  float64 `json:"go_gc_pause"`  // Recent GC pause time in milliseconds

	// Daemon Status
	Uptime time.Duration `json:"uptime"` // How long the daemon has been running
}

// Gather collects a resource snapshot for the running daemon including
// system memory metrics and Go runtime statistics.
//
// Handles data collection failures gracefully with fallback to Go runtime
// stats so resource reporting continues even when system monitoring tools
// are unavailable.
func Gather(instanceName string, startTime time.Time) *ProcessResources {
	now := time.Now()

	// Collect Go runtime memory statistics for application-level tracking
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	// Gather actual system memory information using gopsutil for accurate
	// OS-level data
	virtualMem, err := mem.VirtualMemory()
	if err != nil {
		logging.Error("Failed to get system memory stats: %v", err)
		// Graceful degradation: fall back to Go runtime stats
		virtualMem = &mem.VirtualMemoryStat{
			Total:     memStats.Sys,
			Used:      memStats.Alloc,
			Available: memStats.Sys - memStats.Alloc,
		}
	}

	snapshot := &ProcessResources{
		InstanceName: instanceName,
		Timestamp:    now,

		CPUCores: runtime.NumCPU(),

		MemoryTotal:     virtualMem.Total,
		MemoryUsed:      virtualMem.Used,
		MemoryAvailable: virtualMem.Available,
		MemoryUsage:     virtualMem.UsedPercent,

		GoRoutines: runtime.NumGoroutine(),
		GoMemAlloc: memStats.Alloc,
		GoMemSys:   memStats.Sys,
		GoGCCycles: memStats.NumGC,
		GoGCPause:  float64(memStats.PauseNs[(memStats.NumGC+255)%256]) / 1000000, // Convert to milliseconds

		Uptime: time.Since(startTime),
	}

	logging.Debug("Gathered resources for instance %s: CPU=%d, Memory=%dMB, Goroutines=%d",
		instanceName, snapshot.CPUCores, snapshot.MemoryTotal/(1024*1024), snapshot.GoRoutines)

	return snapshot
}
