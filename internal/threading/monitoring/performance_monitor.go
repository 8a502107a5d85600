package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Stage names accepted by ProfiledFunction
const (
	StageCameraUpdate = "camera_update"
	StageSceneProject = "scene_project"
	StageSceneDraw    = "scene_draw"
)

// PerformanceMonitor tracks frame and per-stage timings of the viewer
type PerformanceMonitor struct {
	// Frame metrics
	frameCount     atomic.Uint64
	frameTime      atomic.Uint64 // nanoseconds spent inside the last update
	frameInterval  atomic.Uint64 // nanoseconds between the last two frame starts
	lastFrameStart atomic.Int64  // unix nanoseconds, 0 before the first frame

	// Stage metrics, nanoseconds of the last run
	cameraUpdateTime atomic.Uint64
	sceneProjectTime atomic.Uint64
	sceneDrawTime    atomic.Uint64

	// Scene metrics
	segmentsDrawn   atomic.Uint64
	segmentsClipped atomic.Uint64
	instances       atomic.Int32
	discontinuities atomic.Uint64

	// Statistics
	mutex          sync.RWMutex
	totalFrameTime uint64
	avgFrameTime   float64
	startTime      time.Time

	// Configuration
	enableDetailed atomic.Bool
	now            func() time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	pm := &PerformanceMonitor{
		startTime: time.Now(),
		now:       time.Now,
	}
	pm.enableDetailed.Store(true)
	return pm
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing. The gap since the previous StartFrame is
// the frame interval the frame rate is derived from.
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	start := pm.now()
	if prev := pm.lastFrameStart.Swap(start.UnixNano()); prev != 0 {
		if interval := start.UnixNano() - prev; interval > 0 {
			pm.frameInterval.Store(uint64(interval))
		}
	}
	return &FrameTimer{
		monitor:   pm,
		startTime: start,
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	frameTime := uint64(ft.monitor.now().Sub(ft.startTime).Nanoseconds())
	ft.monitor.frameTime.Store(frameTime)
	count := ft.monitor.frameCount.Add(1)

	// Update average frame time
	if ft.monitor.enableDetailed.Load() {
		ft.monitor.mutex.Lock()
		ft.monitor.totalFrameTime += frameTime
		ft.monitor.avgFrameTime = float64(ft.monitor.totalFrameTime) / float64(count)
		ft.monitor.mutex.Unlock()
	}
}

// SceneMetrics is a snapshot of what the viewer did in the last frame
type SceneMetrics struct {
	SegmentsDrawn   uint64
	SegmentsClipped uint64
	Instances       int32
	Discontinuities uint64
	FramesPerSecond float64
	UpdateTime      time.Duration
	CameraUpdate    time.Duration
	SceneProject    time.Duration
	MemoryUsageMB   uint64
}

// UpdateSceneMetrics records the counters of the last frame
func (pm *PerformanceMonitor) UpdateSceneMetrics(drawn, clipped uint64, instances int32, discontinuities uint64) {
	pm.segmentsDrawn.Store(drawn)
	pm.segmentsClipped.Store(clipped)
	pm.instances.Store(instances)
	pm.discontinuities.Store(discontinuities)
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() SceneMetrics {
	// Get memory usage
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return SceneMetrics{
		SegmentsDrawn:   pm.segmentsDrawn.Load(),
		SegmentsClipped: pm.segmentsClipped.Load(),
		Instances:       pm.instances.Load(),
		Discontinuities: pm.discontinuities.Load(),
		FramesPerSecond: pm.framesPerSecond(),
		UpdateTime:      time.Duration(pm.frameTime.Load()),
		CameraUpdate:    time.Duration(pm.cameraUpdateTime.Load()),
		SceneProject:    time.Duration(pm.sceneProjectTime.Load()),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
	}
}

// framesPerSecond is 0 until two frames have started.
func (pm *PerformanceMonitor) framesPerSecond() float64 {
	interval := pm.frameInterval.Load()
	if interval == 0 {
		return 0
	}
	return float64(time.Second) / float64(interval)
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	uptime := time.Since(pm.startTime)

	return map[string]interface{}{
		"uptime_seconds":    uptime.Seconds(),
		"frame_count":       pm.frameCount.Load(),
		"fps":               pm.framesPerSecond(),
		"avg_frame_time_ms": pm.avgFrameTime / 1000000, // Convert to milliseconds
		"camera_update_us":  float64(pm.cameraUpdateTime.Load()) / 1000,
		"scene_project_us":  float64(pm.sceneProjectTime.Load()) / 1000,
		"scene_draw_us":     float64(pm.sceneDrawTime.Load()) / 1000,
		"segments_drawn":    pm.segmentsDrawn.Load(),
		"segments_clipped":  pm.segmentsClipped.Load(),
		"instances":         pm.instances.Load(),
		"discontinuities":   pm.discontinuities.Load(),
		"cpu_cores":         runtime.NumCPU(),
		"goroutines":        runtime.NumGoroutine(),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts checks for performance issues and returns alerts
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)
	currentTime := time.Now()

	// Check frame rate
	if fps := pm.framesPerSecond(); fps > 0 && fps < 30 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "low_fps",
			Message:   "Frame rate is below 30 FPS",
			Value:     fps,
			Threshold: 30,
			Timestamp: currentTime,
		})
	}

	// The camera update is O(1); anything near a millisecond means trouble.
	cameraTime := float64(pm.cameraUpdateTime.Load()) / 1000000
	if cameraTime > 1 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "slow_camera",
			Message:   "Camera update took more than 1ms",
			Value:     cameraTime,
			Threshold: 1,
			Timestamp: currentTime,
		})
	}

	return alerts
}

// EnableDetailedLogging enables/disables average frame time tracking
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.enableDetailed.Store(enabled)
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.frameInterval.Store(0)
	pm.lastFrameStart.Store(0)
	pm.cameraUpdateTime.Store(0)
	pm.sceneProjectTime.Store(0)
	pm.sceneDrawTime.Store(0)
	pm.segmentsDrawn.Store(0)
	pm.segmentsClipped.Store(0)
	pm.instances.Store(0)
	pm.discontinuities.Store(0)

	pm.mutex.Lock()
	pm.totalFrameTime = 0
	pm.avgFrameTime = 0
	pm.startTime = pm.now()
	pm.mutex.Unlock()
}

// ProfiledFunction wraps a function with performance timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	// Store timing based on function name
	switch name {
	case StageCameraUpdate:
		pm.cameraUpdateTime.Store(uint64(duration.Nanoseconds()))
	case StageSceneProject:
		pm.sceneProjectTime.Store(uint64(duration.Nanoseconds()))
	case StageSceneDraw:
		pm.sceneDrawTime.Store(uint64(duration.Nanoseconds()))
	}

	return duration
}

// GetFrameCount returns the number of completed frames
func (pm *PerformanceMonitor) GetFrameCount() uint64 {
	return pm.frameCount.Load()
}
