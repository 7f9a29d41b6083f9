package worker

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// Log messages - cycle tick
const (
	LogMsgTickSkipped = "Previous cycle tick still running, skipping"
)

// Log messages - brew ready worker
const (
	LogMsgBrewReadyScheduled    = "Scheduling brew ready notification"
	LogMsgBrewReadyFired        = "Brew ready"
	LogMsgBrewReadyScanFailed   = "Failed to scan active brews on startup"
	LogMsgBrewReadyBadPayload   = "Invalid brew.started payload"
	LogMsgBrewReadyCancelled    = "Cancelled pending brew ready notification"
	LogMsgWorkerShuttingDown    = "Shutting down worker"
	LogMsgWorkerShutdownDone    = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout = "Worker shutdown timeout"
)

// Test configuration
const (
	TestWorkerCount = 2
	TestQueueSize   = 10
)
