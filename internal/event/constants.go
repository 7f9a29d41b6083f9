package event

import "time"

// EventSchemaVersion is stamped on every event the game publishes
const EventSchemaVersion = "1.0"

// Retry defaults used when the publisher is built without explicit settings
const (
	RetryQueueBufferSize = 1000
	RetryInitialDelay    = 2 * time.Second
	RetryMaxAttempts     = 5

	// RetryMaxDelay caps the backoff so a long outage does not park events for hours
	RetryMaxDelay = time.Minute
)

// DeadLetterFilePermissions is the mode of a newly created dead-letter file
const DeadLetterFilePermissions = 0o644

// Log messages
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event sent to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write dead letter"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgEventRetryExhausted   = "Event retries exhausted"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"

	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
)

// CalculateRetryDelay doubles baseDelay for each attempt after the first,
// capped at RetryMaxDelay
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= RetryMaxDelay {
			return RetryMaxDelay
		}
	}
	return delay
}
