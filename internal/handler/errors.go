package handler

// Generic HTTP error messages for client responses.
// These never expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidDay            = "Day must be an integer"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing messages for service errors without a specific mapping
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgServiceError     = "Service call failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
)

// Path parameters
const (
	PathParamPlayerID = "id"
	PathParamOrderID  = "orderID"
	PathParamDay      = "day"
)
