package common

const (
	RequestIDHeader = "X-Request-Id"

	SourceHTTP      = "http"
	SourceBatch     = "batch"
	SourceWebsocket = "websocket"
)

// Fiber locals keys are strings because websocket connections only expose
// string keyed locals.
const (
	RequestIDLocalsKey          = "request_id"
	WebsocketSemaphoreLocalsKey = "ws_semaphore"
)
