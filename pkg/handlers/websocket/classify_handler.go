package websocket

import (
	"context"
	"encoding/json"
	"time"

	appClassification "github.com/NeuralTrust/ContentGuard/pkg/app/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/common"
	httpHandlers "github.com/NeuralTrust/ContentGuard/pkg/handlers/http"
	"github.com/NeuralTrust/ContentGuard/pkg/handlers/http/request"
	infraWebsocket "github.com/NeuralTrust/ContentGuard/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	writeTimeout = 10 * time.Second
	// Upper bound for an idle connection; reset after every frame.
	readTimeout = 5 * time.Minute
)

type errorFrame struct {
	Error string `json:"error"`
}

type classifyHandler struct {
	logger   *logrus.Logger
	pipeline appClassification.Pipeline
}

// NewClassifyHandler streams classifications over a websocket. Each text
// frame carries {"text": "..."} and is answered with the result JSON, or
// {"error": "..."} when the frame cannot be classified. Errors never close
// the connection.
func NewClassifyHandler(logger *logrus.Logger, pipeline appClassification.Pipeline) Handler {
	return &classifyHandler{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (h *classifyHandler) Handle(c *websocket.Conn) {
	if semaphore, ok := c.Locals(common.WebsocketSemaphoreLocalsKey).(*infraWebsocket.Semaphore); ok {
		defer semaphore.Release()
	}

	connectionID, _ := c.Locals(common.RequestIDLocalsKey).(string)
	if connectionID == "" {
		connectionID = uuid.New().String()
	}
	logger := h.logger.WithField("connection_id", connectionID)

	ctx, cancel := context.WithCancel(common.WithSource(context.Background(), common.SourceWebsocket))
	defer cancel()

	logger.Debug("websocket classification stream opened")
	for {
		_ = c.SetReadDeadline(time.Now().Add(readTimeout))
		messageType, msg, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Warn("websocket read failed")
			}
			break
		}
		if messageType != websocket.TextMessage {
			if !h.writeError(c, logger, "Only text frames are supported") {
				break
			}
			continue
		}

		if !h.classify(ctx, c, logger, msg) {
			break
		}
	}
	logger.Debug("websocket classification stream closed")
}

// classify answers one frame and reports whether the connection is still
// writable.
func (h *classifyHandler) classify(ctx context.Context, c *websocket.Conn, logger *logrus.Entry, msg []byte) bool {
	req, err := request.ParseClassifyRequest(msg)
	if err != nil {
		_, message := httpHandlers.ErrorResponse(err)
		return h.writeError(c, logger, message)
	}

	frameCtx := common.WithRequestID(ctx, uuid.New().String())
	outcome, err := h.pipeline.Classify(frameCtx, req.ToDomain())
	if err != nil {
		status, message := httpHandlers.ErrorResponse(err)
		if status >= 500 {
			logger.WithError(err).Error("websocket classification failed")
		}
		return h.writeError(c, logger, message)
	}
	return h.write(c, logger, outcome.Raw)
}

func (h *classifyHandler) writeError(c *websocket.Conn, logger *logrus.Entry, message string) bool {
	payload, err := json.Marshal(errorFrame{Error: message})
	if err != nil {
		logger.WithError(err).Error("failed to encode websocket error frame")
		return false
	}
	return h.write(c, logger, payload)
}

func (h *classifyHandler) write(c *websocket.Conn, logger *logrus.Entry, payload []byte) bool {
	_ = c.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
		logger.WithError(err).Warn("websocket write failed")
		return false
	}
	return true
}
