package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/auth"
	"github.com/Shreya020904/Planner-ui/internal/infrastructure/realtime"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/live"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/usecase"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/presentation/middleware"
)

// ConnectHook runs once a socket is attached, before any frame is read.
type ConnectHook func(conn *realtime.Connection)

// ChatSocketController handles the websocket endpoint for realtime chat traffic.
// Each socket follows at most one conversation and keeps its own pins.
type ChatSocketController struct {
	router   *realtime.Router
	feed     *live.Feed
	open     *usecase.OpenConversationUseCase
	send     *usecase.SendMessageUseCase
	contacts *usecase.ListContactsUseCase
	limiter  *middleware.RateLimiter
	logger   *slog.Logger

	inflightTimeout time.Duration
	onConnect       []ConnectHook
}

func NewChatSocketController(
	router *realtime.Router,
	feed *live.Feed,
	open *usecase.OpenConversationUseCase,
	send *usecase.SendMessageUseCase,
	contacts *usecase.ListContactsUseCase,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) *ChatSocketController {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatSocketController{
		router:          router,
		feed:            feed,
		open:            open,
		send:            send,
		contacts:        contacts,
		limiter:         limiter,
		logger:          logger,
		inflightTimeout: 5 * time.Second,
	}
}

// OnConnect registers hooks run for every new socket.
func (ctl *ChatSocketController) OnConnect(hooks ...ConnectHook) {
	ctl.onConnect = append(ctl.onConnect, hooks...)
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Tokens travel in the query string, so any origin may connect.
		return true
	},
}

type inboundFrame struct {
	Type   string `json:"type"`
	PeerID string `json:"peer_id,omitempty"`
	UserID string `json:"user_id,omitempty"`
	Body   string `json:"body,omitempty"`
	Query  string `json:"query,omitempty"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

type ackFrame struct {
	Type           string              `json:"type"`
	ConversationID chat.ConversationID `json:"conversation_id,omitempty"`
	UserID         string              `json:"user_id,omitempty"`
	DeviceID       string              `json:"device_id,omitempty"`
}

type messagesFrame struct {
	Type           string              `json:"type"`
	ConversationID chat.ConversationID `json:"conversation_id"`
	Messages       []chat.Message      `json:"messages"`
}

type contactsFrame struct {
	Type   string         `json:"type"`
	Pinned []chat.Contact `json:"pinned"`
	Others []chat.Contact `json:"others"`
}

const defaultReadTimeout = 60 * time.Second

// socketSession is the per-connection state.
type socketSession struct {
	ctl       *ChatSocketController
	conn      *realtime.Connection
	ctx       context.Context
	selection *live.Selection
	pinned    chat.PinnedSet
	query     string
}

// Handle upgrades HTTP connections to websocket and processes frames until
// the client disconnects. It must run behind auth.RequireAuth.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.UserID(c)
		deviceID := auth.DeviceID(c)
		if deviceID == "" {
			deviceID = uuid.NewString()
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response.
			ctl.logger.WarnContext(c.Request.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		ctx, cancel := context.WithCancel(c.Request.Context())
		conn := realtime.NewConnection(userID, deviceID, ws)
		sess := &socketSession{
			ctl:       ctl,
			conn:      conn,
			ctx:       ctx,
			selection: live.NewSelection(ctl.feed),
		}
		// Attach starts the write loop.
		ctl.router.Attach(conn)
		defer func() {
			sess.selection.Release()
			cancel()
			ctl.router.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 20) // 1MB payload cap
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		_ = conn.SendJSON(ackFrame{Type: "connected", UserID: userID, DeviceID: deviceID})
		for _, hook := range ctl.onConnect {
			hook(conn)
		}

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				ctl.logger.DebugContext(ctx, "websocket read ended",
					slog.String("user_id", userID), slog.String("error", err.Error()))
				return
			}
			_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				sess.replyError("bad_request", "invalid payload")
				continue
			}
			sess.dispatch(frame)
		}
	}
}

func (s *socketSession) dispatch(frame inboundFrame) {
	switch frame.Type {
	case "open":
		s.handleOpen(frame)
	case "close":
		s.selection.Release()
		_ = s.conn.SendJSON(ackFrame{Type: "closed"})
	case "message":
		s.handleMessage(frame)
	case "pin":
		s.pinned.Pin(frame.UserID)
		s.pushContacts()
	case "unpin":
		s.pinned.Unpin(frame.UserID)
		s.pushContacts()
	case "contacts":
		s.query = frame.Query
		s.pushContacts()
	default:
		s.replyError("unsupported_type", "unknown frame type")
	}
}

func (s *socketSession) handleOpen(frame inboundFrame) {
	ctx, cancel := context.WithTimeout(s.ctx, s.ctl.inflightTimeout)
	defer cancel()

	id, err := s.ctl.open.Execute(ctx, usecase.OpenConversationInput{UserID: s.conn.UserID, PeerID: frame.PeerID})
	if err != nil {
		s.replyUseCaseError(err)
		return
	}

	err = s.selection.Select(s.ctx, id, func(msgs []chat.Message) {
		_ = s.conn.SendJSON(messagesFrame{Type: "messages", ConversationID: id, Messages: msgs})
	}, live.WithErrorHandler(func(_ chat.ConversationID, err error) {
		s.replyUseCaseError(err)
	}))
	if err != nil {
		s.replyUseCaseError(err)
		return
	}
	_ = s.conn.SendJSON(ackFrame{Type: "opened", ConversationID: id})
}

// handleMessage posts into the followed conversation. Blank bodies and
// sockets with no open conversation are ignored.
func (s *socketSession) handleMessage(frame inboundFrame) {
	current := s.selection.Current()
	if current == "" || strings.TrimSpace(frame.Body) == "" {
		return
	}
	if s.ctl.limiter != nil && !s.ctl.limiter.Allow(s.conn.UserID) {
		s.replyError("rate_limited", apperror.Message(middleware.ErrRateLimited))
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.ctl.inflightTimeout)
	defer cancel()

	_, err := s.ctl.send.Execute(ctx, usecase.SendMessageInput{
		ConversationID: current,
		SenderID:       s.conn.UserID,
		Body:           frame.Body,
	})
	if err != nil {
		s.replyUseCaseError(err)
	}
}

func (s *socketSession) pushContacts() {
	ctx, cancel := context.WithTimeout(s.ctx, s.ctl.inflightTimeout)
	defer cancel()

	list, err := s.ctl.contacts.Execute(ctx, usecase.ListContactsInput{
		UserID: s.conn.UserID,
		Query:  s.query,
		Pinned: s.pinned.IDs(),
	})
	if err != nil {
		s.replyUseCaseError(err)
		return
	}
	_ = s.conn.SendJSON(contactsFrame{Type: "contacts", Pinned: list.Pinned, Others: list.Others})
}

func (s *socketSession) replyUseCaseError(err error) {
	s.replyError(strings.ToLower(string(apperror.CodeOf(err))), apperror.Message(err))
}

func (s *socketSession) replyError(code string, message string) {
	_ = s.conn.SendJSON(errorFrame{Type: "error", Code: code, Error: message})
}
