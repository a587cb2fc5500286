package ws

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"

	"slights/internal/game"
)

// ConnCtx is the per-connection state: which room the socket belongs to and
// which player it speaks for.
type ConnCtx struct {
	Code     string
	PlayerID string
}

// Server bridges socket.io connections to the game engine: inbound events
// become engine commands, engine events are pushed back to the room.
type Server struct {
	RM *game.RoomManager

	// Defaults carries the operator's session settings, applied to any
	// fields the create payload leaves unset.
	Defaults game.SessionConfig
}

// New creates a transport server over the given room manager.
func New(rm *game.RoomManager, defaults game.SessionConfig) *Server {
	return &Server{RM: rm, Defaults: defaults}
}

// conn adapts a socket.io connection to the engine's ClientConn interface.
type conn struct {
	c socketio.Conn
}

func (c conn) Send(event game.Event) error {
	c.c.Emit("game:event", event)
	return nil
}

func (c conn) Close() error {
	return c.c.Close()
}

// Mount attaches the Socket.IO server with handlers to the given Gin engine.
func (srv *Server) Mount(r *gin.Engine) *socketio.Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext(&ConnCtx{})
		log.Info().Str("sid", s.ID()).Msg("socket connected")
		return nil
	})

	// game:create - create a session and join as its host
	io.OnEvent("/", "game:create", func(s socketio.Conn, payload struct {
		Name   string             `json:"name"`
		Config game.SessionConfig `json:"config"`
	}) map[string]any {
		sess := srv.RM.CreateSession(payload.Config.Merge(srv.Defaults))
		player, err := sess.Join(payload.Name, "")
		if err != nil {
			return srv.err(s, err)
		}
		s.SetContext(&ConnCtx{Code: sess.Code, PlayerID: player.ID})
		s.Join(sess.Code)
		sess.RegisterClient(player.ID, conn{s})
		log.Info().Str("sid", s.ID()).Str("code", sess.Code).Msg("game:create")
		return map[string]any{"sessionCode": sess.Code, "playerId": player.ID, "state": sess.Snapshot(player.ID)}
	})

	// game:join
	io.OnEvent("/", "game:join", func(s socketio.Conn, payload struct {
		SessionCode string `json:"sessionCode"`
		Name        string `json:"name"`
		AvatarRef   string `json:"avatarRef"`
	}) map[string]any {
		sess, err := srv.RM.Get(payload.SessionCode)
		if err != nil {
			return srv.err(s, err)
		}
		player, err := sess.Join(payload.Name, payload.AvatarRef)
		if err != nil {
			return srv.err(s, err)
		}
		s.SetContext(&ConnCtx{Code: sess.Code, PlayerID: player.ID})
		s.Join(sess.Code)
		sess.RegisterClient(player.ID, conn{s})
		log.Info().Str("sid", s.ID()).Str("code", sess.Code).Str("playerId", player.ID).Msg("game:join")
		return map[string]any{"playerId": player.ID, "state": sess.Snapshot(player.ID)}
	})

	// game:resume (reconnection)
	io.OnEvent("/", "game:resume", func(s socketio.Conn, payload struct {
		SessionCode string `json:"sessionCode"`
		PlayerID    string `json:"playerId"`
	}) map[string]any {
		sess, err := srv.RM.Get(payload.SessionCode)
		if err != nil {
			return srv.err(s, err)
		}
		s.SetContext(&ConnCtx{Code: sess.Code, PlayerID: payload.PlayerID})
		s.Join(sess.Code)
		sess.RegisterClient(payload.PlayerID, conn{s})
		sess.Touch(payload.PlayerID)
		log.Info().Str("sid", s.ID()).Str("code", sess.Code).Str("playerId", payload.PlayerID).Msg("game:resume")
		return map[string]any{"state": sess.Snapshot(payload.PlayerID)}
	})

	// game:start (host)
	io.OnEvent("/", "game:start", func(s socketio.Conn) map[string]any {
		ctx := s.Context().(*ConnCtx)
		sess, err := srv.RM.Get(ctx.Code)
		if err != nil {
			return srv.err(s, err)
		}
		if err := sess.Start(ctx.PlayerID); err != nil {
			return srv.err(s, err)
		}
		log.Info().Str("code", ctx.Code).Msg("game:start")
		return map[string]any{"ok": true}
	})

	// game:submit
	io.OnEvent("/", "game:submit", func(s socketio.Conn, payload struct {
		CardID string `json:"cardId"`
	}) map[string]any {
		ctx := s.Context().(*ConnCtx)
		sess, err := srv.RM.Get(ctx.Code)
		if err != nil {
			return srv.err(s, err)
		}
		if err := sess.SubmitCard(ctx.PlayerID, payload.CardID); err != nil {
			return srv.err(s, err)
		}
		log.Info().Str("code", ctx.Code).Str("playerId", ctx.PlayerID).Str("cardId", payload.CardID).Msg("game:submit")
		return map[string]any{"ok": true}
	})

	// game:selectWinner (judge)
	io.OnEvent("/", "game:selectWinner", func(s socketio.Conn, payload struct {
		SubmissionID string `json:"submissionId"`
	}) map[string]any {
		ctx := s.Context().(*ConnCtx)
		sess, err := srv.RM.Get(ctx.Code)
		if err != nil {
			return srv.err(s, err)
		}
		if err := sess.SelectWinner(ctx.PlayerID, payload.SubmissionID); err != nil {
			return srv.err(s, err)
		}
		log.Info().Str("code", ctx.Code).Str("submissionId", payload.SubmissionID).Msg("game:selectWinner")
		return map[string]any{"ok": true}
	})

	// game:leave
	io.OnEvent("/", "game:leave", func(s socketio.Conn) map[string]any {
		ctx := s.Context().(*ConnCtx)
		sess, err := srv.RM.Get(ctx.Code)
		if err != nil {
			return srv.err(s, err)
		}
		sess.UnregisterClient(ctx.PlayerID)
		if err := sess.Leave(ctx.PlayerID); err != nil {
			return srv.err(s, err)
		}
		s.Leave(ctx.Code)
		s.SetContext(&ConnCtx{})
		log.Info().Str("code", ctx.Code).Str("playerId", ctx.PlayerID).Msg("game:leave")
		return map[string]any{"ok": true}
	})

	// game:ping keeps the connection monitor fed
	io.OnEvent("/", "game:ping", func(s socketio.Conn) map[string]any {
		ctx := s.Context().(*ConnCtx)
		if ctx.Code != "" {
			if sess, err := srv.RM.Get(ctx.Code); err == nil {
				sess.Touch(ctx.PlayerID)
			}
		}
		return map[string]any{"ok": true}
	})

	io.OnError("/", func(s socketio.Conn, e error) {
		log.Error().Str("sid", s.ID()).Err(e).Msg("socket error")
	})
	io.OnDisconnect("/", func(s socketio.Conn, reason string) {
		if ctx, ok := s.Context().(*ConnCtx); ok && ctx.Code != "" {
			if sess, err := srv.RM.Get(ctx.Code); err == nil {
				sess.UnregisterClient(ctx.PlayerID)
				sess.MarkDisconnected(ctx.PlayerID)
			}
		}
		log.Info().Str("sid", s.ID()).Str("reason", reason).Msg("socket disconnected")
	})

	go io.Serve()

	r.GET("/socket.io/*any", gin.WrapH(io))
	r.POST("/socket.io/*any", gin.WrapH(io))

	// Basic CORS preflight for Socket.IO POST
	r.OPTIONS("/socket.io/*any", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
	})

	return io
}

// err emits a typed error to the caller. Engine errors never mutate state,
// so reporting them is all there is to do.
func (srv *Server) err(s socketio.Conn, err error) map[string]any {
	s.Emit("error", map[string]any{"code": errCode(err), "message": err.Error()})
	return map[string]any{"error": err.Error(), "code": errCode(err)}
}

func errCode(err error) string {
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		return "session_not_found"
	case errors.Is(err, game.ErrRoomFull):
		return "room_full"
	case errors.Is(err, game.ErrRoomInProgress):
		return "room_in_progress"
	case errors.Is(err, game.ErrNotEnoughPlayers):
		return "not_enough_players"
	case errors.Is(err, game.ErrNotHost):
		return "not_host"
	case errors.Is(err, game.ErrNotJudge):
		return "not_judge"
	case errors.Is(err, game.ErrJudgeCannotSubmit):
		return "judge_cannot_submit"
	case errors.Is(err, game.ErrInvalidPhase):
		return "invalid_phase"
	case errors.Is(err, game.ErrCardNotInHand):
		return "card_not_in_hand"
	case errors.Is(err, game.ErrSubmissionNotFound):
		return "submission_not_found"
	case errors.Is(err, game.ErrPlayerNotFound):
		return "player_not_found"
	case errors.Is(err, game.ErrSessionOver):
		return "session_over"
	case errors.Is(err, game.ErrAlreadyStarted):
		return "already_started"
	default:
		return "bad_request"
	}
}
