package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/picross-server/internal/repository"
)

// ConnectWS drives a session over a websocket: each text message is a
// newline-separated batch of board commands, answered with the updated
// session DTO. Hints and win detection follow the same rules as the
// HTTP move endpoint.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, board, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.log.WithError(err).Warn("ws read")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		if session.EndedAt.Valid {
			break
		}

		text := strings.TrimSpace(string(message))
		bad := false
		for _, cmd := range byPiece(text, "\n") {
			if err := executeCommand(board, cmd); err != nil {
				g.log.WithError(err).WithField("command", cmd).Error("ws command")
				bad = true
				break
			}
		}
		if bad {
			break
		}

		g.log.Debugf("session %d board:\n%s", session.GameSessionId, board)

		params := repository.UpdateGameSessionParams{}

		state, err := board.Bytes()
		if err != nil {
			g.log.WithError(err).Error("unable to serialize board")
			break
		}
		params.State = &state

		if solved := boardSolved(board); solved {
			endedAt := time.Now().UTC()
			params.Solved = &solved
			params.EndedAt = &endedAt
		}

		session, err = g.repo.UpdateGameSession(
			r.Context(), session.GameSessionId, params,
		)
		if err != nil {
			g.log.WithError(err).Error("unable to update game session")
			break
		}

		dto, err := NewGameSessionDTO(session, board)
		if err != nil {
			g.log.WithError(err).Error("unable to build session dto")
			break
		}
		if err := c.WriteJSON(dto); err != nil {
			g.log.WithError(err).Error("ws write")
			break
		}
	}
}
