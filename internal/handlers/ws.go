// internal/handlers/ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blanksgame/blanks/internal/middleware"
	"github.com/blanksgame/blanks/internal/models"
	"github.com/blanksgame/blanks/internal/session"
)

// ClientMessage is the tagged envelope for every client-to-server event.
// Unknown or malformed payloads are rejected here, before they can reach
// the game engine.
type ClientMessage struct {
	Type            string `json:"type"`
	Name            string `json:"name,omitempty"`
	MaxPlayers      int    `json:"maxPlayers,omitempty"`
	LobbyID         string `json:"lobbyId,omitempty"`
	HandIndex       *int   `json:"handIndex,omitempty"`
	SubmissionIndex *int   `json:"submissionIndex,omitempty"`
	SoundID         string `json:"soundId,omitempty"`
}

// WSHandler upgrades a client connection and runs its read loop. Each
// connection gets a buffered outbound channel drained by a write pump, so
// broadcasts never block on a slow client.
func WSHandler(logger *logrus.Logger, dir *session.Directory, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		conn := models.NewConn(cancel)
		go writePump(ctx, c, conn, logger)

		player := readMessages(ctx, c, conn, dir, logger)

		// The player's registry entry and lobby membership die with the
		// connection. Closing Out stops the write pump; nothing can write
		// to this connection once the directory has dropped the player.
		dir.DropConnection(player)
		close(conn.Out)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, nil)
	}
}

// writePump drains the connection's outbound channel onto the websocket.
func writePump(ctx context.Context, c *websocket.Conn, conn *models.Conn, logger *logrus.Logger) {
	for msg := range conn.Out {
		data, err := json.Marshal(msg)
		if err != nil {
			logger.Errorf("failed to marshal %s event: %v", msg.Event, err)
			continue
		}
		writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = c.Write(writeCtx, websocket.MessageText, data)
		cancel()
		if err != nil {
			return
		}
	}
}

// readMessages processes client events until the connection closes.
// Returns the registered player, if any, for cleanup.
func readMessages(ctx context.Context, c *websocket.Conn, conn *models.Conn, dir *session.Directory, logger *logrus.Logger) *models.Player {
	var player *models.Player

	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway &&
				!errors.Is(err, context.Canceled) {
				logger.Debugf("websocket read ended: %v", err)
			}
			return player
		}
		if msgType != websocket.MessageText {
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("invalid JSON from client: %v", err)
			conn.WriteError("Invalid message format")
			continue
		}

		player = dispatch(conn, dir, player, msg)
	}
}

// dispatch routes one decoded client event into the session directory.
// Validation errors surface as error events; actions the engine treats as
// stale or duplicate are silently ignored, per the protocol.
func dispatch(conn *models.Conn, dir *session.Directory, player *models.Player, msg ClientMessage) *models.Player {
	switch msg.Type {
	case "set-name":
		if strings.TrimSpace(msg.Name) == "" {
			conn.WriteError(session.ErrNoName.Error())
			return player
		}
		if player != nil {
			dir.RenamePlayer(player, msg.Name)
			return player
		}
		return dir.RegisterPlayer(conn, msg.Name)

	case "get-lobbies":
		requester := uuid.Nil
		if player != nil {
			requester = player.ID
		}
		dir.ListLobbies(conn, requester)

	case "create-lobby":
		if player == nil {
			conn.WriteError(session.ErrNoName.Error())
			return nil
		}
		if err := dir.CreateLobby(player, msg.Name, msg.MaxPlayers); err != nil {
			conn.WriteError(err.Error())
		}

	case "join-lobby":
		if player == nil {
			conn.WriteError(session.ErrNoName.Error())
			return nil
		}
		lobbyID, err := uuid.Parse(msg.LobbyID)
		if err != nil {
			conn.WriteError(session.ErrLobbyNotFound.Error())
			return player
		}
		if err := dir.JoinLobby(player, lobbyID); err != nil {
			conn.WriteError(err.Error())
		}

	case "leave-lobby":
		if player == nil {
			// Confirm even when there is nothing to leave.
			conn.Write("lobby-left", nil)
			return nil
		}
		dir.LeaveLobby(player)

	case "start-game":
		if player == nil {
			conn.WriteError(session.ErrNoName.Error())
			return nil
		}
		if err := dir.StartGame(player); err != nil {
			conn.WriteError(err.Error())
		}

	case "select-card":
		if player != nil && msg.HandIndex != nil {
			dir.SelectCard(player, *msg.HandIndex)
		}

	case "submit-cards":
		if player != nil {
			dir.SubmitCards(player)
		}

	case "select-winner":
		if player != nil && msg.SubmissionIndex != nil {
			dir.SelectWinner(player, *msg.SubmissionIndex)
		}

	case "next-round":
		if player != nil {
			dir.NextRound(player)
		}

	case "play-soundboard":
		if player != nil && msg.SoundID != "" {
			dir.PlaySoundboard(player, msg.SoundID)
		}
	}
	return player
}
