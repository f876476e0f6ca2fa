package web

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/pipeline"
)

const (
	defaultStreamRate = 16000
	streamIdle        = 30 * time.Second
)

// handleVoiceStream upgrades GET /api/voice/stream to a WebSocket.
//
// The browser sends binary frames of little-endian 16-bit mono PCM at the
// rate given by ?rate= (default 16000), then the text frame "stop". The
// server answers with a single JSON frame (analyzeResponse or
// errorResponse) and closes the connection.
//
// @Summary     Stream microphone audio
// @Tags        analyze
// @Param       rate  query  int  false  "Sample rate of the PCM frames"
// @Success     101
// @Router      /voice/stream [get]
func (s *Shell) handleVoiceStream(w http.ResponseWriter, r *http.Request) {
	rate := defaultStreamRate
	if v := r.URL.Query().Get("rate"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 8000 || n > 48000 {
			writeError(w, http.StatusBadRequest, "bad_request", "rate must be between 8000 and 48000")
			return
		}
		rate = n
	}

	sess, cookie := s.sessions.get(r)
	var header http.Header
	if cookie != nil {
		header = http.Header{"Set-Cookie": {cookie.String()}}
	}

	conn, err := s.upgrader.Upgrade(w, r, header)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.maxUpload)

	logger := slog.With("remote", r.RemoteAddr, "rate", rate)
	logger.Debug("voice stream opened")

	var pcm bytes.Buffer
	for {
		_ = conn.SetReadDeadline(time.Now().Add(streamIdle))
		mt, data, err := conn.ReadMessage()
		if err != nil {
			logger.Debug("voice stream closed before stop", "error", err)
			return
		}
		if mt == websocket.BinaryMessage {
			if int64(pcm.Len()+len(data)) > s.maxUpload {
				s.writeStream(conn, errorResponse{Error: "recording too long", Kind: "bad_request"})
				return
			}
			pcm.Write(data)
			continue
		}
		if mt == websocket.TextMessage && strings.TrimSpace(string(data)) == "stop" {
			break
		}
	}

	clip := audio.StaticClip{ContentType: audio.ContentTypeWAV, SampleRate: rate}
	if pcm.Len() > 0 {
		clip.Data = audio.EncodeWAV(pcm.Bytes(), rate, 1, 2)
	}
	logger.Debug("voice stream complete", "pcm_bytes", pcm.Len())

	resp, err := s.runCycle(r, sess, pipeline.VoiceInput{Recognizer: s.deps.Recognizer, Audio: clip})
	if err != nil {
		_, body := outcome(err)
		s.writeStream(conn, body)
		return
	}
	s.writeStream(conn, resp)
}

func (s *Shell) writeStream(conn *websocket.Conn, v any) {
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(v); err != nil {
		slog.Warn("websocket write failed", "error", err)
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
