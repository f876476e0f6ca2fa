package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/format"
	"github.com/aashnajoshi/TextSense/internal/langid"
	"github.com/aashnajoshi/TextSense/internal/pipeline"
	"github.com/aashnajoshi/TextSense/internal/sentiment"
)

type textRequest struct {
	Text string `json:"text"`
}

type translateRequest struct {
	Target string `json:"target"`
}

type analyzeResponse struct {
	Source    string           `json:"source"`
	Text      string           `json:"text"`
	Lines     []string         `json:"lines,omitempty"`
	Language  langid.Language  `json:"language"`
	Sentiment string           `json:"sentiment"`
	Scores    sentiment.Scores `json:"confidence_scores"`
	Display   []string         `json:"display"`
}

type translateResponse struct {
	Skipped          bool            `json:"skipped,omitempty"`
	Target           string          `json:"target,omitempty"`
	Text             string          `json:"text,omitempty"`
	DetectedLanguage langid.Language `json:"detected_language"`
	Display          []string        `json:"display,omitempty"`
}

type sessionResponse struct {
	HasSubject bool             `json:"has_subject"`
	Analysis   *analyzeResponse `json:"analysis,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// handleAnalyzeText processes POST /api/analyze/text.
//
// @Summary     Analyze typed text
// @Description Classifies the sentiment of typed text and stores it as the session subject.
// @Tags        analyze
// @Accept      json
// @Produce     json
// @Param       request  body      textRequest  true  "Text to analyze"
// @Success     200  {object}  analyzeResponse
// @Failure     400  {object}  errorResponse  "Malformed request"
// @Failure     422  {object}  errorResponse  "No content"
// @Failure     502  {object}  errorResponse  "Remote fault"
// @Router      /analyze/text [post]
func (s *Shell) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, s.maxUpload)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid json: "+err.Error())
		return
	}
	s.analyze(w, r, pipeline.TextInput{Text: req.Text})
}

// handleAnalyzeImage processes POST /api/analyze/image.
//
// @Summary     Analyze the text in an image
// @Description Reads the text in an uploaded image, then classifies its sentiment.
// @Description Only jpg, jpeg and png uploads are accepted.
// @Tags        analyze
// @Accept      mpfd
// @Produce     json
// @Param       image  formData  file  true  "Image file"
// @Success     200  {object}  analyzeResponse
// @Failure     400  {object}  errorResponse  "Malformed upload"
// @Failure     422  {object}  errorResponse  "No content"
// @Failure     502  {object}  errorResponse  "Remote fault"
// @Router      /analyze/image [post]
func (s *Shell) handleAnalyzeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+(1<<20))
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid upload: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	in := pipeline.ImageInput{
		Reader:     s.deps.Reader,
		Extensions: pipeline.ImageExtensions,
		MaxBytes:   s.maxUpload,
	}
	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		writeError(w, http.StatusBadRequest, "bad_request", "invalid upload: "+err.Error())
		return
	default:
		in.Open = func() (io.ReadCloser, string, error) { return file, header.Filename, nil }
	}
	s.analyze(w, r, in)
}

// handleAnalyzeVoice processes POST /api/analyze/voice.
//
// @Summary     Analyze a recorded utterance
// @Description Recognizes a recorded 16-bit PCM WAV utterance, then classifies its sentiment.
// @Tags        analyze
// @Accept      audio/wav
// @Produce     json
// @Success     200  {object}  analyzeResponse
// @Failure     400  {object}  errorResponse  "Not a PCM WAV file"
// @Failure     422  {object}  errorResponse  "No speech recognized"
// @Failure     502  {object}  errorResponse  "Remote fault"
// @Router      /analyze/voice [post]
func (s *Shell) handleAnalyzeVoice(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, s.maxUpload+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "reading audio: "+err.Error())
		return
	}
	if int64(len(data)) > s.maxUpload {
		writeError(w, http.StatusRequestEntityTooLarge, "bad_request", fmt.Sprintf("recording exceeds %d bytes", s.maxUpload))
		return
	}
	wav, err := audio.ParseWAV(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	s.analyze(w, r, pipeline.VoiceInput{
		Recognizer: s.deps.Recognizer,
		Audio:      audio.StaticClip{Data: data, ContentType: audio.ContentTypeWAV, SampleRate: wav.SampleRate},
	})
}

// handleTranslate processes POST /api/translate.
//
// @Summary     Translate the session subject
// @Description Translates the session subject. The target "q" skips translation.
// @Tags        translate
// @Accept      json
// @Produce     json
// @Param       request  body      translateRequest  true  "Target language"
// @Success     200  {object}  translateResponse
// @Failure     400  {object}  errorResponse  "Malformed request"
// @Failure     422  {object}  errorResponse  "Nothing to translate"
// @Failure     502  {object}  errorResponse  "Remote fault"
// @Router      /translate [post]
func (s *Shell) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid json: "+err.Error())
		return
	}

	sess, cookie := s.sessions.get(r)
	if cookie != nil {
		http.SetCookie(w, cookie)
	}

	rec := &pipeline.Recorder{}
	t, err := s.deps.Pipeline.Translate(r.Context(), sess, req.Target, rec)
	if errors.Is(err, pipeline.ErrSkipped) {
		writeJSON(w, http.StatusOK, translateResponse{Skipped: true})
		return
	}
	if err != nil {
		writeOutcome(w, err)
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{
		Target:           t.Target,
		Text:             t.Result.Text,
		DetectedLanguage: t.Source,
		Display:          format.Translation(*t),
	})
}

// handleSession processes GET /api/session.
//
// @Summary     Show the session subject
// @Description Returns the current subject and its analysis, if any.
// @Tags        session
// @Produce     json
// @Success     200  {object}  sessionResponse
// @Router      /session [get]
func (s *Shell) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, cookie := s.sessions.get(r)
	if cookie != nil {
		http.SetCookie(w, cookie)
	}
	a, ok := sess.Analysis()
	if !ok {
		writeJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	resp := toAnalyzeResponse(pipeline.Acquisition{Source: a.Subject.Source, Text: a.Subject.Text}, a)
	writeJSON(w, http.StatusOK, sessionResponse{HasSubject: true, Analysis: &resp})
}

// analyze runs one cycle for the request's session and writes the outcome.
func (s *Shell) analyze(w http.ResponseWriter, r *http.Request, in pipeline.Acquirer) {
	sess, cookie := s.sessions.get(r)
	if cookie != nil {
		http.SetCookie(w, cookie)
	}

	resp, err := s.runCycle(r, sess, in)
	if err != nil {
		writeOutcome(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Shell) runCycle(r *http.Request, sess *pipeline.Session, in pipeline.Acquirer) (*analyzeResponse, error) {
	rec := &pipeline.Recorder{}
	a, err := s.deps.Pipeline.Analyze(r.Context(), sess, in, rec)
	if err != nil {
		return nil, err
	}
	resp := toAnalyzeResponse(*rec.Acquisition, *a)
	return &resp, nil
}

func toAnalyzeResponse(acq pipeline.Acquisition, a pipeline.Analysis) analyzeResponse {
	display := append(format.Acquired(acq), format.Analysis(a)...)
	return analyzeResponse{
		Source:    acq.Source,
		Text:      acq.Text,
		Lines:     acq.Lines,
		Language:  a.Language,
		Sentiment: a.Sentiment.Label,
		Scores:    a.Sentiment.Scores,
		Display:   display,
	}
}

// outcome maps a pipeline error to its status and body.
func outcome(err error) (int, errorResponse) {
	if reason := pipeline.Reason(err); reason != "" {
		return http.StatusUnprocessableEntity, errorResponse{Error: reason, Kind: "no_content"}
	}
	slog.Error("request failed", "error", err)
	return http.StatusBadGateway, errorResponse{Error: err.Error(), Kind: "fault"}
}

func writeOutcome(w http.ResponseWriter, err error) {
	status, body := outcome(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}
