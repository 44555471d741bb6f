package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"sirs/internal/audit"
	"sirs/internal/score"
	"sirs/internal/score/assessor"
	"sirs/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 64 * 1024

// scoreRequest is the body of POST /api/v1/scores. Session is optional; a
// new one is issued when it is empty.
type scoreRequest struct {
	Session string         `json:"session" validate:"omitempty,max=64,printascii,excludesall=/?#"`
	Profile score.Document `json:"profile"`
}

type scoreResponse struct {
	Session    string              `json:"session"`
	Result     score.Result        `json:"result"`
	Assessment assessor.Assessment `json:"assessment"`
	AnnualWage float64             `json:"annualWage"`
	// Delta is the total difference to the previous estimate of the session.
	Delta *int `json:"delta,omitempty"`
}

// ApiV1Router manages the routes of API version 1.
type ApiV1Router struct {
	assessor *assessor.Assessor
	sessions *session.Repository
	recorder audit.Recorder
	validate *validator.Validate
	// static is a directory served under /static/. Empty disables it.
	static string
	now    func() time.Time
}

// Mux returns a *http.ServeMux with the registered handlers:
//   - POST /api/v1/scores computes a score
//   - GET /api/v1/sessions/{session}/scores returns the session history
//   - GET /api/v1/rubric returns the point schedule
//   - GET /static/... serves static files (if enabled)
func (ar *ApiV1Router) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/scores", ar.scoreHandler)
	mux.HandleFunc("GET /api/v1/sessions/{session}/scores", ar.historyHandler)
	mux.HandleFunc("GET /api/v1/rubric", ar.rubricHandler)

	if len(ar.static) != 0 {
		fs := http.FileServer(http.Dir(ar.static))
		mux.Handle("GET /static/", http.StripPrefix("/static/", fs))
	}

	return mux
}

// scoreHandler computes the score of the posted profile. Category codes are
// never rejected; unknown ones score as the lowest member. Only a malformed
// body or session token is refused with 422.
func (ar *ApiV1Router) scoreHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		slog.Warn("Unable to read score request body", "error", err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	var request scoreRequest
	err = json.Unmarshal(body, &request)
	if err != nil {
		slog.Warn("Unable to unmarshal score request body", "error", err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	err = ar.validate.Struct(request)
	if err != nil {
		slog.Warn("Invalid score request", "error", err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	if request.Session == "" {
		request.Session = uuid.NewString()
	}

	profile := request.Profile.Profile()
	result := score.Compute(profile)

	response := scoreResponse{
		Session:    request.Session,
		Result:     result,
		Assessment: ar.assessor.Assess(result),
		AnnualWage: score.AnnualWage(profile.HourlyWage),
	}

	previous, found := ar.sessions.Append(request.Session, session.Estimate{
		Time:    ar.now(),
		Profile: request.Profile,
		Result:  result,
	})
	if found {
		delta := result.Total - previous.Result.Total
		response.Delta = &delta
	}
	ar.recorder.Record(request.Session, request.Profile, result)

	writeJSON(w, response)
}

// historyHandler returns the estimates of a session, oldest first, or 404.
func (ar *ApiV1Router) historyHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("session")

	history, err := ar.sessions.Get(id)
	if err != nil {
		var notFound *session.NotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("Session not found", "session", id)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		slog.Error("Unable to load session", "session", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, history)
}

func (ar *ApiV1Router) rubricHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, score.Rubric())
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("Unable to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		slog.Warn("Unable to write response", "error", err)
	}
}

// NewApiV1Router creates the API v1 router. A nil recorder disables
// auditing.
func NewApiV1Router(
	static string,
	ranker *assessor.Assessor,
	sessions *session.Repository,
	recorder audit.Recorder,
) *ApiV1Router {
	if recorder == nil {
		recorder = audit.Discard
	}

	return &ApiV1Router{
		assessor: ranker,
		sessions: sessions,
		recorder: recorder,
		validate: validator.New(),
		static:   static,
		now:      time.Now,
	}
}
