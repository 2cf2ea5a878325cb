package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"globetrotter/internal/api/dto"
	"globetrotter/internal/domain"
	"globetrotter/internal/platform/obs"
	"globetrotter/internal/services"
)

type FinalizeHandler struct {
	Finalizer *services.RouteFinalizer
	// DefaultMode applies when a request names no travel mode.
	DefaultMode domain.TravelMode
	// AllowedOrigins lists browser origins (scheme://host[:port]) besides the
	// server's own host that may open the stream.
	AllowedOrigins []string
}

// Finalize computes road routes for every day of a confirmed plan.
func (h *FinalizeHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.FinalizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, mode, err := h.restore(req)
	if err != nil {
		writeServiceError(w, r, http.StatusBadRequest, "finalize routes", err)
		return
	}

	results, err := sess.Finalize(r.Context(), mode, req.ProceedWithoutHotel)
	if err != nil {
		writeServiceError(w, r, http.StatusInternalServerError, "finalize routes", err)
		return
	}

	res := dto.FinalizeResponse{Days: make([]dto.FinalDayResponse, 0, len(results))}
	for _, d := range results {
		res.Days = append(res.Days, dto.FinalDayFromDomain(d))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// checkOrigin admits clients that send no Origin header (non-browser), the
// server's own host and the configured origins.
func (h *FinalizeHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, o := range h.AllowedOrigins {
		if strings.EqualFold(strings.TrimSuffix(o, "/"), origin) {
			return true
		}
	}
	return false
}

type streamMessage struct {
	Type  string                `json:"type"`
	Day   *dto.FinalDayResponse `json:"day,omitempty"`
	Error string                `json:"error,omitempty"`
}

// Stream finalizes over a WebSocket. The client sends one finalize request;
// the server answers with one "day" message per day and a final "done" or
// "error" message. Closing the socket cancels the remaining days.
func (h *FinalizeHandler) Stream(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("req_id=%s finalize stream upgrade failed: %v", obs.RequestID(r.Context()), err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(1 << 20)
	_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))

	var req dto.FinalizeRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(streamMessage{Type: "error", Error: "invalid finalize request"})
		return
	}
	_ = conn.SetReadDeadline(time.Time{})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Any read error means the client went away.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	sess, mode, err := h.restore(req)
	if err != nil {
		_ = conn.WriteJSON(streamMessage{Type: "error", Error: err.Error()})
		return
	}

	err = sess.FinalizeEach(ctx, mode, req.ProceedWithoutHotel, func(d domain.FinalDayResult) error {
		day := dto.FinalDayFromDomain(d)
		return conn.WriteJSON(streamMessage{Type: "day", Day: &day})
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("req_id=%s finalize stream cancelled by client", obs.RequestID(r.Context()))
			return
		}
		msg := "internal server error"
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			msg = ve.Error()
		}
		_ = conn.WriteJSON(streamMessage{Type: "error", Error: msg})
		return
	}

	_ = conn.WriteJSON(streamMessage{Type: "done"})
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// restore rebuilds a session from the client-held plan.
func (h *FinalizeHandler) restore(req dto.FinalizeRequest) (*services.Session, domain.TravelMode, error) {
	mode := h.DefaultMode.OrDefault()
	if req.Mode != "" {
		m, err := domain.ParseTravelMode(req.Mode)
		if err != nil {
			return nil, "", err
		}
		mode = m
	}

	if len(req.Plan) == 0 {
		return nil, "", &domain.ValidationError{Field: "plan", Msg: "plan required"}
	}

	it := &domain.Itinerary{Days: make([]domain.DayPlan, 0, len(req.Plan))}
	for i, d := range req.Plan {
		day := d.ToDomain()
		if day.Day != i+1 {
			return nil, "", &domain.ValidationError{Field: "plan", Msg: "days must be numbered 1..n in order"}
		}
		for _, p := range day.Places {
			if !p.Valid() {
				return nil, "", &domain.ValidationError{Field: "plan", Msg: "invalid place coordinates"}
			}
		}
		it.Days = append(it.Days, day)
	}

	selected := make(map[int]domain.HotelCandidate, len(req.SelectedHotels))
	for day, hr := range req.SelectedHotels {
		selected[day] = hr.ToDomain()
	}

	sess, err := services.RestoreSession(h.Finalizer, it, selected)
	if err != nil {
		return nil, "", err
	}
	return sess, mode, nil
}
