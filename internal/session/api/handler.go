package api

import (
	"errors"
	"net/http"

	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/session/service"
	"github.com/confcloud/confhub/pkg/logger"
	model "github.com/confcloud/confhub/pkg/session"
)

var log = logger.New()

// SessionHandler handles HTTP requests for session operations
type SessionHandler struct {
	service *service.Service
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(service *service.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// CreateSession creates a new session under a conference
func (h *SessionHandler) CreateSession(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)
	conferenceKey := req.PathParameter("key")

	var params model.CreateParams
	if err := req.ReadEntity(&params); err != nil {
		writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	sess, err := h.service.Create(req.Request.Context(), identity, conferenceKey, &params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConferenceNotFound):
			writeError(resp, http.StatusNotFound, "ConferenceNotFound", err.Error())
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrInvalidDate),
			errors.Is(err, service.ErrInvalidTime):
			writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		default:
			writeError(resp, http.StatusInternalServerError, "CreateSessionError", err.Error())
		}
		return
	}

	resp.WriteHeaderAndEntity(http.StatusCreated, sess)
}

// GetConferenceSessions returns all sessions of a conference
func (h *SessionHandler) GetConferenceSessions(req *restful.Request, resp *restful.Response) {
	conferenceKey := req.PathParameter("key")

	result, err := h.service.ByConference(req.Request.Context(), conferenceKey)
	if err != nil {
		if errors.Is(err, service.ErrConferenceNotFound) {
			writeError(resp, http.StatusNotFound, "ConferenceNotFound", err.Error())
			return
		}
		writeError(resp, http.StatusInternalServerError, "GetSessionsError", err.Error())
		return
	}

	resp.WriteEntity(result)
}

// GetConferenceSessionsByType returns the sessions of a conference with the
// requested type
func (h *SessionHandler) GetConferenceSessionsByType(req *restful.Request, resp *restful.Response) {
	conferenceKey := req.PathParameter("key")

	var params model.TypeParams
	if err := req.ReadEntity(&params); err != nil {
		writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.ByType(req.Request.Context(), conferenceKey, params.Type)
	if err != nil {
		if errors.Is(err, service.ErrConferenceNotFound) {
			writeError(resp, http.StatusNotFound, "ConferenceNotFound", err.Error())
			return
		}
		writeError(resp, http.StatusInternalServerError, "GetSessionsError", err.Error())
		return
	}

	resp.WriteEntity(result)
}

// GetSessionsBySpeaker returns the speaker's sessions across conferences
func (h *SessionHandler) GetSessionsBySpeaker(req *restful.Request, resp *restful.Response) {
	var params model.SpeakerParams
	if err := req.ReadEntity(&params); err != nil {
		writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.BySpeaker(req.Request.Context(), params.Speaker)
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "GetSessionsError", err.Error())
		return
	}

	resp.WriteEntity(result)
}

// GetSessionsByDuration returns sessions within a duration range
func (h *SessionHandler) GetSessionsByDuration(req *restful.Request, resp *restful.Response) {
	var params model.DurationRange
	if err := req.ReadEntity(&params); err != nil {
		writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.ByDuration(req.Request.Context(), &params)
	h.writeRangeResult(resp, result, err)
}

// GetSessionsByDate returns sessions within a date range
func (h *SessionHandler) GetSessionsByDate(req *restful.Request, resp *restful.Response) {
	var params model.Range
	if err := req.ReadEntity(&params); err != nil {
		writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.ByDate(req.Request.Context(), &params)
	h.writeRangeResult(resp, result, err)
}

// GetSessionsByStartTime returns sessions within a start-time range
func (h *SessionHandler) GetSessionsByStartTime(req *restful.Request, resp *restful.Response) {
	var params model.Range
	if err := req.ReadEntity(&params); err != nil {
		writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.ByStartTime(req.Request.Context(), &params)
	h.writeRangeResult(resp, result, err)
}

// GetFeaturedSpeaker returns the cached featured-speaker entry of a
// conference
func (h *SessionHandler) GetFeaturedSpeaker(req *restful.Request, resp *restful.Response) {
	conferenceKey := req.PathParameter("key")

	featured, err := h.service.FeaturedSpeaker(req.Request.Context(), conferenceKey)
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "GetFeaturedSpeakerError", err.Error())
		return
	}

	resp.WriteEntity(featured)
}

func (h *SessionHandler) writeRangeResult(resp *restful.Response, result *model.ListResult, err error) {
	if err != nil {
		if errors.Is(err, service.ErrNegativeBound) ||
			errors.Is(err, service.ErrInvertedRange) ||
			errors.Is(err, service.ErrInvalidDate) ||
			errors.Is(err, service.ErrInvalidTime) {
			writeError(resp, http.StatusBadRequest, "InvalidRange", err.Error())
			return
		}
		writeError(resp, http.StatusInternalServerError, "GetSessionsError", err.Error())
		return
	}

	resp.WriteEntity(result)
}

// writeError writes a session error response
func writeError(resp *restful.Response, status int, code, message string) {
	if err := resp.WriteHeaderAndEntity(status, &model.SessionError{Code: code, Message: message}); err != nil {
		log.Warn("Failed to write error response: %v", err)
	}
}
