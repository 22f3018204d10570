package api

import (
	"errors"
	"net/http"

	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/registration/service"
	model "github.com/confcloud/confhub/pkg/conference"
	"github.com/confcloud/confhub/pkg/logger"
)

var log = logger.New()

// RegistrationHandler handles HTTP requests for registration operations
type RegistrationHandler struct {
	service *service.Service
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(service *service.Service) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// RegisterForConference registers the caller for a conference
func (h *RegistrationHandler) RegisterForConference(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)
	conferenceKey := req.PathParameter("key")

	if err := h.service.Register(req.Request.Context(), identity, conferenceKey); err != nil {
		switch {
		case errors.Is(err, service.ErrConferenceNotFound):
			writeError(resp, http.StatusNotFound, "ConferenceNotFound", err.Error())
		case errors.Is(err, service.ErrAlreadyRegistered):
			writeError(resp, http.StatusConflict, "AlreadyRegistered", err.Error())
		case errors.Is(err, service.ErrNoSeatsAvailable):
			writeError(resp, http.StatusConflict, "NoSeatsAvailable", err.Error())
		default:
			writeError(resp, http.StatusInternalServerError, "RegisterError", err.Error())
		}
		return
	}

	resp.WriteEntity(&model.RegisterResult{Registered: true})
}

// UnregisterFromConference removes the caller's registration
func (h *RegistrationHandler) UnregisterFromConference(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)
	conferenceKey := req.PathParameter("key")

	ok, err := h.service.Unregister(req.Request.Context(), identity, conferenceKey)
	if err != nil {
		if errors.Is(err, service.ErrConferenceNotFound) {
			writeError(resp, http.StatusNotFound, "ConferenceNotFound", err.Error())
			return
		}
		writeError(resp, http.StatusInternalServerError, "UnregisterError", err.Error())
		return
	}

	resp.WriteEntity(&model.UnregisterResult{Unregistered: ok})
}

// GetConferencesToAttend returns the conferences the caller is registered for
func (h *RegistrationHandler) GetConferencesToAttend(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)

	result, err := h.service.Attending(req.Request.Context(), identity)
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "GetConferencesToAttendError", err.Error())
		return
	}

	resp.WriteEntity(result)
}

// writeError writes a registration error response
func writeError(resp *restful.Response, status int, code, message string) {
	if err := resp.WriteHeaderAndEntity(status, &model.ConferenceError{Code: code, Message: message}); err != nil {
		log.Warn("Failed to write error response: %v", err)
	}
}
