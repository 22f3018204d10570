package api

import (
	"errors"
	"net/http"

	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/conference/service"
	model "github.com/confcloud/confhub/pkg/conference"
	"github.com/confcloud/confhub/pkg/logger"
	"github.com/confcloud/confhub/pkg/query"
)

var log = logger.New()

// ConferenceHandler handles HTTP requests for conference operations
type ConferenceHandler struct {
	service *service.Service
}

// NewConferenceHandler creates a new ConferenceHandler
func NewConferenceHandler(service *service.Service) *ConferenceHandler {
	return &ConferenceHandler{service: service}
}

// CreateConference creates a new conference organized by the caller
func (h *ConferenceHandler) CreateConference(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)

	var params model.CreateParams
	if err := req.ReadEntity(&params); err != nil {
		writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	conference, err := h.service.Create(req.Request.Context(), identity, &params)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) || errors.Is(err, service.ErrInvalidDate) {
			writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
			return
		}
		writeError(resp, http.StatusInternalServerError, "CreateConferenceError", err.Error())
		return
	}

	resp.WriteHeaderAndEntity(http.StatusCreated, conference)
}

// GetConference returns a conference by key
func (h *ConferenceHandler) GetConference(req *restful.Request, resp *restful.Response) {
	key := req.PathParameter("key")

	conference, err := h.service.Get(req.Request.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrConferenceNotFound) {
			writeError(resp, http.StatusNotFound, "ConferenceNotFound", err.Error())
			return
		}
		writeError(resp, http.StatusInternalServerError, "GetConferenceError", err.Error())
		return
	}

	resp.WriteEntity(conference)
}

// GetConferencesCreated returns the conferences organized by the caller
func (h *ConferenceHandler) GetConferencesCreated(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)

	result, err := h.service.CreatedBy(req.Request.Context(), identity)
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "GetConferencesCreatedError", err.Error())
		return
	}

	resp.WriteEntity(result)
}

// QueryConferences runs a filtered conference query
func (h *ConferenceHandler) QueryConferences(req *restful.Request, resp *restful.Response) {
	var params model.QueryParams
	if err := req.ReadEntity(&params); err != nil {
		writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.Query(req.Request.Context(), &params)
	if err != nil {
		var invalidErr *query.InvalidFilterError
		var multiErr *query.MultipleInequalityFieldsError
		switch {
		case errors.As(err, &invalidErr):
			writeError(resp, http.StatusBadRequest, "InvalidFilter", err.Error())
		case errors.As(err, &multiErr):
			writeError(resp, http.StatusBadRequest, "MultipleInequalityFields", err.Error())
		default:
			writeError(resp, http.StatusInternalServerError, "QueryConferencesError", err.Error())
		}
		return
	}

	resp.WriteEntity(result)
}

// writeError writes a conference error response
func writeError(resp *restful.Response, status int, code, message string) {
	if err := resp.WriteHeaderAndEntity(status, &model.ConferenceError{Code: code, Message: message}); err != nil {
		log.Warn("Failed to write error response: %v", err)
	}
}
