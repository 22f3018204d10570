package api

import (
	"errors"
	"net/http"

	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/profile/service"
	"github.com/confcloud/confhub/pkg/logger"
	model "github.com/confcloud/confhub/pkg/profile"
)

var log = logger.New()

// ProfileHandler handles HTTP requests for profile operations
type ProfileHandler struct {
	service *service.Service
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service *service.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile returns the caller's profile, creating it on first touch
func (h *ProfileHandler) GetProfile(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)

	profile, err := h.service.Get(req.Request.Context(), identity)
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "GetProfileError", err.Error())
		return
	}

	resp.WriteEntity(profile)
}

// SaveProfile updates and returns the caller's profile
func (h *ProfileHandler) SaveProfile(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)

	var params model.UpdateParams
	if err := req.ReadEntity(&params); err != nil {
		writeError(resp, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	profile, err := h.service.Update(req.Request.Context(), identity, &params)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTeeShirtSize) {
			writeError(resp, http.StatusBadRequest, "InvalidTeeShirtSize", err.Error())
			return
		}
		writeError(resp, http.StatusInternalServerError, "SaveProfileError", err.Error())
		return
	}

	resp.WriteEntity(profile)
}

// writeError writes a profile error response
func writeError(resp *restful.Response, status int, code, message string) {
	if err := resp.WriteHeaderAndEntity(status, &model.ProfileError{Code: code, Message: message}); err != nil {
		log.Warn("Failed to write error response: %v", err)
	}
}
