package api

import (
	"net/http"

	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/announcement/service"
	model "github.com/confcloud/confhub/pkg/announcement"
	"github.com/confcloud/confhub/pkg/logger"
)

var log = logger.New()

// AnnouncementHandler handles HTTP requests for announcement operations
type AnnouncementHandler struct {
	service *service.Service
}

// NewAnnouncementHandler creates a new AnnouncementHandler
func NewAnnouncementHandler(service *service.Service) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// GetAnnouncement returns the current announcement, empty when none is set
func (h *AnnouncementHandler) GetAnnouncement(req *restful.Request, resp *restful.Response) {
	message, err := h.service.Get(req.Request.Context())
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "GetAnnouncementError", err.Error())
		return
	}

	resp.WriteEntity(&model.Announcement{Message: message})
}

// writeError writes an announcement error response
func writeError(resp *restful.Response, status int, code, message string) {
	if err := resp.WriteHeaderAndEntity(status, &model.AnnouncementError{Code: code, Message: message}); err != nil {
		log.Warn("Failed to write error response: %v", err)
	}
}
