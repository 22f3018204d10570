package api

import (
	restful "github.com/emicklei/go-restful/v3"

	model "github.com/confcloud/confhub/pkg/announcement"
)

// RegisterRoutes registers all announcement-related routes to the WebService
func RegisterRoutes(ws *restful.WebService, handler *AnnouncementHandler) {
	ws.Route(ws.GET("/announcement").To(handler.GetAnnouncement).
		Doc("get the current near-sold-out announcement").
		Returns(200, "OK", model.Announcement{}).
		Returns(500, "Internal Server Error", model.AnnouncementError{}))
}
