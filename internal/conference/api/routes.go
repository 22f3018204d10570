package api

import (
	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	model "github.com/confcloud/confhub/pkg/conference"
)

// RegisterRoutes registers all conference-related routes to the WebService
func RegisterRoutes(ws *restful.WebService, handler *ConferenceHandler) {
	ws.Route(ws.POST("/conferences").Filter(auth.Required).To(handler.CreateConference).
		Doc("create a conference").
		Reads(model.CreateParams{}).
		Returns(201, "Created", model.Conference{}).
		Returns(400, "Bad Request", model.ConferenceError{}).
		Returns(401, "Unauthorized", model.ConferenceError{}).
		Returns(500, "Internal Server Error", model.ConferenceError{}))

	ws.Route(ws.GET("/conferences/created").Filter(auth.Required).To(handler.GetConferencesCreated).
		Doc("list conferences organized by the caller").
		Returns(200, "OK", model.ListResult{}).
		Returns(401, "Unauthorized", model.ConferenceError{}).
		Returns(500, "Internal Server Error", model.ConferenceError{}))

	ws.Route(ws.GET("/conferences/{key}").To(handler.GetConference).
		Doc("get a conference by key").
		Param(ws.PathParameter("key", "identifier of the conference").DataType("string")).
		Returns(200, "OK", model.Conference{}).
		Returns(404, "Not Found", model.ConferenceError{}).
		Returns(500, "Internal Server Error", model.ConferenceError{}))

	ws.Route(ws.POST("/conferences/query").To(handler.QueryConferences).
		Doc("query conferences with field filters").
		Reads(model.QueryParams{}).
		Returns(200, "OK", model.ListResult{}).
		Returns(400, "Bad Request", model.ConferenceError{}).
		Returns(500, "Internal Server Error", model.ConferenceError{}))
}
