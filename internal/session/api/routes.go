package api

import (
	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	model "github.com/confcloud/confhub/pkg/session"
)

// RegisterRoutes registers all session-related routes to the WebService
func RegisterRoutes(ws *restful.WebService, handler *SessionHandler) {
	ws.Route(ws.POST("/conferences/{key}/sessions").Filter(auth.Required).To(handler.CreateSession).
		Doc("create a session in a conference").
		Param(ws.PathParameter("key", "identifier of the conference").DataType("string")).
		Reads(model.CreateParams{}).
		Returns(201, "Created", model.Session{}).
		Returns(400, "Bad Request", model.SessionError{}).
		Returns(401, "Unauthorized", model.SessionError{}).
		Returns(404, "Not Found", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))

	ws.Route(ws.GET("/conferences/{key}/sessions").To(handler.GetConferenceSessions).
		Doc("list all sessions of a conference").
		Param(ws.PathParameter("key", "identifier of the conference").DataType("string")).
		Returns(200, "OK", model.ListResult{}).
		Returns(404, "Not Found", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))

	ws.Route(ws.POST("/conferences/{key}/sessions/by-type").To(handler.GetConferenceSessionsByType).
		Doc("list sessions of a conference with a given type").
		Param(ws.PathParameter("key", "identifier of the conference").DataType("string")).
		Reads(model.TypeParams{}).
		Returns(200, "OK", model.ListResult{}).
		Returns(400, "Bad Request", model.SessionError{}).
		Returns(404, "Not Found", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))

	ws.Route(ws.GET("/conferences/{key}/featured-speaker").To(handler.GetFeaturedSpeaker).
		Doc("get the featured speaker of a conference").
		Param(ws.PathParameter("key", "identifier of the conference").DataType("string")).
		Returns(200, "OK", model.FeaturedSpeaker{}).
		Returns(500, "Internal Server Error", model.SessionError{}))

	ws.Route(ws.POST("/sessions/by-speaker").To(handler.GetSessionsBySpeaker).
		Doc("list sessions held by a speaker across conferences").
		Reads(model.SpeakerParams{}).
		Returns(200, "OK", model.ListResult{}).
		Returns(400, "Bad Request", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))

	ws.Route(ws.POST("/sessions/by-duration").To(handler.GetSessionsByDuration).
		Doc("list sessions within a duration range in minutes").
		Reads(model.DurationRange{}).
		Returns(200, "OK", model.ListResult{}).
		Returns(400, "Bad Request", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))

	ws.Route(ws.POST("/sessions/by-date").To(handler.GetSessionsByDate).
		Doc("list sessions within a date range").
		Reads(model.Range{}).
		Returns(200, "OK", model.ListResult{}).
		Returns(400, "Bad Request", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))

	ws.Route(ws.POST("/sessions/by-start-time").To(handler.GetSessionsByStartTime).
		Doc("list sessions within a start-time range").
		Reads(model.Range{}).
		Returns(200, "OK", model.ListResult{}).
		Returns(400, "Bad Request", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))
}
