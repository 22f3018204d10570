package api

import (
	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	model "github.com/confcloud/confhub/pkg/conference"
)

// RegisterRoutes registers all registration-related routes to the WebService
func RegisterRoutes(ws *restful.WebService, handler *RegistrationHandler) {
	// must come before the /conferences/{key} routes
	ws.Route(ws.GET("/conferences/attending").Filter(auth.Required).To(handler.GetConferencesToAttend).
		Doc("list the conferences the caller is registered for").
		Returns(200, "OK", model.ListResult{}).
		Returns(401, "Unauthorized", model.ConferenceError{}).
		Returns(500, "Internal Server Error", model.ConferenceError{}))

	ws.Route(ws.POST("/conferences/{key}/registration").Filter(auth.Required).To(handler.RegisterForConference).
		Doc("register the caller for a conference").
		Param(ws.PathParameter("key", "identifier of the conference").DataType("string")).
		Returns(200, "OK", model.RegisterResult{}).
		Returns(401, "Unauthorized", model.ConferenceError{}).
		Returns(404, "Not Found", model.ConferenceError{}).
		Returns(409, "Conflict", model.ConferenceError{}).
		Returns(500, "Internal Server Error", model.ConferenceError{}))

	ws.Route(ws.DELETE("/conferences/{key}/registration").Filter(auth.Required).To(handler.UnregisterFromConference).
		Doc("remove the caller's registration for a conference").
		Param(ws.PathParameter("key", "identifier of the conference").DataType("string")).
		Returns(200, "OK", model.UnregisterResult{}).
		Returns(401, "Unauthorized", model.ConferenceError{}).
		Returns(404, "Not Found", model.ConferenceError{}).
		Returns(500, "Internal Server Error", model.ConferenceError{}))
}
