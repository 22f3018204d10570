package api

import (
	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	model "github.com/confcloud/confhub/pkg/profile"
)

// RegisterRoutes registers all profile-related routes to the WebService
func RegisterRoutes(ws *restful.WebService, handler *ProfileHandler) {
	ws.Route(ws.GET("/profile").Filter(auth.Required).To(handler.GetProfile).
		Doc("get the caller's profile, creating a default one on first use").
		Returns(200, "OK", model.Profile{}).
		Returns(401, "Unauthorized", model.ProfileError{}).
		Returns(500, "Internal Server Error", model.ProfileError{}))

	ws.Route(ws.POST("/profile").Filter(auth.Required).To(handler.SaveProfile).
		Doc("update the caller's profile").
		Reads(model.UpdateParams{}).
		Returns(200, "OK", model.Profile{}).
		Returns(400, "Bad Request", model.ProfileError{}).
		Returns(401, "Unauthorized", model.ProfileError{}).
		Returns(500, "Internal Server Error", model.ProfileError{}))
}
