package api

import (
	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	model "github.com/confcloud/confhub/pkg/session"
)

// RegisterRoutes registers all wishlist-related routes to the WebService
func RegisterRoutes(ws *restful.WebService, handler *WishlistHandler) {
	ws.Route(ws.POST("/profile/wishlist/{sessionKey}").Filter(auth.Required).To(handler.AddToWishlist).
		Doc("add a session to the caller's wishlist").
		Param(ws.PathParameter("sessionKey", "identifier of the session").DataType("string")).
		Returns(200, "OK", model.AddResult{}).
		Returns(401, "Unauthorized", model.SessionError{}).
		Returns(404, "Not Found", model.SessionError{}).
		Returns(409, "Conflict", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))

	ws.Route(ws.GET("/profile/wishlist").Filter(auth.Required).To(handler.GetWishlist).
		Doc("list the sessions on the caller's wishlist").
		Returns(200, "OK", model.ListResult{}).
		Returns(401, "Unauthorized", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))

	ws.Route(ws.DELETE("/profile/wishlist/{sessionKey}").Filter(auth.Required).To(handler.RemoveFromWishlist).
		Doc("remove a session from the caller's wishlist").
		Param(ws.PathParameter("sessionKey", "identifier of the session").DataType("string")).
		Returns(200, "OK", model.RemoveResult{}).
		Returns(401, "Unauthorized", model.SessionError{}).
		Returns(404, "Not Found", model.SessionError{}).
		Returns(500, "Internal Server Error", model.SessionError{}))
}
