package api

import (
	"errors"
	"net/http"

	restful "github.com/emicklei/go-restful/v3"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/wishlist/service"
	"github.com/confcloud/confhub/pkg/logger"
	model "github.com/confcloud/confhub/pkg/session"
)

var log = logger.New()

// WishlistHandler handles HTTP requests for wishlist operations
type WishlistHandler struct {
	service *service.Service
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(service *service.Service) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// AddToWishlist puts a session on the caller's wishlist
func (h *WishlistHandler) AddToWishlist(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)
	sessionKey := req.PathParameter("sessionKey")

	if err := h.service.Add(req.Request.Context(), identity, sessionKey); err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			writeError(resp, http.StatusNotFound, "SessionNotFound", err.Error())
		case errors.Is(err, service.ErrAlreadyInWishlist):
			writeError(resp, http.StatusConflict, "AlreadyInWishlist", err.Error())
		default:
			writeError(resp, http.StatusInternalServerError, "AddToWishlistError", err.Error())
		}
		return
	}

	resp.WriteEntity(&model.AddResult{Added: true})
}

// GetWishlist returns the sessions on the caller's wishlist
func (h *WishlistHandler) GetWishlist(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)

	result, err := h.service.List(req.Request.Context(), identity)
	if err != nil {
		writeError(resp, http.StatusInternalServerError, "GetWishlistError", err.Error())
		return
	}

	resp.WriteEntity(result)
}

// RemoveFromWishlist takes a session off the caller's wishlist
func (h *WishlistHandler) RemoveFromWishlist(req *restful.Request, resp *restful.Response) {
	identity, _ := auth.FromRequest(req)
	sessionKey := req.PathParameter("sessionKey")

	removed, err := h.service.Remove(req.Request.Context(), identity, sessionKey)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(resp, http.StatusNotFound, "SessionNotFound", err.Error())
			return
		}
		writeError(resp, http.StatusInternalServerError, "RemoveFromWishlistError", err.Error())
		return
	}

	resp.WriteEntity(&model.RemoveResult{Removed: removed})
}

// writeError writes a wishlist error response
func writeError(resp *restful.Response, status int, code, message string) {
	if err := resp.WriteHeaderAndEntity(status, &model.SessionError{Code: code, Message: message}); err != nil {
		log.Warn("Failed to write error response: %v", err)
	}
}
