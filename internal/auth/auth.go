// Package auth resolves the caller identity. Authentication itself is
// delegated to the fronting gateway, which is trusted to set the identity
// headers on every request it forwards.
package auth

import (
	"net/http"

	restful "github.com/emicklei/go-restful/v3"
)

const (
	emailHeader = "X-User-Email"
	nameHeader  = "X-User-Name"

	identityAttribute = "identity"
)

// Identity is the authenticated caller.
type Identity struct {
	Email string
	Name  string
}

// authError mirrors the per-domain error models on unauthorized requests.
type authError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Required is a route filter that rejects requests without an identity.
func Required(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	email := req.HeaderParameter(emailHeader)
	if email == "" {
		resp.WriteHeaderAndEntity(http.StatusUnauthorized, &authError{
			Code:    "Unauthorized",
			Message: "Authorization required",
		})
		return
	}

	req.SetAttribute(identityAttribute, Identity{
		Email: email,
		Name:  req.HeaderParameter(nameHeader),
	})
	chain.ProcessFilter(req, resp)
}

// FromRequest returns the identity resolved by Required.
func FromRequest(req *restful.Request) (Identity, bool) {
	identity, ok := req.Attribute(identityAttribute).(Identity)
	return identity, ok
}
