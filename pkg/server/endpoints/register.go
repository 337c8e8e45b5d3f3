package endpoints

import (
	"github.com/mirrorops/cloudiam/pkg/server"
	"github.com/mirrorops/cloudiam/pkg/server/middleware"
)

// RegisterAll registers all API endpoints on the server. Every route
// except /status requires a bearer token signed with jwtSecret.
func RegisterAll(srv *server.Server, jwtSecret []byte) {
	RegisterStatusEndpoint(srv)

	verifier := middleware.NewTokenVerifier(jwtSecret)
	protected := srv.Router.NewRoute().Subrouter()
	protected.Use(verifier.Middleware)

	RegisterUsersEndpoints(srv, protected)
	RegisterGroupsEndpoints(srv, protected)
	RegisterPoliciesEndpoints(srv, protected)
}
