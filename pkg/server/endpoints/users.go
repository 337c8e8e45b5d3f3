package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mirrorops/cloudiam/pkg/iam"
	"github.com/mirrorops/cloudiam/pkg/server"
)

// UsersResponse represents the response from /users
type UsersResponse struct {
	Users []iam.User `json:"users"`
}

// RegisterUsersEndpoints registers the user listing endpoint
func RegisterUsersEndpoints(s *server.Server, r *mux.Router) {
	r.HandleFunc("/users", handleListUsers(s.Directory)).Methods("GET")
}

func handleListUsers(directory server.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := directory.ListUsers(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, "failed to list users")
			return
		}
		if users == nil {
			users = []iam.User{}
		}
		writeJSON(w, http.StatusOK, UsersResponse{Users: users})
	}
}
