package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mirrorops/cloudiam/pkg/iam"
	"github.com/mirrorops/cloudiam/pkg/server"
)

// GroupsResponse represents the response from /groups
type GroupsResponse struct {
	Groups []iam.Group `json:"groups"`
}

// RegisterGroupsEndpoints registers the group listing endpoint
func RegisterGroupsEndpoints(s *server.Server, r *mux.Router) {
	r.HandleFunc("/groups", handleListGroups(s.Directory)).Methods("GET")
}

func handleListGroups(directory server.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := directory.ListGroups(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, "failed to list groups")
			return
		}
		if groups == nil {
			groups = []iam.Group{}
		}
		writeJSON(w, http.StatusOK, GroupsResponse{Groups: groups})
	}
}
