package endpoints

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mirrorops/cloudiam/pkg/iam"
	"github.com/mirrorops/cloudiam/pkg/policy"
	"github.com/mirrorops/cloudiam/pkg/server"
)

// PoliciesResponse represents the response from /policies
type PoliciesResponse struct {
	Policies []policy.Policy `json:"policies"`
}

// RulesResponse represents the response from /policies/{id}/rules
type RulesResponse struct {
	Rules []policy.Rule `json:"rules"`
}

// EntitiesResponse represents the response from /policies/{id}/entities
type EntitiesResponse struct {
	Kind  string   `json:"kind"`
	Names []string `json:"names"`
}

// RegisterPoliciesEndpoints registers the policy read endpoints. Policy
// identifiers contain slashes and colons, so the routes take them
// percent-encoded.
func RegisterPoliciesEndpoints(s *server.Server, r *mux.Router) {
	directory := s.Directory
	r.HandleFunc("/policies", handleListPolicies(directory)).Methods("GET")
	r.HandleFunc("/policies/{id}", handleGetPolicy(directory)).Methods("GET")
	r.HandleFunc("/policies/{id}/rules", handleGetPolicyRules(directory)).Methods("GET")
	r.HandleFunc("/policies/{id}/entities", handleListPolicyEntities(directory)).Methods("GET")
}

func handleListPolicies(directory server.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter iam.ListFilter
		switch r.URL.Query().Get("scope") {
		case "provider":
			filter.Provider = true
		case "account":
			filter.Account = true
		case "":
			// both managed scopes
		default:
			writeError(w, http.StatusBadRequest, "scope must be provider or account")
			return
		}

		policies, err := directory.ListPolicies(r.Context(), filter)
		if err != nil {
			writeError(w, http.StatusBadGateway, "failed to list policies")
			return
		}
		if policies == nil {
			policies = []policy.Policy{}
		}
		writeJSON(w, http.StatusOK, PoliciesResponse{Policies: policies})
	}
}

func handleGetPolicy(directory server.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := policyID(w, r)
		if !ok {
			return
		}
		found, err := directory.GetPolicy(r.Context(), id, iam.Managed())
		if err != nil {
			writeError(w, http.StatusBadGateway, "failed to fetch policy")
			return
		}
		if found == nil {
			writeError(w, http.StatusNotFound, "policy not found")
			return
		}
		writeJSON(w, http.StatusOK, found)
	}
}

func handleGetPolicyRules(directory server.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := policyID(w, r)
		if !ok {
			return
		}
		rules, err := directory.GetPolicyRules(r.Context(), id, iam.Managed())
		if err != nil {
			writeError(w, http.StatusBadGateway, "failed to fetch policy rules")
			return
		}
		if rules == nil {
			writeError(w, http.StatusNotFound, "policy not found")
			return
		}
		writeJSON(w, http.StatusOK, RulesResponse{Rules: rules})
	}
}

func handleListPolicyEntities(directory server.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := policyID(w, r)
		if !ok {
			return
		}

		kind := policy.KindUser
		switch r.URL.Query().Get("kind") {
		case "", "user":
		case "group":
			kind = policy.KindGroup
		default:
			writeError(w, http.StatusBadRequest, "kind must be user or group")
			return
		}

		names, err := directory.ListEntitiesForPolicy(r.Context(), id, kind)
		if err != nil {
			writeError(w, http.StatusBadGateway, "failed to list policy entities")
			return
		}
		if names == nil {
			names = []string{}
		}
		writeJSON(w, http.StatusOK, EntitiesResponse{Kind: kind.String(), Names: names})
	}
}

// policyID decodes the {id} path segment. The router matches encoded
// paths, so the raw variable still carries its percent escapes.
func policyID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := url.PathUnescape(mux.Vars(r)["id"])
	if err != nil || id == "" {
		writeError(w, http.StatusBadRequest, "invalid policy id")
		return "", false
	}
	return id, true
}
