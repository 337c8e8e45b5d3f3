package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mirrorops/cloudiam/pkg/iam"
	"github.com/mirrorops/cloudiam/pkg/policy"
)

// Directory is the read surface the endpoints serve. *iam.Client
// satisfies it; tests use fakes.
type Directory interface {
	ListUsers(ctx context.Context) ([]iam.User, error)
	ListGroups(ctx context.Context) ([]iam.Group, error)
	ListPolicies(ctx context.Context, filter iam.ListFilter) ([]policy.Policy, error)
	GetPolicy(ctx context.Context, id string, target iam.Target) (*policy.Policy, error)
	GetPolicyRules(ctx context.Context, id string, target iam.Target) ([]policy.Rule, error)
	ListEntitiesForPolicy(ctx context.Context, policyID string, kind policy.Kind) ([]string, error)
}

type Server struct {
	Directory Directory
	Router    *mux.Router
	srv       *http.Server
}

func NewServer(
	directory Directory,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Directory: directory,
		Router:    router,
		srv:       srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
