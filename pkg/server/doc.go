// Package server provides the read-only HTTP facade over the provider
// directory.
//
// The server exposes users, groups and policies as JSON over
// gorilla/mux routes, with request logging via gorilla/handlers and
// bearer token authentication via the middleware subpackage. All
// routes are read-only; mutations go through the CLI.
package server
