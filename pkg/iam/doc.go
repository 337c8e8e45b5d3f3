// Package iam maps the vendor-neutral permission model onto the
// provider's identity service: principal CRUD, paginated listings, by-id
// principal resolution, and the policy operation surface that routes
// between managed and inline code paths.
package iam
