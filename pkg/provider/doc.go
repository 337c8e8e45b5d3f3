// Package provider is the call boundary to the cloud provider: a Caller
// interface, the production HTTP Query API transport behind it, and the
// typed error the provider's failures are reported through.
package provider
