// Package sigv4 implements the provider's Signature Version 4 request
// signing scheme on the standard library's HMAC-SHA256 primitives.
package sigv4
