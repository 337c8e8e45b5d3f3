// Package arn classifies structured resource identifiers by their
// owning-account segment, distinguishing resources owned by the account
// from resources published by the provider itself.
package arn
