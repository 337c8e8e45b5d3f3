package arn

import (
	"errors"
	"fmt"
	"strings"
)

// ProviderOwner is the reserved owner segment the provider uses for
// resources it publishes itself, such as its prebuilt managed policies.
const ProviderOwner = "aws"

// ErrMalformed is returned when an identifier does not have enough
// colon-delimited fields to carry an owner segment.
var ErrMalformed = errors.New("malformed resource identifier")

// ownerField is the 0-based position of the owning-account segment in a
// structured resource identifier (arn:partition:service:region:owner:rest).
const ownerField = 4

// Ownership is the classification derived from a structured identifier.
type Ownership struct {
	// Owner is the raw owning-account segment.
	Owner string
	// ProviderOwned is true when the owner segment is the provider's
	// reserved owner name.
	ProviderOwned bool
}

// Classify splits a structured resource identifier on ":" and classifies
// it by its owner segment. Identifiers with fewer than five fields fail
// with ErrMalformed; the caller must not guess at ownership.
func Classify(identifier string) (Ownership, error) {
	fields := strings.Split(identifier, ":")
	if len(fields) <= ownerField {
		return Ownership{}, fmt.Errorf("%w: %q has %d fields, need at least %d",
			ErrMalformed, identifier, len(fields), ownerField+1)
	}

	owner := fields[ownerField]
	return Ownership{
		Owner:         owner,
		ProviderOwned: strings.EqualFold(owner, ProviderOwner),
	}, nil
}
