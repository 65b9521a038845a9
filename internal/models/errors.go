package models

import "errors"

var (
	ErrMissingOwner     = errors.New("owner mapping not found")
	ErrMalformedMatchup = errors.New("matchup must have exactly two owners")
	ErrMissingScore     = errors.New("owner has no weekly score")
	ErrUnknownSortKey   = errors.New("unknown sort key")
	ErrOwnerNotFound    = errors.New("no owner matches name")
)
