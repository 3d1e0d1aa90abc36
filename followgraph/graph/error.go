package graph

import "golang.org/x/xerrors"

var (
	// ErrSelfRelation is returned when a user attempts to follow or unfollow
	// themselves.
	ErrSelfRelation = xerrors.New("users cannot follow or unfollow themselves")

	// ErrInvalidIntervalState is returned when an edge history is found in a
	// shape that the follow/unfollow transitions cannot produce.
	ErrInvalidIntervalState = xerrors.New("invalid follow interval state")
)
