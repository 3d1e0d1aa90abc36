package graph

// UserID identifies a user of the social network. Users exist implicitly;
// there is no registration step.
type UserID uint64

// Version identifies a point in the relationship history. Versions start at
// zero and are only advanced by Commit.
type Version uint64

// Edge is a directed follow relationship.
type Edge struct {
	Follower UserID
	Followee UserID
}

// Graph is implemented by objects that can mutate and query a versioned
// follow graph.
type Graph interface {
	// Follow records that follower follows followee as of the current,
	// not-yet-committed version. It returns true if a new follow interval
	// was created.
	Follow(follower, followee UserID) (bool, error)

	// Unfollow ends the active follow relationship between follower and
	// followee as of the current version. It returns false if there was
	// no active relationship.
	Unfollow(follower, followee UserID) (bool, error)

	// IsFollowing reports whether follower follows followee at the
	// current version.
	IsFollowing(follower, followee UserID) bool

	// IsFollowingAt reports whether follower followed followee at the
	// specified version. Versions past the current version always yield
	// false.
	IsFollowingAt(follower, followee UserID, version Version) bool

	// Followers returns the users currently following user.
	Followers(user UserID) []UserID

	// Followees returns the users currently followed by user.
	Followees(user UserID) []UserID

	// FollowerCount returns the number of users currently following user.
	FollowerCount(user UserID) int

	// FolloweeCount returns the number of users currently followed by user.
	FolloweeCount(user UserID) int

	// History returns a copy of the follow intervals recorded for the edge
	// from follower to followee in the order they were created.
	History(follower, followee UserID) []Interval

	// Commit seals the current version and returns the new one.
	Commit() Version

	// CurrentVersion returns the current version.
	CurrentVersion() Version
}
