package domain_social

import "errors"

var (
	ErrSelfTarget       = errors.New("cannot target yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrDuplicateRequest = errors.New("a pending friend request already exists")
	ErrRequestNotFound  = errors.New("friend request not found")
	ErrNotRecipient     = errors.New("only the recipient can resolve a request")
	ErrRequestResolved  = errors.New("friend request already resolved")
	ErrNotAdmin         = errors.New("admin access required")
)
