package social

// FollowErrorCode identifies why a follow request was refused.
type FollowErrorCode string

const (
	CodeUserNotFound         FollowErrorCode = "USER_NOT_FOUND"
	CodeSelfFollowDenied     FollowErrorCode = "SELF_FOLLOW_DENIED"
	CodeTargetBlockedByActor FollowErrorCode = "TARGET_BLOCKED_BY_ACTOR"
	CodeActorBlockedByTarget FollowErrorCode = "ACTOR_BLOCKED_BY_TARGET"
	CodeAlreadyFollowing     FollowErrorCode = "ALREADY_FOLLOWING"
)

// FollowError is a refused follow request. Message is safe to show to the actor.
type FollowError struct {
	Code    FollowErrorCode
	Message string
}

func (e *FollowError) Error() string {
	return e.Message
}

var (
	ErrUserNotFound = &FollowError{
		Code:    CodeUserNotFound,
		Message: "user not found",
	}
	ErrSelfFollowDenied = &FollowError{
		Code:    CodeSelfFollowDenied,
		Message: "you cannot follow yourself",
	}
	ErrTargetBlockedByActor = &FollowError{
		Code:    CodeTargetBlockedByActor,
		Message: "you blocked this user, unblock them before following",
	}
	ErrActorBlockedByTarget = &FollowError{
		Code:    CodeActorBlockedByTarget,
		Message: "this user blocked you, you cannot follow them",
	}
	ErrAlreadyFollowing = &FollowError{
		Code:    CodeAlreadyFollowing,
		Message: "you already follow this user",
	}
)
