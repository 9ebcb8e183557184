package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced by the service layer. Handlers translate these to
// HTTP statuses; nothing below the handler layer knows about HTTP.
var (
	// not found
	ErrUserNotFound         = errors.New("user not found")
	ErrPromptNotFound       = errors.New("prompt not found")
	ErrRatingNotFound       = errors.New("rating not found")
	ErrBookmarkNotFound     = errors.New("bookmark not found")
	ErrFolderNotFound       = errors.New("bookmark folder not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// conflict
	ErrRatingAlreadyExists = errors.New("rating already exists for this prompt")
	ErrAlreadyFollowing    = errors.New("already following this user")
	ErrNotFollowing        = errors.New("not following this user")
	ErrFolderNameTaken     = errors.New("folder name already exists")
	ErrEmailTaken          = errors.New("email already registered")
	ErrNicknameTaken       = errors.New("nickname already taken")

	// forbidden
	ErrSelfRating               = errors.New("cannot rate your own prompt")
	ErrSelfFollow               = errors.New("cannot follow yourself")
	ErrSelfBookmark             = errors.New("cannot bookmark your own prompt")
	ErrRatingAccessDenied       = errors.New("rating belongs to another user")
	ErrPromptAccessDenied       = errors.New("prompt belongs to another user")
	ErrNotificationAccessDenied = errors.New("notification belongs to another user")

	// invalid input
	ErrInvalidScore       = errors.New("score must be between 1 and 5")
	ErrCommentTooLong     = errors.New("comment exceeds 1000 characters")
	ErrInvalidCategory    = errors.New("unknown prompt category")
	ErrFolderLimitReached = errors.New("bookmark folder limit reached")
)

// translateDuplicate maps a unique-index violation to the domain conflict
// sentinel. Existence pre-checks catch the common case; this catches the
// loser of a concurrent insert race.
func translateDuplicate(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return err
}

// isNotFound reports whether err is a gorm record-not-found
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
