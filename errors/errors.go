package errors

import "fmt"

// Facade level conditions.
var (
	ErrProfileAlreadyExists      = fmt.Errorf("profile already exists (case insensitive)")
	ErrProfileNotFound           = fmt.Errorf("profile not found")
	ErrProfileDeactivated        = fmt.Errorf("profile deactivated")
	ErrProfileAlreadyDeactivated = fmt.Errorf("profile already deactivated")
	ErrInvalidNameFormat         = fmt.Errorf("username must be 1 to 15 non blank characters")
	ErrInvalidMessageFormat      = fmt.Errorf("message must be 1 to 140 non blank characters")
	ErrSelfFollow                = fmt.Errorf("profile cannot follow itself")
	ErrAlreadyFollowing          = fmt.Errorf("profile already followed")
	ErrTweetNotFound             = fmt.Errorf("tweet not found")
)

// Directory level conditions.
var (
	ErrAlreadyRegistered = fmt.Errorf("profile already registered")
	ErrNotRegistered     = fmt.Errorf("profile not registered")
)

var (
	ErrInvalidCommand   = fmt.Errorf("invalid command")
	ErrInvalidCharacter = fmt.Errorf("censor character must be a single rune")
)
