package services

import (
	"fmt"
	"mytwitter/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Lengths are counted in runes, after trimming.
type ProfileRequest struct {
	Username string `validate:"min=1,max=15"`
}

type TweetRequest struct {
	Text string `validate:"min=1,max=140"`
}

func ValidateUsername(username string) error {
	if err := validate.Struct(ProfileRequest{Username: username}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidNameFormat, err)
	}
	return nil
}

func ValidateTweet(text string) error {
	if err := validate.Struct(TweetRequest{Text: text}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidMessageFormat, err)
	}
	return nil
}
