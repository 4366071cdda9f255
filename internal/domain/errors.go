package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrState      = errors.New("state error")
)

var (
	ErrEmptyTitle     = fmt.Errorf("%w: title must be a non-empty string", ErrValidation)
	ErrUsernameLength = fmt.Errorf("%w: username must be between %d and %d characters long", ErrValidation, minUsernameLen, maxUsernameLen)
	ErrScoreRange     = fmt.Errorf("%w: score must be between %d and %d", ErrValidation, MinScore, MaxScore)
	ErrNilPlayer      = fmt.Errorf("%w: result must reference a player", ErrValidation)
	ErrNilGame        = fmt.Errorf("%w: result must reference a game", ErrValidation)

	ErrTitleAlreadySet = fmt.Errorf("%w: title cannot be changed once set", ErrState)
	ErrScoreAlreadySet = fmt.Errorf("%w: score cannot be changed once set", ErrState)
)
