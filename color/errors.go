package color

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelNotFound is matched by errors reporting a missing component.
	ErrChannelNotFound = errors.New("color: channel not found")

	// ErrChannelMismatch is matched by errors reporting two different layouts
	// where one was required.
	ErrChannelMismatch = errors.New("color: channel mismatch")
)

// NotFoundError reports that Component is not part of Channel.
type NotFoundError struct {
	Channel   Channel
	Component Channel
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("color: channel %v not found in %v", e.Component, e.Channel)
}

// Is reports whether target is ErrChannelNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrChannelNotFound
}

// MismatchError reports two layouts that were expected to be equal.
type MismatchError struct {
	Want Channel
	Got  Channel
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("color: channel mismatch %v != %v", e.Want, e.Got)
}

// Is reports whether target is ErrChannelMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrChannelMismatch
}

// CheckSame returns a *MismatchError if got differs from want.
func CheckSame(want, got Channel) error {
	if want != got {
		return &MismatchError{Want: want, Got: got}
	}
	return nil
}
