package service

import "errors"

var (
	// ErrInvalidInvite is returned when the registration invite code is wrong
	ErrInvalidInvite = errors.New("invalid invite code")
	// ErrDuplicateUsername is returned when the username is taken
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail is returned when the email is taken
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidCredentials is returned on a username or password mismatch
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordTooLong is returned when a new password exceeds the hashable length
	ErrPasswordTooLong = errors.New("password must not exceed 72 bytes")
	// ErrUserNotFound is returned when an authenticated subject no longer exists
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateCode is returned when the short code is taken
	ErrDuplicateCode = errors.New("short code already exists")
	// ErrInvalidCode is returned when a requested short code is malformed or reserved
	ErrInvalidCode = errors.New("invalid short code")
	// ErrLinkNotFound is returned when the short link does not exist
	ErrLinkNotFound = errors.New("short link not found")
	// ErrLinkExpired is returned when the short link has expired
	ErrLinkExpired = errors.New("short link has expired")
	// ErrForbidden is returned when the caller does not own the link
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidDate is returned when a date cannot be parsed
	ErrInvalidDate = errors.New("invalid date format")
)
