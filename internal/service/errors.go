package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoCredential          = errors.New("no session credential")
	ErrNoCache               = errors.New("favorites cache is not configured")
)
