package service

import "errors"

var (
	ErrHomeDirUnavailable = errors.New("could not retrieve home directory")

	ErrNoConfigurationStorage = errors.New("no configuration storage provided")
)
