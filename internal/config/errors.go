package config

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNoProjects    = errors.New("configuration declares no projects")
)
