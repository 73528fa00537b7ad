package domain

import "errors"

var (
	InvalidTier      = errors.New("invalid tier")
	ProfileNotFound  = errors.New("profile not found")
	ProfileExists    = errors.New("profile already exists")
	UnknownFeature   = errors.New("unknown feature")
	InvalidLLMOutput = errors.New("invalid llm output")
	InvalidInput     = errors.New("invalid input")
)
