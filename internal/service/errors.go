package service

import "errors"

// Sentinel errors returned by the exam services. Controllers translate
// these with errors.Is; anything else surfaces as an internal error.
var (
	ErrAttemptNotFound       = errors.New("attempt not found")
	ErrInvalidQuestion       = errors.New("question does not belong to this attempt")
	ErrAlreadySubmitted      = errors.New("attempt already submitted")
	ErrAttemptExpired        = errors.New("time limit expired")
	ErrNoQuestionsAvailable  = errors.New("no questions available")
	ErrNoCompositionInferred = errors.New("cannot infer topic composition")
)
