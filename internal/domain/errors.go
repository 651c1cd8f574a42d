package domain

import "errors"

var (
	// ErrQuizNotFound indicates no question set exists for the identifier.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrSummaryNotFound indicates no summary document exists for the identifier.
	ErrSummaryNotFound = errors.New("summary not found")
	// ErrCourseNotFound indicates an unknown course identifier.
	ErrCourseNotFound = errors.New("course not found")
	// ErrSessionNotFound is returned when a quiz session has not been started.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrEmptyQuestionSet is returned when a quiz session is started on a set
	// with no questions.
	ErrEmptyQuestionSet = errors.New("question set has no questions")
)
