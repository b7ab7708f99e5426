package game

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the game engine. Match with errors.Is.
var (
	ErrInvalidGuess    = errors.New("invalid guess")
	ErrInvalidSolution = errors.New("invalid solution")
	ErrGameFinished    = errors.New("game finished")
	ErrLengthMismatch  = errors.New("length mismatch")
)

// InvalidGuessError reports a guess outside the vocabulary.
type InvalidGuessError struct {
	Guess string
}

func (e *InvalidGuessError) Error() string {
	return fmt.Sprintf("invalid guess %q: not in word list", e.Guess)
}

func (e *InvalidGuessError) Unwrap() error { return ErrInvalidGuess }

// InvalidSolutionError reports a solution outside the solution pool.
type InvalidSolutionError struct {
	Solution string
}

func (e *InvalidSolutionError) Error() string {
	return fmt.Sprintf("invalid solution %q: not an allowed solution", e.Solution)
}

func (e *InvalidSolutionError) Unwrap() error { return ErrInvalidSolution }

// FinishedError reports a guess submitted after the round ended.
type FinishedError struct {
	State State
}

func (e *FinishedError) Error() string {
	return fmt.Sprintf("game finished (%s): restart first", e.State)
}

func (e *FinishedError) Unwrap() error { return ErrGameFinished }
