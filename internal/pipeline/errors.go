package pipeline

import (
	"errors"
	"fmt"

	"github.com/knowledgepipe/knowledgepipe/constants"
)

// StageError tags a pipeline failure with the stage it happened in, so the
// job record can say where processing stopped.
type StageError struct {
	Stage constants.Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func FetchError(err error) error   { return &StageError{Stage: constants.StageFetch, Err: err} }
func ExtractError(err error) error { return &StageError{Stage: constants.StageExtract, Err: err} }
func ChunkError(err error) error   { return &StageError{Stage: constants.StageChunk, Err: err} }
func EmbedError(err error) error   { return &StageError{Stage: constants.StageEmbed, Err: err} }
func PersistError(err error) error { return &StageError{Stage: constants.StagePersist, Err: err} }

// StageOf reports the stage an error carries, defaulting to PERSIST for
// untagged errors so a late failure is never reported as an early one.
func StageOf(err error) constants.Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return constants.StagePersist
}
