package model

import (
	"golang.org/x/xerrors"
)

/*
ErrEmptyTrainingData is returned when prediction is requested against a dataset without points
*/
var ErrEmptyTrainingData = xerrors.New("training data is empty")

/*
ErrDimensionMismatch is returned when a query is empty or its dimensionality
differs from the training data
*/
var ErrDimensionMismatch = xerrors.New("feature vector size mismatch")

/*
IsInvalidArgument reports whether err is caused by malformed input.
Such errors are deterministic, so retrying the same call never helps.
*/
func IsInvalidArgument(err error) bool {
	return xerrors.Is(err, ErrEmptyTrainingData) || xerrors.Is(err, ErrDimensionMismatch)
}
