package model

import (
	"go-ml.dev/pkg/nearest/fu"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
)

/*
PredictionModel is a predictor interface
*/
type PredictionModel interface {
	// Predict returns the label of a feature vector
	Predict(FeatureVector) (Label, error)
}

/*
Nearest is the nearest neighbor classifier bound to its training data
*/
type Nearest struct {
	Dataset Dataset
}

func (m Nearest) Predict(query FeatureVector) (Label, error) {
	return PredictLabel(query, m.Dataset)
}

/*
LuckyPredict predicts the label and throws any occurred error as a panic
*/
func (m Nearest) LuckyPredict(query FeatureVector) Label {
	l, err := m.Predict(query)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return l
}

/*
PredictLabel returns the label of the training point closest to query by Euclidean distance.

Points are scanned in order and the minimum is replaced only by a strictly smaller
distance, so the first of equidistant points wins. The query must be non-empty and
have the dimensionality of the first point, a later point of another dimensionality
is reported as ErrDimensionMismatch too.
*/
func PredictLabel(query FeatureVector, ds Dataset) (Label, error) {
	if len(ds) == 0 {
		return 0, ErrEmptyTrainingData
	}
	if len(query) == 0 || len(query) != ds.Dim() {
		return 0, xerrors.Errorf("query has %d features, training data has %d: %w", len(query), ds.Dim(), ErrDimensionMismatch)
	}
	// the first point seeds the minimum, result is always a label from ds
	label := ds[0].Label
	minDistance := fu.Distance(query, ds[0].Features)
	for i := 1; i < len(ds); i++ {
		p := ds[i]
		if len(p.Features) != len(query) {
			return 0, xerrors.Errorf("data point %d has %d features, query has %d: %w", i, len(p.Features), len(query), ErrDimensionMismatch)
		}
		if d := fu.Distance(query, p.Features); d < minDistance {
			minDistance = d
			label = p.Label
		}
	}
	return label, nil
}
