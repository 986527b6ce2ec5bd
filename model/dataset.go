package model

import (
	"golang.org/x/xerrors"
)

/*
FeatureVector is an ordered list of measured attributes of one example
*/
type FeatureVector []float64

/*
Label is a discrete class identifier, only equality is meaningful
*/
type Label int

/*
DataPoint is a labeled example, Features must not be empty
*/
type DataPoint struct {
	Features FeatureVector
	Label    Label
}

// Pt makes a data point from a label and feature values
func Pt(label Label, x ...float64) DataPoint {
	return DataPoint{Features: FeatureVector(x), Label: label}
}

/*
Dataset is an ordered collection of labeled examples (the training data).
It is never modified by the model package, so one Dataset can be shared
by concurrent predictions as long as the caller does not mutate it meanwhile.
*/
type Dataset []DataPoint

func (ds Dataset) Len() int {
	return len(ds)
}

/*
Dim returns the dimensionality of the first point or 0 if dataset is empty
*/
func (ds Dataset) Dim() int {
	if len(ds) == 0 {
		return 0
	}
	return len(ds[0].Features)
}

/*
Labels returns distinct labels in order of the first appearance
*/
func (ds Dataset) Labels() []Label {
	seen := make(map[Label]struct{})
	r := []Label{}
	for _, p := range ds {
		if _, ok := seen[p.Label]; !ok {
			seen[p.Label] = struct{}{}
			r = append(r, p.Label)
		}
	}
	return r
}

/*
Arity is the number of distinct labels
*/
func (ds Dataset) Arity() int {
	seen := make(map[Label]struct{})
	for _, p := range ds {
		seen[p.Label] = struct{}{}
	}
	return len(seen)
}

// IsBinary is true when the dataset has exactly two distinct labels
func (ds Dataset) IsBinary() bool {
	return ds.Arity() == 2
}

/*
IsBinaryClassification reports whether the labels of ds form a two-class problem.
Empty, single-label and multi-class datasets are not binary.
*/
func IsBinaryClassification(ds Dataset) bool {
	return ds.IsBinary()
}

/*
Validate checks that every point has features and all points share the same dimensionality.
Predictors do not require it, loaders call it to reject malformed data early.
*/
func (ds Dataset) Validate() error {
	dim := ds.Dim()
	for i, p := range ds {
		if len(p.Features) == 0 {
			return xerrors.Errorf("data point %d has no features: %w", i, ErrDimensionMismatch)
		}
		if len(p.Features) != dim {
			return xerrors.Errorf("data point %d has %d features, expected %d: %w", i, len(p.Features), dim, ErrDimensionMismatch)
		}
	}
	return nil
}

/*
Without returns a copy of the dataset excluding i-th point
*/
func (ds Dataset) Without(i int) Dataset {
	r := make(Dataset, 0, len(ds))
	r = append(r, ds[:i]...)
	return append(r, ds[i+1:]...)
}
