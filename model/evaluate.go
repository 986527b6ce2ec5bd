package model

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

/*
Report is a prediction quality report over a labeled test set
*/
type Report struct {
	Total     int                     // count of predicted points
	Correct   int                     // count of points predicted with their own label
	Accuracy  float64                 // Correct/Total
	Confusion map[Label]map[Label]int // actual label -> predicted label -> count
}

func newReport() *Report {
	return &Report{Confusion: map[Label]map[Label]int{}}
}

func (r *Report) add(actual, predicted Label) {
	r.Total++
	if actual == predicted {
		r.Correct++
	}
	row, ok := r.Confusion[actual]
	if !ok {
		row = map[Label]int{}
		r.Confusion[actual] = row
	}
	row[predicted]++
	r.Accuracy = float64(r.Correct) / float64(r.Total)
}

func (r *Report) String() string {
	actual := make([]int, 0, len(r.Confusion))
	for l := range r.Confusion {
		actual = append(actual, int(l))
	}
	sort.Ints(actual)
	b := &strings.Builder{}
	fmt.Fprintf(b, "accuracy: %.5f (%d/%d)", r.Accuracy, r.Correct, r.Total)
	for _, a := range actual {
		row := r.Confusion[Label(a)]
		predicted := make([]int, 0, len(row))
		for l := range row {
			predicted = append(predicted, int(l))
		}
		sort.Ints(predicted)
		fmt.Fprintf(b, "\n  %d ->", a)
		for _, p := range predicted {
			fmt.Fprintf(b, " %d:%d", p, row[Label(p)])
		}
	}
	return b.String()
}

/*
Evaluate predicts every point of test set and compares prediction with its label.
Verbose is optional and receives one line per point.
*/
func Evaluate(m PredictionModel, test Dataset, verbose func(string)) (*Report, error) {
	if len(test) == 0 {
		return nil, xerrors.Errorf("nothing to evaluate: %w", ErrEmptyTrainingData)
	}
	r := newReport()
	for i, p := range test {
		l, err := m.Predict(p.Features)
		if err != nil {
			return nil, xerrors.Errorf("test point %d: %w", i, err)
		}
		r.add(p.Label, l)
		if verbose != nil {
			verbose(fmt.Sprintf("[%3d] label: %d, predicted: %d", i, p.Label, l))
		}
	}
	return r, nil
}

/*
LeaveOneOut evaluates nearest neighbor prediction of every point against all the other points
*/
func LeaveOneOut(ds Dataset, verbose func(string)) (*Report, error) {
	if len(ds) < 2 {
		return nil, xerrors.Errorf("leave-one-out needs at least 2 points, got %d: %w", len(ds), ErrEmptyTrainingData)
	}
	r := newReport()
	for i, p := range ds {
		l, err := PredictLabel(p.Features, ds.Without(i))
		if err != nil {
			return nil, xerrors.Errorf("data point %d: %w", i, err)
		}
		r.add(p.Label, l)
		if verbose != nil {
			verbose(fmt.Sprintf("[%3d] label: %d, predicted: %d", i, p.Label, l))
		}
	}
	return r, nil
}
