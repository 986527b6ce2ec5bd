package model_test

import (
	"context"
	"testing"

	"go-ml.dev/pkg/nearest/model"
	"golang.org/x/xerrors"
	"gotest.tools/assert"
)

func Test_Batch1(t *testing.T) {
	m := model.Nearest{Dataset: fruit}
	q := make([]model.FeatureVector, 0, 100)
	x := make([]model.Label, 0, 100)
	for i := 0; i < 100; i++ {
		p := fruit[i%len(fruit)]
		q = append(q, p.Features)
		x = append(x, p.Label)
	}
	for _, workers := range []int{0, 1, 3, 200} {
		r, err := model.PredictBatch(context.Background(), m, q, workers)
		assert.NilError(t, err)
		assert.DeepEqual(t, r, x)
	}
}

func Test_BatchEmpty(t *testing.T) {
	r, err := model.PredictBatch(context.Background(), model.Nearest{Dataset: fruit}, nil, 4)
	assert.NilError(t, err)
	assert.Equal(t, len(r), 0)
}

func Test_BatchError(t *testing.T) {
	q := []model.FeatureVector{{180, 1, 1}, {150, 1, 1}, {1, 2}, {200, 0, 0}}
	_, err := model.PredictBatch(context.Background(), model.Nearest{Dataset: fruit}, q, 2)
	assert.Assert(t, xerrors.Is(err, model.ErrDimensionMismatch))
	assert.ErrorContains(t, err, "query 2")
	_, err = model.PredictBatch(context.Background(), model.Nearest{}, q, 2)
	assert.Assert(t, xerrors.Is(err, model.ErrEmptyTrainingData))
}

func Test_BatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := model.PredictBatch(ctx, model.Nearest{Dataset: fruit}, []model.FeatureVector{{180, 1, 1}}, 1)
	assert.Equal(t, err, context.Canceled)
}
