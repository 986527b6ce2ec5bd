package data_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/nearest/data"
	"go-ml.dev/pkg/nearest/model"
	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
)

func Test_ReadCSV(t *testing.T) {
	ds, err := data.ReadCSV(strings.NewReader("150,1,1,0\n200, 0, 0, 1\n"), data.CSVOptions{LabelColumn: -1})
	assert.NilError(t, err)
	assert.DeepEqual(t, ds, model.Dataset{model.Pt(0, 150, 1, 1), model.Pt(1, 200, 0, 0)})

	ds, err = data.ReadCSV(strings.NewReader("label;a;b\n2;0.5;1.5\n"), data.CSVOptions{Header: true, Comma: ';'})
	assert.NilError(t, err)
	assert.DeepEqual(t, ds, model.Dataset{model.Pt(2, 0.5, 1.5)})

	ds, err = data.ReadCSV(strings.NewReader(""), data.CSVOptions{})
	assert.NilError(t, err)
	assert.Assert(t, cmp.Len(ds, 0))
}

func Test_ReadCSVErrors(t *testing.T) {
	_, err := data.ReadCSV(strings.NewReader("1,2,0\n1,x,0\n"), data.CSVOptions{LabelColumn: -1})
	assert.ErrorContains(t, err, "line 2")
	_, err = data.ReadCSV(strings.NewReader("1,2,a\n"), data.CSVOptions{LabelColumn: -1})
	assert.ErrorContains(t, err, "bad label")
	_, err = data.ReadCSV(strings.NewReader("1\n"), data.CSVOptions{})
	assert.ErrorContains(t, err, "no features")
	_, err = data.ReadCSV(strings.NewReader("1,2\n"), data.CSVOptions{LabelColumn: 5})
	assert.ErrorContains(t, err, "out of range")
	_, err = data.ReadCSV(strings.NewReader("1,2,0\n1,0\n"), data.CSVOptions{LabelColumn: -1})
	assert.Assert(t, model.IsInvalidArgument(err))
}

func Test_LoadFile(t *testing.T) {
	dir := t.TempDir()
	fruit := data.Fruit().Data

	plain := filepath.Join(dir, "fruit.csv")
	f, err := os.Create(plain)
	assert.NilError(t, err)
	assert.NilError(t, data.WriteCSV(f, fruit))
	assert.NilError(t, f.Close())

	compressed := filepath.Join(dir, "fruit.csv.xz")
	f, err = os.Create(compressed)
	assert.NilError(t, err)
	w, err := xz.NewWriter(f)
	assert.NilError(t, err)
	assert.NilError(t, data.WriteCSV(w, fruit))
	assert.NilError(t, w.Close())
	assert.NilError(t, f.Close())

	for _, path := range []string{plain, compressed} {
		ds, err := data.LoadFile(path, data.CSVOptions{LabelColumn: -1})
		assert.NilError(t, err)
		assert.DeepEqual(t, ds, fruit)
	}
	_, err = data.LoadFile(filepath.Join(dir, "nothing.csv"), data.CSVOptions{})
	assert.Assert(t, err != nil)
}

func Test_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := data.OpenDB(":memory:")
	assert.NilError(t, err)
	defer db.Close()

	for _, d := range data.Demos() {
		assert.NilError(t, data.Store(ctx, db, d.Name, d.Data))
	}
	ds, err := data.Load(ctx, db, "flower")
	assert.NilError(t, err)
	assert.DeepEqual(t, ds, data.Flower().Data)

	// store replaces the previous content
	assert.NilError(t, data.Store(ctx, db, "fruit", data.Fruit().Data[:2]))
	ds, err = data.Load(ctx, db, "fruit")
	assert.NilError(t, err)
	assert.DeepEqual(t, ds, data.Fruit().Data[:2])

	names, err := data.Names(ctx, db)
	assert.NilError(t, err)
	assert.DeepEqual(t, names, []string{"flower", "fruit"})

	ds, err = data.Load(ctx, db, "unknown")
	assert.NilError(t, err)
	assert.Assert(t, cmp.Len(ds, 0))
}

func Test_Print(t *testing.T) {
	b := &bytes.Buffer{}
	assert.NilError(t, data.Print(b, data.Fruit().Data[:2], 1))
	assert.Equal(t, b.String(), "Features: [150.0, 1.0, 1.0], Label: 0\nFeatures: [200.0, 0.0, 0.0], Label: 1\n")
}

func Test_Demos(t *testing.T) {
	assert.Assert(t, !model.IsBinaryClassification(data.Fruit().Data))
	assert.Assert(t, !model.IsBinaryClassification(data.Flower().Data))
	assert.Equal(t, data.Fruit().ClassName(0), "apple")
	assert.Equal(t, data.Flower().ClassName(7), "")
	l, err := model.PredictLabel(model.FeatureVector{180, 1, 1}, data.Fruit().Data)
	assert.NilError(t, err)
	assert.Equal(t, l, model.Label(0))
}
