package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go-ml.dev/pkg/nearest/config"
	"go-ml.dev/pkg/nearest/data"
	"go-ml.dev/pkg/nearest/fu"
	"go-ml.dev/pkg/nearest/model"
	"go-ml.dev/pkg/zorros/zorros"
	"go-ml.dev/pkg/zorros/zlog"
)

type options struct {
	configPath string
	evaluate   bool
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML file with datasets and queries (default: run the built-in demo)")
	flag.BoolVar(&opts.evaluate, "evaluate", false, "Print leave-one-out accuracy of every dataset")
	flag.BoolVar(&opts.verbose, "verbose", false, "Print every leave-one-out prediction")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config FILE] [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	var err error
	if opts.configPath == "" {
		err = demo(os.Stdout, opts)
	} else {
		err = run(context.Background(), os.Stdout, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "nearest: %v\n", err)
		os.Exit(1)
	}
}

func describe(w io.Writer, name string, ds model.Dataset, precision int, opts options) error {
	fmt.Fprintf(w, "%v training data:\n", name)
	if err := data.Print(w, ds, precision); err != nil {
		return err
	}
	kind := "multi-class"
	if model.IsBinaryClassification(ds) {
		kind = "binary"
	}
	fmt.Fprintf(w, "\nThe %v classification problem is %v.\n\n", name, kind)
	if opts.evaluate {
		var verbose func(string)
		if opts.verbose {
			verbose = func(s string) { fmt.Fprintln(w, s) }
		}
		r, err := model.LeaveOneOut(ds, verbose)
		if err != nil {
			zlog.Warning(fmt.Sprintf("%v: can't evaluate: %v", name, err.Error()))
			return nil
		}
		fmt.Fprintf(w, "Leave-one-out %v\n\n", r)
	}
	return nil
}

func demo(w io.Writer, opts options) error {
	for _, d := range data.Demos() {
		if err := describe(w, d.Name, d.Data, config.DefaultPrecision, opts); err != nil {
			return err
		}
	}
	fruit := data.Fruit()
	query := model.FeatureVector{180, 1, 1}
	l, err := model.PredictLabel(query, fruit.Data)
	if err != nil {
		zlog.Warning(fmt.Sprintf("prediction failed: %v", err.Error()))
		return nil
	}
	fmt.Fprintf(w, "Predicted label for the new fruit [%v]: %d (%v)\n",
		fu.Join(query, ", ", config.DefaultPrecision), l, fruit.ClassName(l))
	return nil
}

func run(ctx context.Context, w io.Writer, opts options) error {
	c, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	var db *sql.DB
	openDB := func() (*sql.DB, error) {
		if db == nil {
			conn, err := data.OpenDB(fu.CachePath(c.Database))
			if err != nil {
				return nil, err
			}
			db = conn
		}
		return db, nil
	}
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

	datasets := map[string]model.Dataset{}
	for _, d := range c.Datasets {
		ds, err := loadDataset(ctx, d, openDB)
		if err != nil {
			return zorros.Wrapf(err, "dataset %v: %v", d.Name, err.Error())
		}
		datasets[d.Name] = ds
		if err = describe(w, d.Name, ds, c.Precision, opts); err != nil {
			return err
		}
	}

	byDataset := map[string][]model.FeatureVector{}
	order := []string{}
	for _, q := range c.Queries {
		if _, ok := byDataset[q.Dataset]; !ok {
			order = append(order, q.Dataset)
		}
		byDataset[q.Dataset] = append(byDataset[q.Dataset], model.FeatureVector(q.Features))
	}
	for _, name := range order {
		queries := byDataset[name]
		labels := predict(ctx, model.Nearest{Dataset: datasets[name]}, queries, c.Workers)
		for i, q := range queries {
			if labels[i] != nil {
				fmt.Fprintf(w, "Predicted label for [%v] in %v: %d\n", fu.Join(q, ", ", c.Precision), name, *labels[i])
			}
		}
	}
	return nil
}

func loadDataset(ctx context.Context, d config.Dataset, openDB func() (*sql.DB, error)) (model.Dataset, error) {
	if d.File == "" {
		db, err := openDB()
		if err != nil {
			return nil, err
		}
		return data.Load(ctx, db, d.Name)
	}
	ds, err := data.LoadFile(d.File, data.CSVOptions{LabelColumn: d.Label(), Header: d.Header, Comma: d.Separator()})
	if err != nil {
		return nil, err
	}
	if d.Store {
		db, err := openDB()
		if err != nil {
			return nil, err
		}
		if err = data.Store(ctx, db, d.Name, ds); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

/*
predict runs the batch and falls back to one by one prediction when some query is malformed,
so every bad query is logged and skipped instead of failing the whole run
*/
func predict(ctx context.Context, m model.Nearest, queries []model.FeatureVector, workers int) []*model.Label {
	r := make([]*model.Label, len(queries))
	labels, err := model.PredictBatch(ctx, m, queries, workers)
	if err == nil {
		for i := range labels {
			r[i] = &labels[i]
		}
		return r
	}
	for i, q := range queries {
		l, err := m.Predict(q)
		if err != nil {
			zlog.Warning(fmt.Sprintf("query %d skipped: %v", i, err.Error()))
			continue
		}
		r[i] = &l
	}
	return r
}
