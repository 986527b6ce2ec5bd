package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/nearest/model"
	"go-ml.dev/pkg/zorros/zorros"
	"go-ml.dev/pkg/zorros/zlog"
)

/*
CSVOptions describes the layout of a labeled CSV file
*/
type CSVOptions struct {
	LabelColumn int  // index of the label column, negative counts from the end (-1 is the last one)
	Header      bool // skip the first row
	Comma       rune // field separator, ',' if zero
}

/*
ReadCSV reads a dataset where every row holds feature values and an integer label.
Rows with unparsable values or without features are errors, the result is validated
so all points share the same dimensionality.
*/
func ReadCSV(r io.Reader, opts CSVOptions) (model.Dataset, error) {
	rd := csv.NewReader(r)
	rd.ReuseRecord = true
	rd.FieldsPerRecord = -1
	if opts.Comma != 0 {
		rd.Comma = opts.Comma
	}
	ds := model.Dataset{}
	for line := 1; ; line++ {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, zorros.Trace(err)
		}
		if line == 1 && opts.Header {
			continue
		}
		p, err := parseRecord(rec, opts.LabelColumn)
		if err != nil {
			return nil, zorros.Errorf("line %d: %v", line, err.Error())
		}
		ds = append(ds, p)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func parseRecord(rec []string, labelCol int) (p model.DataPoint, err error) {
	if labelCol < 0 {
		labelCol += len(rec)
	}
	if labelCol < 0 || labelCol >= len(rec) {
		return p, fmt.Errorf("label column is out of range for %d fields", len(rec))
	}
	if len(rec) < 2 {
		return p, fmt.Errorf("row has no features")
	}
	l, err := strconv.Atoi(strings.TrimSpace(rec[labelCol]))
	if err != nil {
		return p, fmt.Errorf("bad label %q", rec[labelCol])
	}
	x := make(model.FeatureVector, 0, len(rec)-1)
	for i, s := range rec {
		if i == labelCol {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return p, fmt.Errorf("bad feature %q in column %d", s, i)
		}
		x = append(x, v)
	}
	return model.DataPoint{Features: x, Label: model.Label(l)}, nil
}

/*
LoadFile reads a CSV dataset from file, files with .xz suffix are decompressed on the fly
*/
func LoadFile(path string, opts CSVOptions) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		if r, err = xz.NewReader(f); err != nil {
			return nil, zorros.Wrapf(err, "failed to open xz stream %v: %v", path, err.Error())
		}
	}
	ds, err := ReadCSV(r, opts)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to load %v: %v", path, err.Error())
	}
	zlog.Info(fmt.Sprintf("loaded %d points with %d labels from %v", ds.Len(), ds.Arity(), path))
	return ds, nil
}

/*
WriteCSV writes dataset in the format ReadCSV reads with LabelColumn -1
*/
func WriteCSV(w io.Writer, ds model.Dataset) error {
	cw := csv.NewWriter(w)
	for _, p := range ds {
		rec := make([]string, 0, len(p.Features)+1)
		for _, x := range p.Features {
			rec = append(rec, strconv.FormatFloat(x, 'f', -1, 64))
		}
		rec = append(rec, strconv.Itoa(int(p.Label)))
		if err := cw.Write(rec); err != nil {
			return zorros.Trace(err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}
