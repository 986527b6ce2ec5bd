package data

import (
	"fmt"
	"io"

	"go-ml.dev/pkg/nearest/fu"
	"go-ml.dev/pkg/nearest/model"
	"go-ml.dev/pkg/zorros/zorros"
)

/*
Print writes one line per data point

	Features: [150.0, 1.0, 1.0], Label: 0
*/
func Print(w io.Writer, ds model.Dataset, precision int) error {
	for _, p := range ds {
		if _, err := fmt.Fprintf(w, "Features: [%v], Label: %d\n", fu.Join(p.Features, ", ", precision), p.Label); err != nil {
			return zorros.Trace(err)
		}
	}
	return nil
}
