package fu

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

/*
SqDistance returns the sum of squared per-dimension differences of a and b.
Vectors must have the same length.
*/
func SqDistance(a, b []float64) float64 {
	d := floats.SubTo(make([]float64, len(a)), a, b)
	return floats.Dot(d, d)
}

/*
Distance is the Euclidean distance between a and b
*/
func Distance(a, b []float64) float64 {
	return math.Sqrt(SqDistance(a, b))
}

/*
Ftoa formats v with fixed precision, 150 -> "150.0" for precision 1.
Negative precision gives the shortest text parsed back to exactly v.
*/
func Ftoa(v float64, precision int) string {
	if precision < 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func Join(a []float64, sep string, precision int) string {
	s := make([]string, len(a))
	for i, x := range a {
		s[i] = Ftoa(x, precision)
	}
	return strings.Join(s, sep)
}

/*
Split parses a sep-separated list of floats, the reverse of Join
*/
func Split(s string, sep string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}
	p := strings.Split(s, sep)
	r := make([]float64, len(p))
	for i, x := range p {
		v, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil, err
		}
		r[i] = v
	}
	return r, nil
}
