package data

import (
	"go-ml.dev/pkg/nearest/model"
)

/*
Demo is a small named dataset with class names of its labels
*/
type Demo struct {
	Name    string
	Data    model.Dataset
	Classes map[model.Label]string
}

// Fruit is weight, surface and color of apples (0), pears (1) and bananas (2)
func Fruit() Demo {
	return Demo{
		Name: "fruit",
		Data: model.Dataset{
			model.Pt(0, 150, 1, 1),
			model.Pt(1, 200, 0, 0),
			model.Pt(2, 250, 2, 2),
			model.Pt(0, 160, 1, 1),
			model.Pt(1, 210, 0, 0),
		},
		Classes: map[model.Label]string{0: "apple", 1: "pear", 2: "banana"},
	}
}

// Flower is sepal and petal sizes of iris setosa (0), versicolor (1) and virginica (2)
func Flower() Demo {
	return Demo{
		Name: "flower",
		Data: model.Dataset{
			model.Pt(0, 5.1, 3.5, 1.4, 0.2),
			model.Pt(1, 7.0, 3.2, 4.7, 1.4),
			model.Pt(2, 6.3, 3.3, 6.0, 2.5),
			model.Pt(0, 4.9, 3.1, 1.5, 0.1),
			model.Pt(1, 6.7, 3.1, 4.4, 1.4),
		},
		Classes: map[model.Label]string{0: "setosa", 1: "versicolor", 2: "virginica"},
	}
}

func Demos() []Demo {
	return []Demo{Fruit(), Flower()}
}

// ClassName returns the class name of label or empty string
func (d Demo) ClassName(l model.Label) string {
	return d.Classes[l]
}
