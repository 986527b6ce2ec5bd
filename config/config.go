package config

import (
	"io/ioutil"
	"runtime"

	"go-ml.dev/pkg/zorros/zorros"
	"gopkg.in/yaml.v3"
)

const DefaultPrecision = 1
const DefaultDatabase = "nearest.db"

/*
Config is the configuration of a nearest neighbor run
*/
type Config struct {
	Precision int       `yaml:"precision"` // digits after the point when printing features
	Workers   int       `yaml:"workers"`   // batch prediction goroutines
	Database  string    `yaml:"database"`  // sqlite file, relative names are resolved in the cache directory
	Datasets  []Dataset `yaml:"datasets"`
	Queries   []Query   `yaml:"queries"`
}

/*
Dataset describes where training data comes from.
Without File it is loaded from the database by Name.
*/
type Dataset struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	LabelColumn *int   `yaml:"label_column"` // -1 (the last column) if omitted
	Header      bool   `yaml:"header"`
	Comma       string `yaml:"comma"`
	Store       bool   `yaml:"store"` // save loaded file into the database
}

/*
Query is a feature vector to classify against the named dataset
*/
type Query struct {
	Dataset  string    `yaml:"dataset"`
	Features []float64 `yaml:"features"`
}

// Label column index with default applied
func (d Dataset) Label() int {
	if d.LabelColumn == nil {
		return -1
	}
	return *d.LabelColumn
}

// Separator rune, zero means default
func (d Dataset) Separator() rune {
	for _, r := range d.Comma {
		return r
	}
	return 0
}

/*
Parse decodes YAML configuration, applies defaults and validates it
*/
func Parse(b []byte) (*Config, error) {
	c := &Config{Precision: DefaultPrecision}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, zorros.Wrapf(err, "bad config: %v", err.Error())
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

/*
Load reads configuration from YAML file
*/
func Load(path string) (*Config, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	return Parse(b)
}

func (c *Config) Validate() error {
	known := map[string]bool{}
	for i, d := range c.Datasets {
		if d.Name == "" {
			return zorros.Errorf("dataset %d has no name", i)
		}
		if known[d.Name] {
			return zorros.Errorf("dataset %v is defined twice", d.Name)
		}
		if d.Store && d.File == "" {
			return zorros.Errorf("dataset %v has nothing to store, file is not specified", d.Name)
		}
		known[d.Name] = true
	}
	for i, q := range c.Queries {
		if !known[q.Dataset] {
			return zorros.Errorf("query %d refers to unknown dataset `%v`", i, q.Dataset)
		}
	}
	return nil
}

/*
Dataset returns the dataset description by name
*/
func (c *Config) Dataset(name string) (Dataset, bool) {
	for _, d := range c.Datasets {
		if d.Name == name {
			return d, true
		}
	}
	return Dataset{}, false
}
