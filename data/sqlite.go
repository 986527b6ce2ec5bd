package data

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go-ml.dev/pkg/nearest/fu"
	"go-ml.dev/pkg/nearest/model"
	"go-ml.dev/pkg/zorros/zorros"
	"go-ml.dev/pkg/zorros/zlog"
)

const schema = `CREATE TABLE IF NOT EXISTS points (
	dataset  TEXT    NOT NULL,
	idx      INTEGER NOT NULL,
	label    INTEGER NOT NULL,
	features TEXT    NOT NULL,
	PRIMARY KEY (dataset, idx)
)`

/*
OpenDB opens (and creates if required) SQLite database storing named datasets.
Use ":memory:" for a private in-memory database.
*/
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	// sqlite serializes writers, and every connection to :memory: is a new database
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, zorros.Wrapf(err, "failed to initialize database %v: %v", path, err.Error())
	}
	return db, nil
}

/*
Store replaces the dataset with given name keeping the order of points
*/
func Store(ctx context.Context, db *sql.DB, name string, ds model.Dataset) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zorros.Trace(err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM points WHERE dataset = ?`, name); err != nil {
		return zorros.Trace(err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO points (dataset, idx, label, features) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return zorros.Trace(err)
	}
	defer stmt.Close()
	for i, p := range ds {
		if _, err = stmt.ExecContext(ctx, name, i, int(p.Label), fu.Join(p.Features, ",", -1)); err != nil {
			return zorros.Trace(err)
		}
	}
	if err = tx.Commit(); err != nil {
		return zorros.Trace(err)
	}
	zlog.Info(fmt.Sprintf("stored %d points as dataset %v", ds.Len(), name))
	return nil
}

/*
Load reads the dataset with given name, unknown name gives an empty dataset
*/
func Load(ctx context.Context, db *sql.DB, name string) (model.Dataset, error) {
	rows, err := db.QueryContext(ctx, `SELECT label, features FROM points WHERE dataset = ? ORDER BY idx`, name)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer rows.Close()
	ds := model.Dataset{}
	for rows.Next() {
		var label int
		var features string
		if err = rows.Scan(&label, &features); err != nil {
			return nil, zorros.Trace(err)
		}
		x, err := fu.Split(features, ",")
		if err != nil {
			return nil, zorros.Wrapf(err, "dataset %v point %d has bad features: %v", name, len(ds), err.Error())
		}
		ds = append(ds, model.DataPoint{Features: x, Label: model.Label(label)})
	}
	if err = rows.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	return ds, nil
}

/*
Names lists stored datasets
*/
func Names(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT DISTINCT dataset FROM points ORDER BY dataset`)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer rows.Close()
	r := []string{}
	for rows.Next() {
		var s string
		if err = rows.Scan(&s); err != nil {
			return nil, zorros.Trace(err)
		}
		r = append(r, s)
	}
	if err = rows.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	return r, nil
}
