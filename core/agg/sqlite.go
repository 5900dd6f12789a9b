package agg

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/huangsam/trackpulse/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

const createFeaturesTable = `CREATE TABLE features (
	month INTEGER NOT NULL,
	day_of_week TEXT NOT NULL,
	season TEXT NOT NULL,
	is_weekend INTEGER NOT NULL,
	time_of_day TEXT NOT NULL,
	hour INTEGER NOT NULL,
	date TEXT NOT NULL
)`

const insertFeature = `INSERT INTO features (month, day_of_week, season, is_weekend, time_of_day, hour, date)
VALUES (?, ?, ?, ?, ?, ?, ?)`

// AggregateSQLite loads the features into a throwaway in-memory SQLite database
// and computes the count tables with GROUP BY queries.
func AggregateSQLite(ctx context.Context, features []schema.Features) (*schema.Aggregations, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory SQLite database: %w", err)
	}
	defer func() { _ = db.Close() }()
	// Every connection to :memory: gets its own database
	db.SetMaxOpenConns(1)

	if err := loadFeatures(ctx, db, features); err != nil {
		return nil, err
	}

	out := &schema.Aggregations{}
	queries := []struct {
		column string
		target *schema.Counts
		label  func(string) string
	}{
		{"season", &out.BySeason, nil},
		{"month", &out.ByMonth, nil},
		{"day_of_week", &out.ByWeekday, nil},
		{"is_weekend", &out.ByWeekend, func(v string) string { return weekendKey(v == "1") }},
		{"time_of_day", &out.ByTimeOfDay, nil},
		{"hour", &out.ByHour, nil},
	}
	for _, q := range queries {
		counts, err := queryCounts(ctx, db, q.column, q.label)
		if err != nil {
			return nil, err
		}
		*q.target = counts
	}

	if out.DayHour, err = queryDayHour(ctx, db); err != nil {
		return nil, err
	}
	if out.Cumulative, err = queryCumulative(ctx, db); err != nil {
		return nil, err
	}
	return out, nil
}

func loadFeatures(ctx context.Context, db *sql.DB, features []schema.Features) error {
	if _, err := db.ExecContext(ctx, createFeaturesTable); err != nil {
		return fmt.Errorf("failed to create features table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertFeature)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, f := range features {
		if !f.Valid {
			continue
		}
		weekend := 0
		if f.IsWeekend {
			weekend = 1
		}
		if _, err := stmt.ExecContext(ctx, f.Month, f.DayOfWeek, string(f.Season), weekend,
			string(f.TimeOfDay), f.Hour, f.Date.Format(schema.DateFormat)); err != nil {
			return fmt.Errorf("failed to insert feature row: %w", err)
		}
	}
	return tx.Commit()
}

// queryCounts groups by a single column. Column names come from a fixed list.
func queryCounts(ctx context.Context, db *sql.DB, column string, label func(string) string) (schema.Counts, error) {
	query := fmt.Sprintf("SELECT CAST(%[1]s AS TEXT), COUNT(*) FROM features GROUP BY %[1]s ORDER BY %[1]s", column)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by %s: %w", column, err)
	}
	defer func() { _ = rows.Close() }()

	counts := schema.Counts{}
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		if label != nil {
			key = label(key)
		}
		counts = append(counts, schema.CountEntry{Key: key, Count: count})
	}
	return counts, rows.Err()
}

func queryDayHour(ctx context.Context, db *sql.DB) (schema.Grid, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT day_of_week, hour, COUNT(*) FROM features GROUP BY day_of_week, hour ORDER BY day_of_week, hour")
	if err != nil {
		return schema.Grid{}, fmt.Errorf("failed to aggregate by day and hour: %w", err)
	}
	defer func() { _ = rows.Close() }()

	grid := schema.Grid{}
	rowIndex := make(map[string]int)
	cells := make(map[string]map[int]int)
	for rows.Next() {
		var day string
		var hour, count int
		if err := rows.Scan(&day, &hour, &count); err != nil {
			return schema.Grid{}, err
		}
		if _, ok := rowIndex[day]; !ok {
			rowIndex[day] = len(grid.Rows)
			grid.Rows = append(grid.Rows, day)
			cells[day] = make(map[int]int)
		}
		if !slices.Contains(grid.Cols, hour) {
			grid.Cols = append(grid.Cols, hour)
		}
		cells[day][hour] = count
	}
	if err := rows.Err(); err != nil {
		return schema.Grid{}, err
	}

	slices.Sort(grid.Cols)
	grid.Cells = make([][]int, len(grid.Rows))
	for r, day := range grid.Rows {
		grid.Cells[r] = make([]int, len(grid.Cols))
		for c, hour := range grid.Cols {
			grid.Cells[r][c] = cells[day][hour]
		}
	}
	return grid, nil
}

func queryCumulative(ctx context.Context, db *sql.DB) ([]schema.CumulativePoint, error) {
	rows, err := db.QueryContext(ctx, "SELECT date, COUNT(*) FROM features GROUP BY date ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by date: %w", err)
	}
	defer func() { _ = rows.Close() }()

	points := []schema.CumulativePoint{}
	total := 0
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		date, err := time.Parse(schema.DateFormat, day)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in features table: %w", day, err)
		}
		total += count
		points = append(points, schema.CumulativePoint{Date: date, Total: total})
	}
	return points, rows.Err()
}
