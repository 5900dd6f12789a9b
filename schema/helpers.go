package schema

import "time"

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, e := range c {
		total += e.Count
	}
	return total
}

// Keys returns the keys in order.
func (c Counts) Keys() []string {
	keys := make([]string, len(c))
	for i, e := range c {
		keys[i] = e.Key
	}
	return keys
}

// Values returns the counts in order as floats, which is what plots and
// statistics consume.
func (c Counts) Values() []float64 {
	values := make([]float64, len(c))
	for i, e := range c {
		values[i] = float64(e.Count)
	}
	return values
}

// Get returns the count for key, or 0 when the key is absent.
func (c Counts) Get(key string) int {
	for _, e := range c {
		if e.Key == key {
			return e.Count
		}
	}
	return 0
}

// Max returns the largest count, or 0 for an empty table.
func (c Counts) Max() int {
	m := 0
	for _, e := range c {
		m = max(m, e.Count)
	}
	return m
}

// Total returns the sum of all grid cells.
func (g Grid) Total() int {
	total := 0
	for _, row := range g.Cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Max returns the largest grid cell, or 0 for an empty grid.
func (g Grid) Max() int {
	m := 0
	for _, row := range g.Cells {
		for _, v := range row {
			m = max(m, v)
		}
	}
	return m
}

// SeasonForMonth maps a month number (1-12) to its season.
// Dec-Feb is Winter, Mar-May Spring, Jun-Aug Summer and everything else Autumn.
func SeasonForMonth(month int) Season {
	switch month {
	case 12, 1, 2:
		return Winter
	case 3, 4, 5:
		return Spring
	case 6, 7, 8:
		return Summer
	default:
		return Autumn
	}
}

// TimeOfDayForHour maps an hour (0-23) to its bucket.
func TimeOfDayForHour(hour int) TimeOfDay {
	switch {
	case 5 <= hour && hour < 12:
		return Morning
	case 12 <= hour && hour < 17:
		return Afternoon
	case 17 <= hour && hour < 21:
		return Evening
	default:
		return Night
	}
}

// IsWeekendDay reports whether the English weekday name is Saturday or Sunday.
func IsWeekendDay(day string) bool {
	return day == "Saturday" || day == "Sunday"
}

// NewFeatures derives the calendar features of a timestamp in UTC.
func NewFeatures(ts time.Time) Features {
	ts = ts.UTC()
	day := ts.Weekday().String()
	return Features{
		Valid:     true,
		Month:     int(ts.Month()),
		DayOfWeek: day,
		Season:    SeasonForMonth(int(ts.Month())),
		IsWeekend: IsWeekendDay(day),
		TimeOfDay: TimeOfDayForHour(ts.Hour()),
		Hour:      ts.Hour(),
		Date:      time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
	}
}
