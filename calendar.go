package ecto

import "time"

// The calendar kinds are the only basic types whose canonical form
// (time.Time) differs from the storage-native form. The native form
// is a structured tuple of calendar fields, carried as plain structs
// so a storage layer can serialize them however it likes.

// DateParts is the storage-native form of the date kind.
type DateParts struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// TimeParts is the storage-native form of the time kind. Precision is
// microseconds.
type TimeParts struct {
	Hour        int `json:"hour"`
	Minute      int `json:"minute"`
	Second      int `json:"second"`
	Microsecond int `json:"microsecond"`
}

// DateTimeParts is the storage-native form of the datetime kind.
type DateTimeParts struct {
	Date DateParts `json:"date"`
	Time TimeParts `json:"time"`
}

// timeBase anchors time-of-day values: the canonical form of the time
// kind is a time.Time whose date fields are the zero date in UTC.
var timeBase = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// loadDate builds the canonical UTC-midnight wrapper from a date
// tuple. Out-of-range fields fail rather than normalize: {2024, 13, 1}
// is a load failure, not January 2025.
func loadDate(p DateParts) (time.Time, error) {
	ts := time.Date(p.Year, time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC)
	y, m, d := ts.Date()
	if y != p.Year || int(m) != p.Month || d != p.Day {
		return time.Time{}, ErrLoad
	}
	return ts, nil
}

func dumpDate(ts time.Time) DateParts {
	y, m, d := ts.Date()
	return DateParts{Year: y, Month: int(m), Day: d}
}

func loadTime(p TimeParts) (time.Time, error) {
	if p.Hour < 0 || p.Hour > 23 ||
		p.Minute < 0 || p.Minute > 59 ||
		p.Second < 0 || p.Second > 59 ||
		p.Microsecond < 0 || p.Microsecond > 999999 {
		return time.Time{}, ErrLoad
	}
	return timeBase.Add(time.Duration(p.Hour)*time.Hour +
		time.Duration(p.Minute)*time.Minute +
		time.Duration(p.Second)*time.Second +
		time.Duration(p.Microsecond)*time.Microsecond), nil
}

// dumpTime extracts the wall clock, truncating below microseconds.
func dumpTime(ts time.Time) TimeParts {
	return TimeParts{
		Hour:        ts.Hour(),
		Minute:      ts.Minute(),
		Second:      ts.Second(),
		Microsecond: ts.Nanosecond() / 1000,
	}
}

func loadDateTime(p DateTimeParts) (time.Time, error) {
	date, err := loadDate(p.Date)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := loadTime(p.Time)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(clock.Sub(timeBase)), nil
}

// dumpDateTime converts to UTC before splitting into tuples, so a
// dumped value loads back as the same instant.
func dumpDateTime(ts time.Time) DateTimeParts {
	utc := ts.UTC()
	return DateTimeParts{Date: dumpDate(utc), Time: dumpTime(utc)}
}
