package status

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type payload struct {
	Date interface{} `json:"date"`
	Data []Entry     `json:"data"`
}

// Parse decodes a feed body into a Report.
func Parse(data []byte) (*Report, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	date, err := parseDate(p.Date)
	if err != nil {
		return nil, err
	}

	entries := p.Data
	if entries == nil {
		entries = []Entry{}
	}

	return &Report{Date: date, Entries: entries}, nil
}

// Timestamps without a zone are read in the local zone, date-only values as UTC.
var zonedLayouts = []string{time.RFC3339}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseDate(raw interface{}) (time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("%w: missing", ErrInvalidDate)
	case float64:
		return fromEpochMillis(v)
	case string:
		return parseDateString(v)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, raw)
	}
}

func parseDateString(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}

	if millis, err := strconv.ParseFloat(value, 64); err == nil {
		return fromEpochMillis(millis)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// maxEpochMillis bounds timestamps to 100 million days either side of the epoch.
const maxEpochMillis = 8.64e15

func fromEpochMillis(millis float64) (time.Time, error) {
	if math.IsNaN(millis) || math.Abs(millis) > maxEpochMillis {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, millis)
	}

	return time.UnixMilli(int64(millis)).UTC(), nil
}
