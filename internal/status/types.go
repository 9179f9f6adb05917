// Package status fetches and decodes the metro network status feed.
package status

import "time"

// Report is one snapshot of the network status as published by the feed.
type Report struct {
	Date    time.Time
	Entries []Entry
}

// Entry is the status of a single metro line.
// Name is raw and usually embeds the line number and color, e.g. "Linha 1 - Azul".
type Entry struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}
