package models

import "time"

// StampLayout is the legacy wire format for every stored timestamp:
// DD/MM/YYYY hh:MM:SS AM.
const StampLayout = "02/01/2006 03:04:05 PM"

// FormatStamp renders t in the legacy wire format.
func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}
