package trip

import (
	"strconv"
	"strings"
)

// DateTime is the naive decomposition of a Notion date string.
type DateTime struct {
	Date    string
	Time    string
	Display string
}

// SplitDateTime splits an ISO-8601-like string (YYYY-MM-DD or
// YYYY-MM-DDTHH:mm:ss[.sss][±HH:MM]) into its date and HH:mm parts by pure
// string slicing. Timezone-aware parsing would shift the wall-clock value by
// the reader's local offset; the literal authored date and time must survive
// as-is.
func SplitDateTime(iso string) DateTime {
	if iso == "" {
		return DateTime{}
	}

	datePart, timePart, _ := strings.Cut(iso, "T")

	t := timePart
	if len(t) > 5 {
		t = t[:5]
	}

	display := datePart
	if t != "" {
		display = datePart + " " + t
	}

	return DateTime{Date: datePart, Time: t, Display: display}
}

// FormatTripDate renders a compact display range, e.g. "3/1 - 3/5" for a
// same-year range or "2024/12/30 - 2025/1/2" across years. A single date
// renders as "YYYY/M/D"; an empty start renders as "".
func FormatTripDate(startDate, endDate string) string {
	if startDate == "" {
		return ""
	}

	sy, sm, sd := splitYMD(SplitDateTime(startDate).Date)
	if endDate == "" {
		return strconv.Itoa(sy) + "/" + strconv.Itoa(sm) + "/" + strconv.Itoa(sd)
	}

	ey, em, ed := splitYMD(SplitDateTime(endDate).Date)

	if sy == ey {
		return strconv.Itoa(sm) + "/" + strconv.Itoa(sd) + " - " + strconv.Itoa(em) + "/" + strconv.Itoa(ed)
	}
	return strconv.Itoa(sy) + "/" + strconv.Itoa(sm) + "/" + strconv.Itoa(sd) +
		" - " + strconv.Itoa(ey) + "/" + strconv.Itoa(em) + "/" + strconv.Itoa(ed)
}

func splitYMD(date string) (year, month, day int) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) > 0 {
		year, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		month, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		day, _ = strconv.Atoi(parts[2])
	}
	return year, month, day
}
