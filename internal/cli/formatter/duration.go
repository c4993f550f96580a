package formatter

import "fmt"

// ZeroSentinel is shown for a zero duration unless numeric output is forced.
const ZeroSentinel = "Nothing logged yet."

// FormatDuration renders a minute count in long form: "45 minutes",
// "1 hour", "1 hour and 15 minutes". Zero yields the sentinel unless
// numeric is set, which forces "0 minutes". Exactly whole hours omit the
// minutes clause.
func FormatDuration(minutes int, numeric bool) string {
	if minutes == 0 {
		if numeric {
			return "0 minutes"
		}
		return ZeroSentinel
	}
	if minutes < 60 {
		return fmt.Sprintf("%d minute%s", minutes, plural(minutes))
	}

	hours := minutes / 60
	rem := minutes % 60
	out := fmt.Sprintf("%d hour%s", hours, plural(hours))
	if rem > 0 {
		out += fmt.Sprintf(" and %d minute%s", rem, plural(rem))
	}
	return out
}

// FormatDurationShort renders a minute count in short form: "45 mins",
// "1 hr", "1 hr 15 mins".
func FormatDurationShort(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min%s", minutes, plural(minutes))
	}

	hours := minutes / 60
	rem := minutes % 60
	out := fmt.Sprintf("%d hr%s", hours, plural(hours))
	if rem > 0 {
		out += fmt.Sprintf(" %d min%s", rem, plural(rem))
	}
	return out
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
