package constants

const (
	// DateFormat is the canonical calendar-date layout (YYYY-MM-DD).
	DateFormat = "2006-01-02"
	// TimeFormat is the canonical time-of-day layout (HH:MM, 24h).
	TimeFormat = "15:04"
	// TimestampFormat is used for backup filenames.
	TimestampFormat = "20060102-1504"
)
