package constants

const (
	// DataDirName is the subdirectory of the user's documents folder that
	// holds all persisted records.
	DataDirName = "BabyTracker"
)
