package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./vocabulaire.db"

	// DefaultUploadDir is the temporary store for uploaded documents;
	// files are removed as soon as they are processed
	DefaultUploadDir = "./upload"

	// DefaultWordCountLimit caps the frequent/infrequent word rankings
	DefaultWordCountLimit = 10

	// DefaultLetterLimit is the minimum word length considered when the
	// upload does not specify one
	DefaultLetterLimit = 3
)
