package settings

import "sync"

type Arguments struct {
	// The file path to the backing data file
	DataFile string

	// Serialize operations across processes with a file lock
	UseFileLock bool

	// Strongly verbose logging
	Verbose bool

	// Enable debug mode
	Debug bool

	Version string
}

var (
	instance *Arguments
	once     sync.Once
)

// GetSettings returns the global settings instance.
func GetSettings() *Arguments {
	once.Do(func() {
		instance = &Arguments{
			DataFile: "./datastore.db",
			Version:  "0.1.0",
		}
	})
	return instance
}
