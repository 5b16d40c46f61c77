package instance

import "os"

// GetID returns the process instance identifier or a default value. Heroku
// sets DYNO; anything else is treated as a local run.
func GetID() string {
	if id := os.Getenv("DYNO"); id != "" {
		return id
	}
	return "local"
}
