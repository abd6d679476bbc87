package state

import "github.com/google/uuid"

const projectIDPrefix = "prj"

// newProjectID returns prj-<uuid v4>.
func newProjectID() string {
	return projectIDPrefix + "-" + uuid.NewString()
}
