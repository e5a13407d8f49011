package note

import (
	"errors"
	"time"
)

// Cached entries of a user live under the user's current version, bumped on every write.
// Entries written under an older version are never read again and expire with the TTL.
const (
	versionKey = "notes.version.%s"
	noteKey    = "notes.note.%s.v%d.%s"
	listKey    = "notes.list.%s.v%d"
)

var ErrNotFound = errors.New("no note deleted")

type Note struct {
	Id          string
	UserId      string
	Content     string
	DateCreated time.Time
}
