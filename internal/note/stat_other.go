//go:build !darwin && !linux

package note

import (
	"os"
	"time"
)

// birthTime reports that no creation time is available; callers fall back to
// the modification time.
func birthTime(fi os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
