//go:build darwin

package note

import (
	"os"
	"syscall"
	"time"
)

// birthTime returns the file's true creation time; macOS exposes it directly.
func birthTime(fi os.FileInfo) (time.Time, bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec), true
}
