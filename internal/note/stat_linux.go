//go:build linux

package note

import (
	"os"
	"syscall"
	"time"
)

// birthTime returns the closest creation-time equivalent the platform
// exposes. Linux has no portable birth time through os.Stat, so the inode
// status-change time stands in for it.
func birthTime(fi os.FileInfo) (time.Time, bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(st.Ctim.Sec, st.Ctim.Nsec), true
}
