package utility

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"
)

// GoProtect runs f and recovers from a panic so a background task cannot kill the process.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered panic: %v\n%s", err, debug.Stack())
		}
	}()
	f()
}

// Now returns the current UTC time truncated to milliseconds, the precision BSON dates keep.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
