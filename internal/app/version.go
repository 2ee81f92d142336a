package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version. Overridable at build time via
// -ldflags "-X github.com/agbru/bigtune/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether any argument requests the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "bigtune %s (%s)\n", Version, runtime.Version())
}
