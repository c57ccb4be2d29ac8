// Package buildinfo holds the package name and version baked into the binary.
//
// Both values can be replaced at link time:
//
//	go build -ldflags "-X notepad0/internal/buildinfo.Version=1.2.3"
package buildinfo

// Name is the package name shown by --version and in the About dialog.
var Name = "notepad0"

// Version is the package version shown by --version and in the About dialog.
var Version = "0.0.0-dev"

// Description is the one-line summary printed by --help.
const Description = "A minimal notepad-style text editor"

// Info is a snapshot of the build metadata.
type Info struct {
	Name        string
	Version     string
	Description string
}

// Current returns the metadata of the running binary.
func Current() Info {
	return Info{Name: Name, Version: Version, Description: Description}
}

// String returns "<name> <version>", the body of the About dialog.
func (i Info) String() string {
	return i.Name + " " + i.Version
}
