//go:build unix

package script

// IsUnix reports whether the host is a Unix-family system.
const IsUnix = true
