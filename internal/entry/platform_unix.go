//go:build !windows

package entry

import "os"

const dotfilesHidden = true

func hasHiddenAttribute(os.FileInfo) bool { return false }

func isExecutable(_ string, info os.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
