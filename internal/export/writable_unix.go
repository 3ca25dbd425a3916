//go:build unix

package export

import "golang.org/x/sys/unix"

// checkWritable asks the kernel whether the process may create entries in dir.
func checkWritable(dir string) error {
	return unix.Access(dir, unix.W_OK|unix.X_OK)
}
