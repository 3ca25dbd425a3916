//go:build !unix

package export

import (
	"os"
)

// Fallback for platforms without access(2): create and drop a probe file.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".write-probe.*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
