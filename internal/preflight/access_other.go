//go:build !unix

package preflight

import "os"

func checkReadWrite(path string) error {
	probe, err := os.CreateTemp(path, ".kd-access-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}
