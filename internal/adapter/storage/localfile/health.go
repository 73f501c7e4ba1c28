package localfile

import (
	"context"
	"fmt"
	"os"
)

// DirCheck verifies the gallery directory still accepts writes. A full or
// read-only disk would otherwise only show up when a registration tries to
// save its record.
type DirCheck struct {
	dir string
}

func NewDirCheck(dir string) *DirCheck {
	return &DirCheck{dir: dir}
}

func (d *DirCheck) Name() string { return "gallery_dir" }

func (d *DirCheck) Ping(_ context.Context) error {
	probe, err := os.CreateTemp(d.dir, ".health-*")
	if err != nil {
		return fmt.Errorf("gallery dir not writable: %w", err)
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}
