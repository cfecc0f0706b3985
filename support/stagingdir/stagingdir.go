// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package stagingdir manages directories that are assembled in a
// temporary location and atomically moved into place on commit.
//
// The capture writer stages its stream and metadata files here so a
// crashed or abandoned recording never leaves a partial capture at the
// destination path.
package stagingdir

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// D manages a staging directory.
//
// While D is active, it resides in a temporary location. Once
// finished, D can either be committed or destroyed. On commit, it is
// atomically moved into its destination; on destroy, it is deleted
// along with all of its contents.
type D struct {
	// tempDir is the temporary directory used for staging.
	tempDir string

	// path is the path of the staging directory.
	path string
}

// New creates a new staging directory underneath tempDir, created with
// the specified prefix.
func New(tempDir, prefix string) (*D, error) {
	stagingPath, err := os.MkdirTemp(tempDir, prefix)
	if err != nil {
		return nil, err
	}

	return &D{
		tempDir: tempDir,
		path:    stagingPath,
	}, nil
}

// Path builds a path relative to the staging directory from the
// provided components.
func (sd *D) Path(first string, components ...string) string {
	if sd.path == "" {
		panic("staging directory is no longer active")
	}

	if len(components) == 0 {
		return filepath.Join(sd.path, first)
	}

	comps := make([]string, 0, 2+len(components))
	comps = append(comps, sd.path, first)
	return filepath.Join(append(comps, components...)...)
}

// Destroy purges the staging directory and its contents.
func (sd *D) Destroy() error {
	if sd.path == "" {
		return nil
	}

	if err := os.RemoveAll(sd.path); err != nil {
		return err
	}

	sd.path = ""
	return nil
}

// Commit finalizes the staging directory, atomically moving it to
// dest.
//
// If something already exists at dest, it is moved aside into the
// temporary area and purged in the background.
func (sd *D) Commit(dest string) error {
	if sd.path == "" {
		return errors.New("invalid staging directory")
	}

	if _, st := os.Stat(dest); st == nil {
		killDir, err := os.MkdirTemp(sd.tempDir, "overwrite")
		if err != nil {
			return errors.Wrap(err, "create overwrite directory")
		}
		defer func() {
			go func() {
				_ = os.RemoveAll(killDir)
			}()
		}()

		// If this rename fails we still try the final move, in case it
		// works anyway.
		killDest := filepath.Join(killDir, filepath.Base(dest))
		_ = os.Rename(dest, killDest)
	}

	if err := os.Rename(sd.path, dest); err != nil {
		return errors.Wrapf(err, "moving staged directory into place (%q => %q)", sd.path, dest)
	}
	sd.path = ""
	return nil
}
