// Copyright (C) 2025 siteguard-sec
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package evidence stores uploaded survey evidence files.
package evidence

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrNotFound marks a delete of an absent evidence file. Cascade cleanup
// treats it as already satisfied.
var ErrNotFound = errors.New("evidence file not found")

// DiskStore keeps evidence files under a local root directory. Paths stored
// on survey rows are relative to the root.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (d *DiskStore) Delete(path string) error {
	// confine the path to the root
	full := filepath.Join(d.root, filepath.Clean("/"+path))

	err := os.Remove(full)
	if os.IsNotExist(err) {
		return errors.Wrapf(ErrNotFound, "path %s", path)
	}
	return err
}

func (d *DiskStore) Write(path string, content []byte) error {
	full := filepath.Join(d.root, filepath.Clean("/"+path))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return err
	}
	return os.WriteFile(full, content, 0o640)
}
