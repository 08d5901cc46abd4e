// This file is part of bin2rpk.
//
// bin2rpk is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bin2rpk is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bin2rpk.  If not, see <https://www.gnu.org/licenses/>.

package archivefs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Node represents a single part of a full path.
type Node struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// a recognised archive file has InArchive set to true. note that an archive
	// file is also considered to be directory
	IsArchive bool
}

func (e Node) String() string {
	return e.Name
}

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, we split the in-zip path into the path
	// to a file and the file itself. paths inside a zip file always use
	// forward slashes. the root of the zip file is "."
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// Dir returns the current path if it is a directory, otherwise the directory
// containing the current path.
func (afs Path) Dir() string {
	if afs.isDir {
		return afs.current
	}
	return filepath.Dir(afs.current)
}

// IsDir returns true if the current path is a directory or an archive.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if the current path is an archive or is inside an
// archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// lookup the name in the zip file. the returned bool is true if the name
// refers to a directory
func (afs Path) lookup(name string) (*zip.File, bool, error) {
	for _, f := range afs.zf.File {
		n := strings.TrimSuffix(f.Name, "/")
		if n == name {
			return f, f.FileInfo().IsDir(), nil
		}
	}

	// zip files don't always have entries for directories so we need to look
	// for files that have the directory as a prefix
	for _, f := range afs.zf.File {
		if strings.HasPrefix(f.Name, name+"/") {
			return nil, true, nil
		}
	}

	return nil, false, fmt.Errorf("%s: %w", name, os.ErrNotExist)
}

// Open the file at the current path. The returned int is the size of the
// data behind the io.ReadSeeker.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, fmt.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, _, err := afs.lookup(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}

		r, err := f.Open()
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}
		defer r.Close()

		b, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	return f, int(info.Size()), nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// List returns the child entries for the current path. If the current path
// is not a directory then the entries of the containing directory are
// returned.
func (afs *Path) List() ([]Node, error) {
	var ent []Node

	if afs.zf != nil {
		seen := make(map[string]bool)

		for _, f := range afs.zf.File {
			name := strings.TrimSuffix(f.Name, "/")

			rel := name
			if afs.inZipPath != "." {
				if !strings.HasPrefix(name, afs.inZipPath+"/") {
					continue
				}
				rel = strings.TrimPrefix(name, afs.inZipPath+"/")
			}

			// entries deeper in the tree imply a directory
			isDir := f.FileInfo().IsDir()
			if i := strings.Index(rel, "/"); i >= 0 {
				rel = rel[:i]
				isDir = true
			}

			if rel == "" || seen[rel] {
				continue
			}
			seen[rel] = true

			ent = append(ent, Node{
				Name:  rel,
				IsDir: isDir,
			})
		}
	} else {
		dir, err := os.ReadDir(afs.Dir())
		if err != nil {
			return []Node{}, fmt.Errorf("archivefs: entries: %w", err)
		}

		for _, d := range dir {
			// using os.Stat() to get file information otherwise links to
			// directories do not have the IsDir() property
			p := filepath.Join(afs.Dir(), d.Name())
			fi, err := os.Stat(p)
			if err != nil {
				continue
			}

			if fi.IsDir() {
				ent = append(ent, Node{
					Name:  d.Name(),
					IsDir: true,
				})
			} else if zf, err := zip.OpenReader(p); err == nil {
				zf.Close()
				ent = append(ent, Node{
					Name:      d.Name(),
					IsDir:     true,
					IsArchive: true,
				})
			} else {
				ent = append(ent, Node{
					Name: d.Name(),
				})
			}
		}
	}

	// sort alphabetically (case insensitive)
	sort.SliceStable(ent, func(i int, j int) bool {
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}

// Set archivefs path. Each element of the path is checked and the first
// element that refers to an archive causes the remaining elements to be
// looked up inside that archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// reuse path string
	pth = ""

	for _, l := range lst {
		pth = filepath.Join(pth, l)

		if afs.zf != nil {
			if !afs.isDir {
				afs.Close()
				return fmt.Errorf("archivefs: set: %s is not a directory", pth)
			}

			p := l
			if afs.inZipPath != "." {
				p = path.Join(afs.inZipPath, l)
			}

			_, isDir, err := afs.lookup(p)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			afs.isDir = isDir
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}

		} else {
			fi, err := os.Stat(pth)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			afs.isDir = fi.IsDir()
			if afs.isDir {
				continue
			}

			afs.zf, err = zip.OpenReader(pth)
			if err == nil {
				// the root of an archive file is considered to be a directory
				afs.isDir = true
				afs.inZipPath = "."
				continue
			}

			if !errors.Is(err, zip.ErrFormat) {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}
		}
	}

	// make sure path is clean
	afs.current = filepath.Clean(pth)

	return nil
}
