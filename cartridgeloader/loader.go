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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/bin2rpk/archivefs"
	"github.com/jetsetilly/bin2rpk/curated"
	"github.com/jetsetilly/bin2rpk/logger"
)

// Sentinel error patterns. Test for them with curated.Is() or curated.Has().
const (
	LoaderError   = "cartridgeloader: %v"
	NoMainFile    = "cartridgeloader: unable to guess main bin in %s"
	OnlyCompanion = "cartridgeloader: missing main bin (only d file provided: %s)"
	GROMFile      = "cartridgeloader: GROM files are not supported (%s)"
)

// Loader is used to load cartridge data.
type Loader struct {
	// filename of cartridge to load. this is the filename as specified by
	// the user and may be a zip file
	Filename string

	// the main file that was loaded. if Filename is a zip file this will be
	// the path of the bin file inside the archive
	Main string

	// the size of the main file. if Companion is true then Data will be
	// larger than this
	MainSize int

	// the companion "d" file was found and has been appended to Data
	Companion     bool
	CompanionFile string

	// sha1 hash of the loaded data
	Hash string

	// copy of the loaded data. subsequence calls to Load() will return a copy
	// of this data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the cartridge filename. This is
// the filename with directory, archive extension and bin extension removed.
func (cl Loader) ShortName() string {
	n := cl.Main
	if n == "" {
		n = archivefs.TrimArchiveExt(cl.Filename)
	}
	return stem(n)
}

// OutputName returns the default filename for the rpk archive. The archive
// is placed beside the file specified by the user.
func (cl Loader) OutputName() string {
	if strings.HasPrefix(cl.Filename, "http://") || strings.HasPrefix(cl.Filename, "https://") {
		return stem(path.Base(cl.Filename)) + ".rpk"
	}
	n := archivefs.TrimArchiveExt(strings.TrimPrefix(cl.Filename, "file://"))
	return filepath.Join(filepath.Dir(n), stem(n)+".rpk")
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. The companion file is loaded too if it exists.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		err = cl.loadURL()
	case "file":
		fallthrough
	case "":
		err = cl.loadFile()
	default:
		// windows drive letters look like a URL scheme
		if len(scheme) == 1 {
			err = cl.loadFile()
		} else {
			err = curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}
	}
	if err != nil {
		cl.Data = nil
		return err
	}

	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))

	return nil
}

func (cl *Loader) loadURL() error {
	switch TypeFromName(path.Base(cl.Filename)) {
	case FileD:
		return curated.Errorf(OnlyCompanion, cl.Filename)
	case FileG:
		return curated.Errorf(GROMFile, cl.Filename)
	}

	logger.Logf(logger.Detail, "loader", "fetching %s", cl.Filename)

	resp, err := http.Get(cl.Filename)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return curated.Errorf(LoaderError, fmt.Sprintf("%s: %s", cl.Filename, resp.Status))
	}

	cl.Data, err = io.ReadAll(resp.Body)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}
	cl.Main = path.Base(cl.Filename)
	cl.MainSize = len(cl.Data)

	return nil
}

func (cl *Loader) loadFile() error {
	var afs archivefs.Path
	defer afs.Close()

	fn := strings.TrimPrefix(cl.Filename, "file://")

	err := afs.Set(fn)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	// for archives find the main file
	if afs.IsDir() {
		if !afs.InArchive() {
			return curated.Errorf(LoaderError, fmt.Sprintf("%s is a directory", fn))
		}

		nodes, err := afs.List()
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

		main, err := findMainFile(nodes)
		if err != nil {
			return curated.Errorf(NoMainFile, fn)
		}

		fn = filepath.Join(fn, main)
		err = afs.Set(fn)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
	}

	switch TypeFromName(afs.Base()) {
	case FileD:
		return curated.Errorf(OnlyCompanion, afs.Base())
	case FileG:
		return curated.Errorf(GROMFile, afs.Base())
	}

	logger.Logf(logger.Detail, "loader", "loading %s", fn)

	cl.Data, err = archivefs.ReadFile(fn)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}
	cl.Main = afs.Base()
	cl.MainSize = len(cl.Data)

	// look for the companion file in the same directory
	if d, ok := CompanionName(afs.Base()); ok {
		dfn := filepath.Join(afs.Dir(), d)
		data, err := archivefs.ReadFile(dfn)
		if err == nil {
			logger.Logf(logger.Detail, "loader", "loading %s", dfn)
			cl.Data = append(cl.Data, data...)
			cl.Companion = true
			cl.CompanionFile = d
		} else if !errors.Is(err, os.ErrNotExist) {
			return curated.Errorf(LoaderError, err)
		}
	}

	return nil
}

// findMainFile chooses the main file from the list of nodes in an archive.
// a single GROM file or a single C file is chosen. GROM files are preferred
// because that is the file that determines the type of cartridge
func findMainFile(nodes []archivefs.Node) (string, error) {
	var c, g []string
	for _, n := range nodes {
		if n.IsDir || !strings.HasSuffix(strings.ToLower(n.Name), Extension) {
			continue
		}
		switch TypeFromName(n.Name) {
		case FileC:
			c = append(c, n.Name)
		case FileG:
			g = append(g, n.Name)
		}
	}

	if len(g) == 1 {
		return g[0], nil
	}
	if len(c) == 1 {
		return c[0], nil
	}

	return "", fmt.Errorf("no unique main file")
}
