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

package prefs

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jetsetilly/bin2rpk/curated"
	"github.com/jetsetilly/bin2rpk/logger"
	"github.com/jetsetilly/bin2rpk/paths"
)

// PrefsError is the pattern used for errors created by this package.
const PrefsError = "prefs: %v"

// EnvFiles is the list of files loaded by Load(). Files that do not exist are
// ignored. Values from earlier files take precedence.
var EnvFiles = []string{".env", "bin2rpk.env", paths.ResourcePath("bin2rpk.env")}

// list of preference keys
const (
	KeyOutputDir   = "output.dir"
	KeyS3Endpoint  = "s3.endpoint"
	KeyS3Region    = "s3.region"
	KeyS3AccessKey = "s3.accesskey"
	KeyS3SecretKey = "s3.secretkey"
	KeyS3Bucket    = "s3.bucket"
	KeyS3Prefix    = "s3.prefix"
	KeyS3UseSSL    = "s3.usessl"
	KeyS3Retries   = "s3.retries"
)

// Keys is the list of all preference keys.
var Keys = []string{
	KeyOutputDir,
	KeyS3Endpoint, KeyS3Region, KeyS3AccessKey, KeyS3SecretKey,
	KeyS3Bucket, KeyS3Prefix, KeyS3UseSSL, KeyS3Retries,
}

var defaults = map[string]Value{
	KeyS3Region:  "us-east-1",
	KeyS3UseSSL:  "true",
	KeyS3Retries: "3",
}

// EnvName returns the name of the environment variable for the key.
func EnvName(key string) string {
	return "BIN2RPK_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// S3 configures the publishing of archives to an S3 compatible object store.
type S3 struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string

	// prefix for object keys. may be empty
	Prefix string

	UseSSL bool

	// number of attempts made for each request to the object store
	Retries int
}

// Enabled returns true if enough information has been provided to publish
// archives.
func (s S3) Enabled() bool {
	return s.Endpoint != "" && s.Bucket != ""
}

// Config is the resolved configuration.
type Config struct {
	// directory for output files. if empty the archive is written beside the
	// cartridge file
	OutputDir string

	S3 S3
}

// Load the configuration. The top of the command line stack is consulted for
// every key.
func Load() (Config, error) {
	for _, f := range EnvFiles {
		err := godotenv.Load(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, curated.Errorf(PrefsError, err)
		}
		logger.Logf(logger.Detail, "prefs", "loaded %s", f)
	}

	get := func(key string) string {
		if ok, v := GetCommandLinePref(key); ok {
			return v
		}
		if v, ok := os.LookupEnv(EnvName(key)); ok {
			return strings.TrimSpace(v)
		}
		return defaults[key]
	}

	cfg := Config{
		OutputDir: get(KeyOutputDir),
		S3: S3{
			Endpoint:  get(KeyS3Endpoint),
			Region:    get(KeyS3Region),
			AccessKey: get(KeyS3AccessKey),
			SecretKey: get(KeyS3SecretKey),
			Bucket:    get(KeyS3Bucket),
			Prefix:    get(KeyS3Prefix),
		},
	}

	ssl := get(KeyS3UseSSL)
	if ssl != "" {
		v, err := strconv.ParseBool(ssl)
		if err != nil {
			return Config{}, curated.Errorf(PrefsError, "s3.usessl must be true or false")
		}
		cfg.S3.UseSSL = v
	}

	retries := get(KeyS3Retries)
	if retries != "" {
		v, err := strconv.Atoi(retries)
		if err != nil || v < 1 {
			return Config{}, curated.Errorf(PrefsError, "s3.retries must be a positive number")
		}
		cfg.S3.Retries = v
	}

	return cfg, nil
}
