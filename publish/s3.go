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

package publish

import (
	"bytes"
	"context"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jetsetilly/bin2rpk/curated"
	"github.com/jetsetilly/bin2rpk/logger"
	"github.com/jetsetilly/bin2rpk/prefs"
	"github.com/jetsetilly/bin2rpk/rpk"
)

// PublishError is the pattern used for errors created by this package.
const PublishError = "publish: %v"

// ContentType of uploaded archives.
const ContentType = "application/zip"

// default time allowed for an upload
const defaultTimeout = 60 * time.Second

// S3Sink uploads archives to a bucket. The bucket is created the first time
// an archive is uploaded if it does not already exist. A failure to check or
// create the bucket is not remembered and the next write tries again.
type S3Sink struct {
	client *minio.Client
	bucket string
	region string
	key    string

	// time allowed for each upload. zero means no limit
	Timeout time.Duration

	// the bucket is known to exist. until then every write checks for it
	crit        sync.Mutex
	bucketReady bool
}

// ObjectKey returns the key used for the archive filename, taking the
// configured prefix into account. Keys always use forward slashes.
func ObjectKey(prefix string, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// NewS3Sink creates a sink that uploads to the object store described by the
// configuration. The filename is the name of the archive, from which the
// object key is derived.
func NewS3Sink(cfg prefs.S3, filename string) (*S3Sink, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, curated.Errorf(PublishError, "s3 endpoint is required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, curated.Errorf(PublishError, "s3 bucket is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, curated.Errorf(PublishError, "s3 access key and secret key are required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:      credentials.NewStaticV4(access, secret, ""),
		Secure:     cfg.UseSSL,
		Region:     region,
		MaxRetries: cfg.Retries,
	})
	if err != nil {
		return nil, curated.Errorf(PublishError, err)
	}

	return &S3Sink{
		client:  client,
		bucket:  bucket,
		region:  region,
		key:     ObjectKey(cfg.Prefix, filename),
		Timeout: defaultTimeout,
	}, nil
}

// Key returns the object key that the archive will be uploaded to.
func (s *S3Sink) Key() string {
	return s.key
}

func (s *S3Sink) ensureBucket(ctx context.Context) error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.bucketReady {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		logger.Logf(logger.Allow, "publish", "creating bucket %s", s.bucket)
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
		if err != nil {
			return err
		}
	}

	s.bucketReady = true

	return nil
}

// Write implements the rpk.Sink interface.
func (s *S3Sink) Write(bundle *rpk.Bundle) error {
	ctx := context.Background()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	return s.WriteContext(ctx, bundle)
}

// WriteContext is like Write() but with a caller supplied context.
func (s *S3Sink) WriteContext(ctx context.Context, bundle *rpk.Bundle) error {
	// the archive is encoded completely before the upload starts. a failed
	// encoding means nothing is uploaded and a failed upload leaves no object
	b := &bytes.Buffer{}
	if err := rpk.Encode(bundle, b); err != nil {
		return curated.Errorf(PublishError, err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return curated.Errorf(PublishError, err)
	}

	_, err := s.client.PutObject(ctx, s.bucket, s.key, bytes.NewReader(b.Bytes()), int64(b.Len()), minio.PutObjectOptions{
		ContentType: ContentType,
	})
	if err != nil {
		return curated.Errorf(PublishError, err)
	}

	logger.Logf(logger.Allow, "publish", "uploaded s3://%s/%s (%d bytes)", s.bucket, s.key, b.Len())

	return nil
}
