// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Options configures the connection to an S3-compatible bucket
// (Cloudflare R2, MinIO, AWS S3 with path-style access).
type S3Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string

	// PublicBaseURL is the base under which objects are publicly served.
	// Usually the endpoint itself; a CDN origin in production.
	PublicBaseURL string
}

// S3Store implements [Store] on top of an S3-compatible bucket.
type S3Store struct {
	client   *s3.S3
	uploader *s3manager.Uploader
	bucket   string

	// urlPrefix is "<public-base>/<bucket>/"; every managed URL starts with it.
	urlPrefix string

	logger *slog.Logger
}

// NewS3Store builds the session and validates the options.
//
// Construction does not dial the endpoint; the first Put or Delete does.
func NewS3Store(opts S3Options, logger *slog.Logger) (*S3Store, error) {
	if opts.Bucket == "" || opts.Endpoint == "" {
		return nil, errors.New("storage: bucket and endpoint are required")
	}

	region := opts.Region
	if region == "" {
		region = "auto"
	}

	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(region),
		Endpoint:         aws.String(opts.Endpoint),
		S3ForcePathStyle: aws.Bool(true),
		Credentials:      credentials.NewStaticCredentials(opts.AccessKey, opts.SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create session: %w", err)
	}

	base := strings.TrimRight(opts.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(opts.Endpoint, "/")
	}

	return &S3Store{
		client:    s3.New(sess),
		uploader:  s3manager.NewUploader(sess),
		bucket:    opts.Bucket,
		urlPrefix: base + "/" + opts.Bucket + "/",
		logger:    logger,
	}, nil
}

// Ping verifies the bucket exists and the credentials can reach it.
// Used by the readiness probe.
func (s *S3Store) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("storage: bucket %q unreachable: %w", s.bucket, err)
	}
	return nil
}

// Put uploads an object with public-read access and returns its public URL.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload %q: %w", key, err)
	}

	s.logger.Debug("blob_uploaded", slog.String("key", key))
	return s.urlPrefix + key, nil
}

// Delete removes an object by key. An already-absent object is treated as
// deleted.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var awsErr awserr.RequestFailure
		if errors.As(err, &awsErr) &&
			(awsErr.StatusCode() == http.StatusNotFound || awsErr.Code() == s3.ErrCodeNoSuchKey) {
			return nil
		}
		return fmt.Errorf("storage: delete %q: %w", key, err)
	}

	return nil
}

// Owns reports whether rawURL points into the managed bucket namespace.
func (s *S3Store) Owns(rawURL string) bool {
	return strings.HasPrefix(rawURL, s.urlPrefix)
}

// Key extracts the object key from a managed URL, dropping any query string.
func (s *S3Store) Key(rawURL string) (string, bool) {
	if !s.Owns(rawURL) {
		return "", false
	}

	key := strings.TrimPrefix(rawURL, s.urlPrefix)
	if i := strings.IndexByte(key, '?'); i >= 0 {
		key = key[:i]
	}
	if key == "" {
		return "", false
	}

	return key, true
}
