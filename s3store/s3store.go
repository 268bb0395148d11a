/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package s3store keeps meet artifacts in Amazon S3. A Store serves as an
 * httpcache.Cache for fetched rosters and as the destination for published
 * heat sheets. The cache half derives from github.com/sourcegraph/s3cache.
 */
package s3store

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const (
	cachePrefix   = "rostercache"
	publishPrefix = "published"
)

// Store reads and writes objects in a single S3 bucket.
type Store struct {
	// Config is the AWS configuration loaded by Init.
	Config aws.Config

	// Client is initialized by Init from Config; callers may replace it.
	Client *s3.Client

	bucketName string

	// gzip compresses cache entries; their keys get a ".gz" suffix.
	gzip bool

	logErrors bool

	// ctx is used for the httpcache.Cache methods, which take no context.
	ctx context.Context
}

// New returns a Store for bucket. Init must be called before use.
func New(ctx context.Context, bucket string, gzipIn bool,
	logErrorsIn bool) *Store {

	return &Store{
		ctx:        ctx,
		bucketName: bucket,
		gzip:       gzipIn,
		logErrors:  logErrorsIn,
	}
}

// Bucket returns the bucket name.
func (s *Store) Bucket() string {
	return s.bucketName
}

// Init loads the default AWS configuration (environment, shared config and
// credentials files) and verifies the bucket can be listed.
func (s *Store) Init() error {
	var err error
	s.Config, err = config.LoadDefaultConfig(s.ctx)
	if err != nil {
		return fmt.Errorf("s3store.init: failed to load AWS config: %w", err)
	}
	s.Client = s3.NewFromConfig(s.Config)

	if _, err = s.Client.HeadBucket(s.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucketName),
	}); err != nil {
		return fmt.Errorf("s3store.init: head bucket failed for %s: %w",
			s.bucketName, err)
	}
	if _, err = s.Client.ListObjectsV2(s.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3store.init: list objects failed for %s: %w",
			s.bucketName, err)
	}

	return nil
}

// Get implements httpcache.Cache.
func (s *Store) Get(key string) ([]byte, bool) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.cacheObjectKey(key)),
	}

	resp, err := s.Client.GetObject(s.ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		// NoSuchKey is an ordinary miss
		if s.logErrors &&
			!(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {

			log.Printf("s3store.get: failed to get object %v/%v: %v",
				s.bucketName, *input.Key, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	rdr := resp.Body
	if s.gzip {
		rdr, err = gzip.NewReader(rdr)
		if err != nil {
			s.logf("s3store.get: failed to open compressed object %v/%v: %v",
				s.bucketName, *input.Key, err)
			return nil, false
		}
		defer rdr.Close()
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		s.logf("s3store.get: failed to read object %v/%v: %v", s.bucketName,
			*input.Key, err)
		return nil, false
	}

	return data, true
}

// Set implements httpcache.Cache.
func (s *Store) Set(key string, data []byte) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.cacheObjectKey(key)),
		Body:   bytes.NewReader(data),
	}

	if s.gzip {
		buf, err := gzipBytes(data)
		if err != nil {
			s.logf("s3store.set: failed to gzip data for %v/%v: %v",
				s.bucketName, *input.Key, err)
			return
		}
		input.Body = buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := s.Client.PutObject(s.ctx, input); err != nil {
		s.logf("s3store.set: put failed for %v/%v: %v", s.bucketName,
			*input.Key, err)
	}
}

// Delete implements httpcache.Cache.
func (s *Store) Delete(key string) {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.cacheObjectKey(key)),
	}

	if _, err := s.Client.DeleteObject(s.ctx, input); err != nil {
		s.logf("s3store.delete: delete failed for %v/%v: %v", s.bucketName,
			*input.Key, err)
	}
}

// Publish uploads a rendered artifact under name and returns its s3:// URI.
// Unlike the cache methods it reports failures to the caller.
func (s *Store) Publish(ctx context.Context, name string, data []byte,
	contentType string) (string, error) {

	if s.Client == nil {
		return "", fmt.Errorf("s3store.publish: store for %v not initialized",
			s.bucketName)
	}
	key := s.publishObjectKey(name)
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3store.publish: put failed for %v/%v: %w",
			s.bucketName, key, err)
	}

	return fmt.Sprintf("s3://%v/%v", s.bucketName, key), nil
}

func (s *Store) cacheObjectKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	objKey := path.Join(cachePrefix, hex.EncodeToString(h.Sum(nil)))
	if s.gzip {
		objKey += ".gz"
	}

	return objKey
}

func (s *Store) publishObjectKey(name string) string {
	return path.Join(publishPrefix, path.Clean("/"+name))
}

func (s *Store) logf(format string, args ...any) {
	if s.logErrors {
		log.Printf(format, args...)
	}
}

func gzipBytes(data []byte) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return &buf, nil
}
