/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/swimseed/s3store"
)

// NewCachedHttpClient returns an http.Client whose GET responses are cached
// for maxAge regardless of what the origin says. With a bucket the cache is
// kept in S3; without one, or if the bucket cannot be reached, responses are
// cached in memory for the life of the process.
func NewCachedHttpClient(ctx context.Context, bucket string,
	maxAge time.Duration) *http.Client {

	var cache httpcache.Cache
	if bucket != "" {
		store := s3store.New(ctx, bucket, true, true)
		if err := store.Init(); err != nil {
			log.Printf("httpcache: warning failed to init S3 cache: %v; falling back to in-memory cache",
				err)
		} else {
			cache = store
		}
	}
	if cache == nil {
		cache = httpcache.NewMemoryCache()
	}

	hc := httpcache.NewTransport(cache)
	// origin servers publishing entry lists rarely send cache headers, so
	// impose our own TTL before httpcache decides whether to store
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Response: func(resp *http.Response) error {
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			resp.Header.Set("Cache-Control",
				fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}
	return resp, nil
}
