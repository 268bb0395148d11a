/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestHttpClientMemoryCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {

		atomic.AddInt32(&hits, 1)
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("id,name\n1,Taro\n"))
	}))
	defer srv.Close()

	client := NewCachedHttpClient(context.Background(), "", 5*time.Minute)

	for i := 0; i < 3; i++ {
		req, err := http.NewRequest("GET", srv.URL+"/entries.csv", nil)
		if err != nil {
			t.Fatalf("NewRequest: %v", err)
		}
		req.Header.Set("User-Agent", UserAgent)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Errorf("Failed to read response body")
		}
		if len(data) == 0 {
			t.Errorf("Empty data")
		}
		if i > 0 && resp.Header.Get("X-From-Cache") != "1" {
			t.Errorf("request %d not served from cache", i)
		}
		resp.Body.Close()
	}

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("origin hits = %d; want 1", got)
	}
}

func TestHeaderOverrideTransportRequestHook(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {

		gotAgent = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	orig, err := http.NewRequest("GET", srv.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	rt := &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Request: func(req *http.Request) {
			req.Header.Set("User-Agent", UserAgent)
		},
	}
	resp, err := rt.RoundTrip(orig)
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	resp.Body.Close()

	if gotAgent != UserAgent {
		t.Errorf("server saw User-Agent %q; want %q", gotAgent, UserAgent)
	}
	if orig.Header.Get("User-Agent") != "" {
		t.Errorf("caller's request was modified")
	}
}
