package store

import (
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// s3Stub is a minimal path-style S3 endpoint holding objects in memory. It
// answers just the calls ObjectStore makes: bucket creation and location,
// object put/get and ListObjectsV2.
type s3Stub struct {
	mu      sync.Mutex
	buckets map[string]bool
	objects map[string][]byte // "bucket/key"
	modTime time.Time
}

type s3ListResult struct {
	XMLName     xml.Name `xml:"ListBucketResult"`
	Name        string
	Prefix      string
	KeyCount    int
	MaxKeys     int
	IsTruncated bool
	Contents    []s3ListEntry
}

type s3ListEntry struct {
	Key          string
	LastModified string
	ETag         string
	Size         int
	StorageClass string
}

func newS3Stub(t *testing.T) (*s3Stub, string) {
	t.Helper()
	s := &s3Stub{
		buckets: map[string]bool{},
		objects: map[string][]byte{},
		modTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return s, strings.TrimPrefix(srv.URL, "http://")
}

func (s *s3Stub) put(bucket, key string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = body
}

func (s *s3Stub) has(bucket, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == "" {
		return s.buckets[bucket]
	}
	_, ok := s.objects[bucket+"/"+key]
	return ok
}

func (s *s3Stub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	q := r.URL.Query()
	switch {
	case key == "" && r.Method == http.MethodPut:
		s.buckets[bucket] = true
		w.WriteHeader(http.StatusOK)
	case key == "" && r.Method == http.MethodHead:
		if !s.buckets[bucket] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case key == "" && q.Has("location"):
		w.Header().Set("Content-Type", "application/xml")
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/"></LocationConstraint>`)
	case key == "" && q.Get("list-type") == "2":
		s.list(w, bucket, q.Get("prefix"))
	case r.Method == http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		s.objects[bucket+"/"+key] = body
		w.Header().Set("ETag", `"stub-etag"`)
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet:
		body, ok := s.objects[bucket+"/"+key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message><Key>`+key+`</Key></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set("Last-Modified", s.modTime.Format(http.TimeFormat))
		w.Header().Set("ETag", `"stub-etag"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func (s *s3Stub) list(w http.ResponseWriter, bucket, prefix string) {
	res := s3ListResult{Name: bucket, Prefix: prefix, MaxKeys: 1000}
	keys := []string{}
	for k := range s.objects {
		if b, key, _ := strings.Cut(k, "/"); b == bucket && strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		res.Contents = append(res.Contents, s3ListEntry{
			Key:          k,
			LastModified: s.modTime.Format("2006-01-02T15:04:05.000Z"),
			ETag:         `"stub-etag"`,
			Size:         len(s.objects[bucket+"/"+k]),
			StorageClass: "STANDARD",
		})
	}
	res.KeyCount = len(res.Contents)
	w.Header().Set("Content-Type", "application/xml")
	_ = xml.NewEncoder(w).Encode(res)
}
