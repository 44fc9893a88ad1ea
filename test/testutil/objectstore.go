package testutil

import (
	"bufio"
	"bytes"
	"crypto/md5"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// StoredObject is one object held by the in-memory store.
type StoredObject struct {
	Data        []byte
	ContentType string
}

// ObjectStore is an in-process S3 endpoint backed by a map. It speaks just
// enough of the protocol for the storage client: bucket location queries,
// object PUT with aws-chunked bodies, and object GET. Signatures are not
// verified.
type ObjectStore struct {
	srv *httptest.Server

	mu         sync.Mutex
	objects    map[string]StoredObject
	denyWrites bool
}

// NewObjectStore starts the store on an ephemeral port and shuts it down
// when the test finishes.
func NewObjectStore(t *testing.T) *ObjectStore {
	t.Helper()
	s := &ObjectStore{objects: map[string]StoredObject{}}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

// Endpoint returns the http address of the store, suitable as the endpoint
// input of the upload node.
func (s *ObjectStore) Endpoint() string {
	return s.srv.URL
}

// Object returns the stored object under bucket and key.
func (s *ObjectStore) Object(bucket, key string) (StoredObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[bucket+"/"+key]
	return obj, ok
}

// Seed stores an object directly, bypassing the protocol, and returns its
// address.
func (s *ObjectStore) Seed(bucket, key string, data []byte, contentType string) string {
	s.mu.Lock()
	s.objects[bucket+"/"+key] = StoredObject{Data: data, ContentType: contentType}
	s.mu.Unlock()
	return s.srv.URL + "/" + bucket + "/" + key
}

// DenyWrites makes every following PUT fail with an AccessDenied error.
func (s *ObjectStore) DenyWrites() {
	s.mu.Lock()
	s.denyWrites = true
	s.mu.Unlock()
}

func (s *ObjectStore) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && r.URL.Query().Has("location") {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/">us-east-1</LocationConstraint>`)
		return
	}

	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "bucket and key are required", http.StatusBadRequest)
		return
	}
	bucket, key := parts[0], parts[1]

	switch r.Method {
	case http.MethodPut:
		s.mu.Lock()
		denied := s.denyWrites
		s.mu.Unlock()
		if denied {
			writeS3Error(w, http.StatusForbidden, "AccessDenied", "Access Denied.", bucket, key)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		// Streaming signatures wrap the body in aws-chunked framing.
		if strings.HasPrefix(r.Header.Get("X-Amz-Content-Sha256"), "STREAMING-") {
			body, err = decodeAWSChunked(body)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		s.mu.Lock()
		s.objects[bucket+"/"+key] = StoredObject{Data: body, ContentType: r.Header.Get("Content-Type")}
		s.mu.Unlock()

		w.Header().Set("ETag", fmt.Sprintf("%q", fmt.Sprintf("%x", md5.Sum(body))))
		w.WriteHeader(http.StatusOK)

	case http.MethodGet, http.MethodHead:
		s.mu.Lock()
		obj, ok := s.objects[bucket+"/"+key]
		s.mu.Unlock()
		if !ok {
			writeS3Error(w, http.StatusNotFound, "NoSuchKey", "The specified key does not exist.", bucket, key)
			return
		}
		if obj.ContentType != "" {
			w.Header().Set("Content-Type", obj.ContentType)
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(obj.Data)))
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(obj.Data)

	default:
		http.Error(w, "method not supported", http.StatusMethodNotAllowed)
	}
}

func writeS3Error(w http.ResponseWriter, status int, code, message, bucket, key string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message><Key>%s</Key><BucketName>%s</BucketName><Resource>/%s/%s</Resource><RequestId>tx-objectstore</RequestId></Error>`,
		code, message, key, bucket, bucket, key)
}

// decodeAWSChunked strips the aws-chunked framing the client wraps around
// PUT bodies on plain-http endpoints. Each chunk is a hex size line,
// optionally carrying a chunk-signature extension, then the data and a
// trailing CRLF. A zero size ends the stream; anything after it, like
// trailing checksum headers, is dropped.
func decodeAWSChunked(raw []byte) ([]byte, error) {
	var out bytes.Buffer
	rd := bufio.NewReader(bytes.NewReader(raw))
	for {
		line, err := rd.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("reading chunk header: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		sizeHex := line
		if i := strings.IndexByte(line, ';'); i >= 0 {
			sizeHex = line[:i]
		}
		size, err := strconv.ParseInt(sizeHex, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("bad chunk size %q: %v", sizeHex, err)
		}
		if size == 0 {
			return out.Bytes(), nil
		}
		if _, err := io.CopyN(&out, rd, size); err != nil {
			return nil, fmt.Errorf("reading chunk data: %w", err)
		}
	}
}
