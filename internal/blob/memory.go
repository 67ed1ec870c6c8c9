package blob

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryObject struct {
	data        []byte
	contentType string
	modTime     time.Time
}

// MemoryStore keeps artifacts in process memory, used by tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
	nowFn   func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory artifact store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject), nowFn: time.Now}
}

func (s *MemoryStore) Put(ctx context.Context, key string, body io.Reader, contentType string) (ObjectInfo, error) {
	if !validKey(key) {
		return ObjectInfo{}, ErrInvalidKey
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return ObjectInfo{}, err
	}
	obj := memoryObject{data: data, contentType: contentType, modTime: s.nowFn()}
	s.mu.Lock()
	s.objects[key] = obj
	s.mu.Unlock()
	return ObjectInfo{Key: key, Size: int64(len(data)), ContentType: contentType, ModTime: obj.modTime}, nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ObjectInfo{}, ErrNotFound
	}
	info := ObjectInfo{Key: key, Size: int64(len(obj.data)), ContentType: obj.contentType, ModTime: obj.modTime}
	return io.NopCloser(bytes.NewReader(obj.data)), info, nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	s.mu.RLock()
	out := make([]ObjectInfo, 0, len(s.objects))
	for key, obj := range s.objects {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		out = append(out, ObjectInfo{
			Key: key, Size: int64(len(obj.data)), ContentType: obj.contentType, ModTime: obj.modTime,
		})
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *MemoryStore) Driver() string { return "memory" }

func (s *MemoryStore) Close() error { return nil }
