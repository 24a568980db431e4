package profile

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

// BlobStore persists small named blobs grouped by object. *gdata.Manager
// satisfies it.
type BlobStore interface {
	ObjectPropExists(object, property string) bool
	LoadObjectProp(object, property string) ([]byte, error)
	SaveObjectProp(object, property string, data []byte) error
}

// OpenBlobs opens the per-user data directory for appName. When the
// platform storage cannot be opened the profile falls back to memory and
// nothing survives the process.
func OpenBlobs(appName string, logger *zap.Logger) BlobStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil || m == nil {
		logger.Warn("profile storage unavailable, using memory", zap.String("app", appName), zap.Error(err))
		return NewMemoryBlobs()
	}
	return m
}

// MemoryBlobs is an in-process BlobStore.
type MemoryBlobs struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBlobs creates an empty MemoryBlobs.
func NewMemoryBlobs() *MemoryBlobs {
	return &MemoryBlobs{data: make(map[string][]byte)}
}

func blobKey(object, property string) string {
	return object + "/" + property
}

func (m *MemoryBlobs) ObjectPropExists(object, property string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[blobKey(object, property)]
	return ok
}

func (m *MemoryBlobs) LoadObjectProp(object, property string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[blobKey(object, property)]
	if !ok {
		return nil, fmt.Errorf("%s/%s: not found", object, property)
	}
	return append([]byte(nil), b...), nil
}

func (m *MemoryBlobs) SaveObjectProp(object, property string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[blobKey(object, property)] = append([]byte(nil), data...)
	return nil
}
