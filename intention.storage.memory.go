package intention

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of TemplateStorage. It is
// primarily intended for testing and development; all data is lost when the
// process terminates.
type MemoryStorage struct {
	mu        sync.RWMutex
	templates map[string]*StoredTemplate
	closed    bool
}

// MemoryStorageDriver is the driver for creating MemoryStorage instances.
type MemoryStorageDriver struct{}

func init() {
	RegisterStorageDriver(StorageDriverNameMemory, &MemoryStorageDriver{})
}

// Open creates a new MemoryStorage instance. The connection string is
// ignored for memory storage.
func (d *MemoryStorageDriver) Open(connectionString string) (TemplateStorage, error) {
	return NewMemoryStorage(), nil
}

// NewMemoryStorage creates a new in-memory template storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		templates: make(map[string]*StoredTemplate),
	}
}

// Get retrieves a stored template by name.
func (s *MemoryStorage) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	stored, ok := s.templates[name]
	if !ok {
		return nil, NewStorageTemplateNotFoundError(name)
	}
	return copyStoredTemplate(stored), nil
}

// Save upserts a template spec by name.
func (s *MemoryStorage) Save(ctx context.Context, spec *TemplateSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if spec.Name == "" {
		return &StorageError{Message: ErrMsgStorageSaveFailed, Cause: NewSchemaDescriptorError(ErrMsgSpecMissingName, "")}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	now := time.Now().UTC()
	createdAt := now
	if existing, ok := s.templates[spec.Name]; ok {
		createdAt = existing.CreatedAt
	}
	s.templates[spec.Name] = &StoredTemplate{
		Spec:      *spec,
		CreatedAt: createdAt,
		UpdatedAt: now,
	}
	return nil
}

// Delete removes a stored template by name.
func (s *MemoryStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	if _, ok := s.templates[name]; !ok {
		return NewStorageTemplateNotFoundError(name)
	}
	delete(s.templates, name)
	return nil
}

// List returns all stored template names in sorted order.
func (s *MemoryStorage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close marks the storage as closed.
func (s *MemoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// copyStoredTemplate returns a deep-enough copy so callers cannot mutate
// stored state through the schema maps.
func copyStoredTemplate(stored *StoredTemplate) *StoredTemplate {
	out := &StoredTemplate{
		Spec:      stored.Spec,
		CreatedAt: stored.CreatedAt,
		UpdatedAt: stored.UpdatedAt,
	}
	out.Spec.Input = copyDescriptor(stored.Spec.Input)
	out.Spec.Output = copyDescriptor(stored.Spec.Output)
	return out
}

func copyDescriptor(descriptor map[string]any) map[string]any {
	if descriptor == nil {
		return nil
	}
	out := make(map[string]any, len(descriptor))
	for key, value := range descriptor {
		if nested, ok := value.(map[string]any); ok {
			out[key] = copyDescriptor(nested)
			continue
		}
		out[key] = value
	}
	return out
}
