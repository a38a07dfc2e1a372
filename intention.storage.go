package intention

import (
	"context"
	"sync"
	"time"
)

// Storage error message constants
const (
	ErrMsgStorageClosed            = "storage is closed"
	ErrMsgStorageTemplateNotFound  = "stored template not found"
	ErrMsgStorageDriverNotFound    = "storage driver not registered"
	ErrMsgStorageSaveFailed        = "saving template failed"
	ErrMsgPostgresEmptyConnString  = "postgres connection string cannot be empty"
	ErrMsgPostgresConnectionFailed = "postgres connection failed"
	ErrMsgPostgresQueryFailed      = "postgres query failed"
	ErrMsgPostgresMigrationFailed  = "postgres migration failed"
)

// StoredTemplate is a template spec with storage bookkeeping.
type StoredTemplate struct {
	Spec      TemplateSpec `json:"spec"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TemplateStorage is the interface for pluggable template spec backends.
// Implementations must be safe for concurrent use. Save is an upsert keyed
// by spec name, matching the registry's last-write-wins semantics.
type TemplateStorage interface {
	// Get retrieves a stored template by name.
	Get(ctx context.Context, name string) (*StoredTemplate, error)

	// Save stores a template spec, replacing any existing spec of the same
	// name. CreatedAt and UpdatedAt are maintained by the implementation.
	Save(ctx context.Context, spec *TemplateSpec) error

	// Delete removes a stored template by name.
	Delete(ctx context.Context, name string) error

	// List returns all stored template names in sorted order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources. Operations after Close fail.
	Close() error
}

// StorageError describes a storage backend failure.
type StorageError struct {
	Message string
	Name    string
	Cause   error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Name != "" {
		return e.Message + ": " + e.Name
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageClosedError creates an error for operations on closed storage.
func NewStorageClosedError() error {
	return &StorageError{Message: ErrMsgStorageClosed}
}

// NewStorageTemplateNotFoundError creates a lookup failure for stored
// templates.
func NewStorageTemplateNotFoundError(name string) error {
	return &StorageError{Message: ErrMsgStorageTemplateNotFound, Name: name}
}

// StorageDriver creates TemplateStorage instances from connection strings.
type StorageDriver interface {
	Open(connectionString string) (TemplateStorage, error)
}

var (
	storageDriversMu sync.RWMutex
	storageDrivers   = make(map[string]StorageDriver)
)

// RegisterStorageDriver makes a storage driver available by name. Drivers
// typically register themselves in init.
func RegisterStorageDriver(name string, driver StorageDriver) {
	storageDriversMu.Lock()
	defer storageDriversMu.Unlock()
	storageDrivers[name] = driver
}

// OpenStorage opens a storage backend by driver name.
func OpenStorage(driverName, connectionString string) (TemplateStorage, error) {
	storageDriversMu.RLock()
	driver, ok := storageDrivers[driverName]
	storageDriversMu.RUnlock()

	if !ok {
		return nil, &StorageError{Message: ErrMsgStorageDriverNotFound, Name: driverName}
	}
	return driver.Open(connectionString)
}

// LoadTemplates hydrates a registry from stored template specs. Returns the
// number of templates registered. A spec that fails to materialize aborts
// the load.
func LoadTemplates(ctx context.Context, storage TemplateStorage, registry *Registry) (int, error) {
	names, err := storage.List(ctx)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, name := range names {
		stored, err := storage.Get(ctx, name)
		if err != nil {
			return loaded, err
		}
		tmpl, err := stored.Spec.Template()
		if err != nil {
			return loaded, err
		}
		registry.Register(tmpl)
		loaded++
	}
	return loaded, nil
}
