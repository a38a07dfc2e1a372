package intention

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func citySpec() *TemplateSpec {
	return &TemplateSpec{
		Name:   "city_info",
		Prompt: "tell me about {{city}}",
		Input:  map[string]any{"city": "string"},
		Output: map[string]any{"population": "integer"},
	}
}

func TestMemoryStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	require.NoError(t, storage.Save(ctx, citySpec()))

	stored, err := storage.Get(ctx, "city_info")
	require.NoError(t, err)
	assert.Equal(t, "city_info", stored.Spec.Name)
	assert.Equal(t, "tell me about {{city}}", stored.Spec.Prompt)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestMemoryStorage_GetUnknown(t *testing.T) {
	storage := NewMemoryStorage()
	defer storage.Close()

	_, err := storage.Get(context.Background(), "nope")
	require.Error(t, err)

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, ErrMsgStorageTemplateNotFound, storageErr.Message)
	assert.Equal(t, "nope", storageErr.Name)
}

func TestMemoryStorage_SaveUpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	require.NoError(t, storage.Save(ctx, citySpec()))
	first, err := storage.Get(ctx, "city_info")
	require.NoError(t, err)

	updated := citySpec()
	updated.Description = "city facts"
	require.NoError(t, storage.Save(ctx, updated))

	second, err := storage.Get(ctx, "city_info")
	require.NoError(t, err)
	assert.Equal(t, "city facts", second.Spec.Description)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestMemoryStorage_SaveMissingName(t *testing.T) {
	storage := NewMemoryStorage()
	defer storage.Close()

	err := storage.Save(context.Background(), &TemplateSpec{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgStorageSaveFailed)
}

func TestMemoryStorage_Delete(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	require.NoError(t, storage.Save(ctx, citySpec()))
	require.NoError(t, storage.Delete(ctx, "city_info"))

	_, err := storage.Get(ctx, "city_info")
	require.Error(t, err)

	err = storage.Delete(ctx, "city_info")
	require.Error(t, err)
}

func TestMemoryStorage_ListSorted(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		spec := citySpec()
		spec.Name = name
		require.NoError(t, storage.Save(ctx, spec))
	}

	names, err := storage.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestMemoryStorage_ClosedOperationsFail(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Close())

	_, err := storage.Get(ctx, "x")
	assert.ErrorContains(t, err, ErrMsgStorageClosed)
	assert.ErrorContains(t, storage.Save(ctx, citySpec()), ErrMsgStorageClosed)
	assert.ErrorContains(t, storage.Delete(ctx, "x"), ErrMsgStorageClosed)
	_, err = storage.List(ctx)
	assert.ErrorContains(t, err, ErrMsgStorageClosed)
}

func TestMemoryStorage_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	require.NoError(t, storage.Save(ctx, citySpec()))

	stored, err := storage.Get(ctx, "city_info")
	require.NoError(t, err)
	stored.Spec.Input["city"] = "integer"

	again, err := storage.Get(ctx, "city_info")
	require.NoError(t, err)
	assert.Equal(t, "string", again.Spec.Input["city"])
}

func TestMemoryStorage_CanceledContext(t *testing.T) {
	storage := NewMemoryStorage()
	defer storage.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Get(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenStorage_MemoryDriver(t *testing.T) {
	storage, err := OpenStorage(StorageDriverNameMemory, "")
	require.NoError(t, err)
	defer storage.Close()

	require.NoError(t, storage.Save(context.Background(), citySpec()))
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := OpenStorage("carrier-pigeon", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgStorageDriverNotFound)
}

func TestLoadTemplates(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	require.NoError(t, storage.Save(ctx, citySpec()))

	weather := &TemplateSpec{
		Name:   "weather",
		Prompt: "weather in {{city}}",
		Input:  map[string]any{"city": "string"},
		Output: map[string]any{"forecast": "string"},
	}
	require.NoError(t, storage.Save(ctx, weather))

	registry := NewRegistry()
	loaded, err := LoadTemplates(ctx, storage, registry)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, []string{"city_info", "weather"}, registry.List())

	tmpl, err := registry.Get("city_info")
	require.NoError(t, err)
	prompt, err := tmpl.FormatPrompt(map[string]any{"city": "boston"})
	require.NoError(t, err)
	assert.Equal(t, "tell me about boston", prompt)
}

func TestLoadTemplates_BadSpecAborts(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	bad := citySpec()
	bad.Name = "broken"
	bad.Input = map[string]any{"city": "quaternion"}
	require.NoError(t, storage.Save(ctx, bad))

	registry := NewRegistry()
	_, err := LoadTemplates(ctx, storage, registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownTypeTag)
}
