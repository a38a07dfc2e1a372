package intention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetUnknown(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgTemplateNotFound)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	tmpl := MustNewTemplate("t", Schema{"x": TypeString}, Schema{"y": TypeString})
	registry.Register(tmpl)

	got, err := registry.Get("t")
	require.NoError(t, err)
	assert.Same(t, Template(tmpl), got)
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	registry := NewRegistry()
	first := MustNewTemplate("dup", Schema{"x": TypeString}, Schema{"y": TypeString}, WithVersion("1.0.0"))
	second := MustNewTemplate("dup", Schema{"x": TypeString}, Schema{"y": TypeString}, WithVersion("2.0.0"))

	registry.Register(first)
	registry.Register(second)

	got, err := registry.Get("dup")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", got.Version())
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		registry.Register(MustNewTemplate(name, Schema{"x": TypeString}, Schema{"y": TypeString}))
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, registry.List())
}
