package enum

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewRegistry(WithLogger(logger)), &buf
}

func TestRegistryRegister(t *testing.T) {
	r, logs := newTestRegistry(t)

	colors, err := r.Register("colors", colorsDefinition())
	require.NoError(t, err)
	assert.Equal(t, Text("red"), colors.MustGet("RED"))

	got, ok := r.Lookup("colors")
	require.True(t, ok)
	assert.Same(t, colors, got)

	assert.Contains(t, logs.String(), "registered enum")
	assert.Contains(t, logs.String(), "name=colors")
}

func TestRegistryRegisterInvalidDefinition(t *testing.T) {
	r, logs := newTestRegistry(t)

	_, err := r.Register("empty", Definition{})
	require.ErrorIs(t, err, ErrEmptyDefinition)
	assert.EqualError(t, err, "Invalid object, Input must not be empty")

	_, ok := r.Lookup("empty")
	assert.False(t, ok)
	assert.Empty(t, r.Names())
	assert.Contains(t, logs.String(), "rejected enum definition")
}

func TestRegistryAddErrors(t *testing.T) {
	r, _ := newTestRegistry(t)
	colors := Must(New(colorsDefinition()))

	require.NoError(t, r.Add("colors", colors))

	err := r.Add("colors", colors)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.ErrorContains(t, err, "colors")

	assert.ErrorIs(t, r.Add("", colors), ErrInvalidName)
	assert.ErrorIs(t, r.Add("nothing", nil), ErrInvalidInputKind)

	_, err = r.Register("colors", colorsDefinition())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	got, ok := r.Lookup("colors")
	require.True(t, ok)
	assert.Same(t, colors, got, "registered enumerations are never replaced")
}

func TestRegistryRegisterFile(t *testing.T) {
	r, logs := newTestRegistry(t)

	path := writeDefinition(t, "levels.json", `{"LOW": 1, "HIGH": 3}`)
	levels, err := r.RegisterFile("levels", path)
	require.NoError(t, err)
	assert.Equal(t, Int(3), levels.MustGet("HIGH"))

	bad := writeDefinition(t, "bad.yaml", "- LOW\n- HIGH\n")
	_, err = r.RegisterFile("bad", bad)
	assert.ErrorIs(t, err, ErrInvalidInputKind)
	assert.Contains(t, logs.String(), "rejected enum definition file")

	assert.Equal(t, []string{"levels"}, r.Names())
}

func TestRegistryLookupMissing(t *testing.T) {
	r := NewRegistry()

	e, ok := r.Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, e)

	_, err := e.Get("RED")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, 0, e.Len())
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"sizes", "colors", "levels"} {
		_, err := r.Register(name, Definition{"A": Text(name)})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"colors", "levels", "sizes"}, r.Names())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r, _ := newTestRegistry(t)

	const numGoroutines = 20

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			name := fmt.Sprintf("enum-%d", id)
			if _, err := r.Register(name, Definition{"ID": Int(int64(id))}); err != nil {
				t.Errorf("Register(%s) failed: %v", name, err)
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = r.Names()
				_, _ = r.Lookup("enum-0")
			}
		}()
	}

	wg.Wait()

	assert.Len(t, r.Names(), numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		e, ok := r.Lookup(fmt.Sprintf("enum-%d", i))
		require.True(t, ok)
		assert.Equal(t, Int(int64(i)), e.MustGet("ID"))
	}
}
