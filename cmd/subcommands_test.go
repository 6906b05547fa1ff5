package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/seoscore/internal/metastore"
)

func TestSynonymsEncode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"two synonyms", `["fast", "quick"]`, "[\"fast, quick\"]\n", false},
		{"empty", `[]`, "[\"\"]\n", false},
		{"not an array", `"fast"`, "", true},
		{"not json", `fast`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runSynonymsEncode(strings.NewReader(tt.input), &out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSynonymsDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"stored form", "[\"fast, quick\"]\n", "[\"fast\",\"quick\"]\n"},
		{"garbage", "nope", "[]\n"},
		{"empty", "", "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runSynonymsDecode(strings.NewReader(tt.input), &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestMetaPutGet(t *testing.T) {
	ctx := context.Background()
	s := metastore.NewMemoryStore()

	in := `{"title": "Fast cars", "description": "<b>All</b> about cars", "synonyms": ["quick autos"]}`
	require.NoError(t, runMetaPut(ctx, s, "42", strings.NewReader(in)))

	var out bytes.Buffer
	require.NoError(t, runMetaGet(ctx, s, "42", &out))
	assert.Contains(t, out.String(), `"title": "Fast cars"`)
	assert.Contains(t, out.String(), `"description": "All about cars"`)
	assert.Contains(t, out.String(), `"quick autos"`)

	err := runMetaGet(ctx, s, "7", &out)
	assert.ErrorIs(t, err, metastore.ErrNotFound)

	assert.Error(t, runMetaPut(ctx, s, "42", strings.NewReader(`[1]`)))
}

func TestWithStoreRequiresDriver(t *testing.T) {
	setupCommand(t, "")

	called := false
	err := withStore(context.Background(), func(context.Context, metastore.Store) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, errNoStore)
	assert.False(t, called)
}

func TestWithStoreMemory(t *testing.T) {
	t.Setenv("SEOSCORE_STORE_DRIVER", "memory")
	setupCommand(t, "")

	err := withStore(context.Background(), func(ctx context.Context, s metastore.Store) error {
		return s.Put(ctx, "1", metastore.Meta{Title: "x"})
	})
	assert.NoError(t, err)
}

func TestLocales(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runLocales(&out))
	assert.Equal(t, "de\tltr\nen\tltr\nes\tltr\nfa\trtl\n", out.String())
}
