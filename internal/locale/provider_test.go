package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"plain", "en", "en"},
		{"underscore region", "en_US", "en"},
		{"dash region upper", "EN-gb", "en"},
		{"padded", "  fa ", "fa"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.code))
		})
	}
}

func TestProviderResolve(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	tests := []struct {
		name string
		code string
		want string
	}{
		{"english", "en", "en"},
		{"english region", "en_US", "en"},
		{"persian", "fa_IR", "fa"},
		{"german", "de", "de"},
		{"spanish", "es-MX", "es"},
		{"unknown falls back", "xx", DefaultCode},
		{"empty falls back", "", DefaultCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := p.Resolve(tt.code)
			require.NotNil(t, caps)
			assert.Equal(t, tt.want, caps.Code())
		})
	}
}

func TestProviderResolveIsCached(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	first := p.Resolve("en")
	for _, code := range []string{"en", "en_US", "EN", "klingon"} {
		assert.Same(t, first, p.Resolve(code), "code %q", code)
	}
	assert.Same(t, Resolve("fa"), Resolve("fa_IR"))
}

func TestProviderSupported(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "es", "fa"}, p.Supported())
}

func TestFeatures(t *testing.T) {
	en := Resolve("en")
	fa := Resolve("fa")

	assert.True(t, en.Has(FeatureSyllables))
	assert.True(t, en.Has(FeatureWordComplexity))
	assert.True(t, en.Has(FeatureInclusiveLanguage))
	assert.True(t, en.Has(FeatureTransitionWords))

	assert.False(t, fa.Has(FeatureSyllables))
	assert.False(t, fa.Has(FeatureWordComplexity))
	assert.False(t, fa.Has(FeatureInclusiveLanguage))
	assert.True(t, fa.Has(FeatureTransitionWords))
	assert.Equal(t, "rtl", fa.Direction())
	assert.Equal(t, "ltr", en.Direction())
}
