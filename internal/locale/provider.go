package locale

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Provider resolves language codes to Capabilities. Language data is parsed
// lazily on first use and cached for the lifetime of the provider.
type Provider struct {
	available map[string]bool
	cache     sync.Map // normalized code -> *language
}

// NewProvider creates a Provider over the embedded language data.
func NewProvider() (*Provider, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("reading embedded language data: %w", err)
	}

	p := &Provider{available: make(map[string]bool)}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		p.available[strings.TrimSuffix(entry.Name(), ".yaml")] = true
	}
	if !p.available[DefaultCode] {
		return nil, fmt.Errorf("no language data for default locale %q", DefaultCode)
	}
	return p, nil
}

var shared = sync.OnceValue(func() *Provider {
	p, err := NewProvider()
	if err != nil {
		panic(err)
	}
	return p
})

// Resolve returns Capabilities for code using the shared provider.
func Resolve(code string) Capabilities {
	return shared().Resolve(code)
}

// Supported returns the language codes of the shared provider.
func Supported() []string {
	return shared().Supported()
}

// Normalize reduces a locale code to its lowercased language part:
// "en_US" and "EN-gb" both become "en".
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "_-"); i >= 0 {
		code = code[:i]
	}
	return code
}

// Resolve never fails: unknown or empty codes map to DefaultCode.
func (p *Provider) Resolve(code string) Capabilities {
	code = Normalize(code)
	if !p.available[code] {
		code = DefaultCode
	}
	if cached, ok := p.cache.Load(code); ok {
		return cached.(*language)
	}

	lang, err := loadLanguage(code)
	if err != nil {
		// Embedded data is compiled in; a parse failure is a build defect.
		panic(err)
	}
	actual, _ := p.cache.LoadOrStore(code, lang)
	return actual.(*language)
}

// Supported returns the language codes with embedded data, sorted.
func (p *Provider) Supported() []string {
	codes := make([]string, 0, len(p.available))
	for code := range p.available {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func loadLanguage(code string) (*language, error) {
	raw, err := dataFS.ReadFile(path.Join("data", code+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("reading language data %s: %w", code, err)
	}
	var data languageData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing language data %s: %w", code, err)
	}
	if data.Code == "" {
		data.Code = code
	}
	return newLanguage(data), nil
}
