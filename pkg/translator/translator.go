// Package translator rewrites alternate-script keyword spellings into the
// canonical spellings the lexer recognizes. It is verbatim substring
// substitution with no tokenization: everything that is not a listed
// keyword passes through untouched.
package translator

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// sanskritKeywords is the built-in table mapping Sanskrit spellings to
// canonical keywords.
var sanskritKeywords = map[string]string{
	"श्रेणी":  "class",
	"अथ्वा":  "else",
	"असत्य":  "false",
	"पुरा":   "for",
	"विनियोग": "fun",
	"यदि":    "if",
	"नेति":   "nil",
	"विकल्प":  "or",
	"कथय":    "print",
	"देयम":   "return",
	"महा":    "super",
	"यह":     "this",
	"सत्य":   "true",
	"चर":     "var",
	"यावद":   "while",
}

// Translator applies one keyword table. The zero value is unusable; build
// one with New or NewWithTable.
type Translator struct {
	replacer *strings.Replacer
}

// New returns a translator for the built-in Sanskrit keyword table.
func New() *Translator {
	return NewWithTable(sanskritKeywords)
}

// NewWithTable builds a translator from an arbitrary spelling table.
// Longer spellings are replaced first so a spelling that prefixes another
// never shadows it.
func NewWithTable(table map[string]string) *Translator {
	froms := make([]string, 0, len(table))
	for from := range table {
		froms = append(froms, from)
	}
	sort.Slice(froms, func(a, b int) bool {
		if len(froms[a]) != len(froms[b]) {
			return len(froms[a]) > len(froms[b])
		}
		return froms[a] < froms[b]
	})
	pairs := make([]string, 0, 2*len(froms))
	for _, from := range froms {
		pairs = append(pairs, from, table[from])
	}
	return &Translator{replacer: strings.NewReplacer(pairs...)}
}

// LoadTable reads a keyword table from a YAML file: a single mapping of
// source spelling to canonical keyword. Unknown document structure is
// rejected.
func LoadTable(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	table := make(map[string]string)
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&table); err != nil {
		return nil, fmt.Errorf("translator: parse table %s: %w", path, err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("translator: table %s is empty", path)
	}
	return table, nil
}

// Translate rewrites every keyword occurrence in src.
func (t *Translator) Translate(src string) string {
	return t.replacer.Replace(src)
}

// Translate applies the built-in Sanskrit table.
func Translate(src string) string {
	return New().Translate(src)
}
