// Package i18n resolves free-text event tags into canonical tag keys using
// the remote translation table, and tracks the minimal translation subset a
// snapshot needs to render the keys it actually uses.
package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"udonevent/internal/fetch"
	"udonevent/internal/model"
)

// categorySynonyms maps known zh-CN tag spellings onto canonical English
// category keys. Matching is exact; fuzzy or substring matching is rejected
// so two runs over the same input always resolve the same way.
var categorySynonyms = map[string]string{
	"聚会": "Party",
	"派对": "Party",
	"逛图": "Travel",
	"学习": "Learn",
	"舞蹈": "Dance",
	"RP": "Roleplay",
}

// FetchTable downloads the canonical-tag translation table. An empty body
// yields an empty table and no error; a non-empty body that fails to decode
// is an error.
func FetchTable(ctx context.Context, client *fetch.Client, url string) (model.Translations, error) {
	body, err := client.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("i18n: fetch tag table: %w", err)
	}
	if len(body) == 0 {
		return model.Translations{}, nil
	}
	var table model.Translations
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("i18n: decode tag table: %w", err)
	}
	return table, nil
}

// Localizer resolves raw tags for one source language and accumulates the
// translation subset of the canonical keys it resolved.
type Localizer struct {
	table model.Translations
	lang  string
	keys  []string // table keys in sorted order, for deterministic scans
	added model.Translations
}

// NewLocalizer builds a Localizer over table for the given source language.
func NewLocalizer(table model.Translations, lang string) *Localizer {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Localizer{
		table: table,
		lang:  lang,
		keys:  keys,
		added: model.Translations{},
	}
}

// Resolve maps rawTag onto a canonical tag key. The table is scanned first
// for an entry whose source-language value equals rawTag exactly; failing
// that, the static synonym map is consulted; failing both, rawTag passes
// through unchanged and nothing is recorded.
func (l *Localizer) Resolve(rawTag string) string {
	for _, key := range l.keys {
		if v, ok := l.table[key][l.lang]; ok && v == rawTag {
			l.added[key] = map[string]string{l.lang: rawTag}
			return key
		}
	}

	canonical, ok := categorySynonyms[rawTag]
	if !ok {
		return rawTag
	}
	// Record the subset entry only when the table actually carries a value
	// for the canonical key; an empty translation helps no renderer.
	if v, ok := l.table[canonical][l.lang]; ok && v != "" {
		l.added[canonical] = map[string]string{l.lang: v}
	}
	return canonical
}

// Added returns the translation subset accumulated so far.
func (l *Localizer) Added() model.Translations {
	return l.added
}
