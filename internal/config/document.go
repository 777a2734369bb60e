// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// parseDocument validates raw as JSON and builds a Store from its top-level
// object. Key order follows the document. When a key repeats, the last value
// wins and the first position is kept.
func parseDocument(raw []byte) (*Store, error) {
	if !utf8.Valid(raw) || !gjson.ValidBytes(raw) {
		return nil, errInvalidJSON
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, errNotAnObject
	}

	store := NewStore()
	doc.ForEach(func(key, value gjson.Result) bool {
		store.Set(key.String(), documentValue(value))
		return true
	})

	return store, nil
}

// documentValue converts a parsed JSON value into its Go form. Integers that
// fit into int64 become int64, larger integers keep their literal as a
// json.Number, all other numbers are float64.
func documentValue(r gjson.Result) any {
	switch {
	case r.IsObject():
		m := make(map[string]any)
		r.ForEach(func(key, value gjson.Result) bool {
			m[key.String()] = documentValue(value)
			return true
		})
		return m
	case r.IsArray():
		items := r.Array()
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, documentValue(item))
		}
		return out
	case r.Type == gjson.Number:
		return numberValue(r)
	default:
		return r.Value()
	}
}

func numberValue(r gjson.Result) any {
	if strings.ContainsAny(r.Raw, ".eE") {
		return r.Float()
	}
	if n, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
		return n
	}
	return json.Number(r.Raw)
}
