// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Record is a single record of a store collection as decoded from JSON.
// System fields (id, created, updated, collectionName) live alongside the
// collection's own fields.
type Record map[string]any

// ID returns the record's "id" field, or an empty string if it is missing.
func (r Record) ID() string {
	return r.String("id")
}

// String returns the value stored under key formatted as a string.
// Missing keys and nil values yield an empty string.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool returns the value stored under key if it is a bool, false otherwise.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// ListResult is a single page of records returned by the store.
type ListResult struct {
	Page       int      `json:"page"`
	PerPage    int      `json:"perPage"`
	TotalItems int      `json:"totalItems"`
	TotalPages int      `json:"totalPages"`
	Items      []Record `json:"items"`
}
