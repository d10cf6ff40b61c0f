package service

import (
	"eduportal_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// notFound folds the gorm sentinel into the boundary error so controllers
// only ever match util.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return err
}

// Patch helpers. Update bodies are decoded to a map so that a key present
// with an explicit null overwrites while an absent key leaves the stored
// value untouched.

// patchName applies the non-empty-only rule of name/title fields: a falsy
// value present in the body is silently ignored instead of clearing the
// name.
func patchName(dst *string, fields map[string]any, key string) {
	v, ok := fields[key]
	if !ok {
		return
	}
	if s, ok := v.(string); ok && s != "" {
		*dst = s
	}
}

func patchStringPtr(dst **string, fields map[string]any, key string) {
	v, ok := fields[key]
	if !ok {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if s, ok := v.(string); ok {
		*dst = &s
	}
}

func patchIntPtr(dst **int, fields map[string]any, key string) {
	v, ok := fields[key]
	if !ok {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if f, ok := v.(float64); ok {
		n := int(f)
		*dst = &n
	}
}
