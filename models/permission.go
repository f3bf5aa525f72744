package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// Permission string conventions. Category-scoped grants are dynamic (one per
// catalog category) so they are parsed, not enumerated.
const (
	categoryViewPrefix  = "outputs:view_category:"
	allCategoriesString = "outputs:view_all_categories"
)

// PermissionKind discriminates the permission union.
type PermissionKind int

const (
	// PermissionStatic is a fixed capability name, e.g. "clients:view".
	PermissionStatic PermissionKind = iota
	// PermissionCategoryView grants viewing one catalog category's outputs.
	PermissionCategoryView
	// PermissionAllCategories grants viewing every catalog category.
	PermissionAllCategories
)

// Permission is the parsed form of a raw permission string.
type Permission struct {
	Kind     PermissionKind
	Name     string // static capability name
	Category string // category name for PermissionCategoryView
}

func StaticPermission(name string) Permission {
	return Permission{Kind: PermissionStatic, Name: name}
}

func CategoryViewPermission(category string) Permission {
	return Permission{Kind: PermissionCategoryView, Category: strings.ToUpper(strings.TrimSpace(category))}
}

func AllCategoriesPermission() Permission {
	return Permission{Kind: PermissionAllCategories}
}

// ParsePermission maps a raw string onto the permission union. Unknown
// strings become static permissions so legacy grants keep working.
func ParsePermission(raw string) Permission {
	raw = strings.TrimSpace(raw)
	if raw == allCategoriesString {
		return AllCategoriesPermission()
	}
	if strings.HasPrefix(raw, categoryViewPrefix) {
		return CategoryViewPermission(strings.TrimPrefix(raw, categoryViewPrefix))
	}
	return StaticPermission(raw)
}

// String renders the canonical raw form; ParsePermission(p.String()) == p.
func (p Permission) String() string {
	switch p.Kind {
	case PermissionAllCategories:
		return allCategoriesString
	case PermissionCategoryView:
		return categoryViewPrefix + p.Category
	default:
		return p.Name
	}
}

// HasPermission reports whether the granted set satisfies the wanted
// permission. An all-categories grant satisfies any category view.
func HasPermission(granted []string, want Permission) bool {
	for _, raw := range granted {
		g := ParsePermission(raw)
		if g == want {
			return true
		}
		if g.Kind == PermissionAllCategories && want.Kind == PermissionCategoryView {
			return true
		}
	}
	return false
}

// PermissionList stores raw permission strings as a JSONB column.
type PermissionList []string

func (l PermissionList) Value() (driver.Value, error) {
	if l == nil {
		l = PermissionList{}
	}
	return json.Marshal(l)
}

func (l *PermissionList) Scan(value interface{}) error {
	if value == nil {
		*l = PermissionList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("failed to scan PermissionList: unsupported type")
		}
	}
	return json.Unmarshal(bytes, l)
}
