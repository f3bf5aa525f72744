package models_test

import (
	"testing"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/stretchr/testify/assert"
)

func TestParsePermission(t *testing.T) {
	t.Parallel()

	p := models.ParsePermission("clients:view")
	assert.Equal(t, models.PermissionStatic, p.Kind)
	assert.Equal(t, "clients:view", p.Name)

	p = models.ParsePermission("outputs:view_category:PERRO")
	assert.Equal(t, models.PermissionCategoryView, p.Kind)
	assert.Equal(t, "PERRO", p.Category)

	p = models.ParsePermission("outputs:view_all_categories")
	assert.Equal(t, models.PermissionAllCategories, p.Kind)
}

func TestPermissionStringRoundTrip(t *testing.T) {
	t.Parallel()

	perms := []models.Permission{
		models.StaticPermission("expenses:manage"),
		models.CategoryViewPermission("gato"),
		models.AllCategoriesPermission(),
	}
	for _, p := range perms {
		assert.Equal(t, p, models.ParsePermission(p.String()))
	}
}

func TestCategoryViewNormalizesName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BIG DOG", models.CategoryViewPermission(" big dog ").Category)
}

func TestHasPermission(t *testing.T) {
	t.Parallel()

	granted := []string{"clients:view", "outputs:view_category:PERRO"}

	assert.True(t, models.HasPermission(granted, models.StaticPermission("clients:view")))
	assert.False(t, models.HasPermission(granted, models.StaticPermission("clients:manage")))

	assert.True(t, models.HasPermission(granted, models.CategoryViewPermission("perro")))
	assert.False(t, models.HasPermission(granted, models.CategoryViewPermission("gato")))

	// The all-categories grant satisfies any category view.
	all := []string{"outputs:view_all_categories"}
	assert.True(t, models.HasPermission(all, models.CategoryViewPermission("gato")))
	assert.True(t, models.HasPermission(all, models.CategoryViewPermission("huesos")))
	assert.False(t, models.HasPermission(all, models.StaticPermission("clients:view")))

	assert.False(t, models.HasPermission(nil, models.StaticPermission("clients:view")))
}
