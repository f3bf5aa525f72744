package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClients(n int) []models.ClassifiedClient {
	clients := make([]models.ClassifiedClient, 0, n)
	for i := 1; i <= n; i++ {
		clients = append(clients, models.ClassifiedClient{
			ClientAggregate: models.ClientAggregate{
				Key:           fmt.Sprintf("client-%02d", i),
				User:          models.OrderUser{Email: fmt.Sprintf("client-%02d@example.com", i)},
				TotalOrders:   i,
				TotalSpent:    float64(i * 1000),
				LastOrderDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			},
			BehaviorCategory: models.BehaviorActive,
			SpendingCategory: models.SpendingBasic,
		})
	}
	return clients
}

func TestNormalizeClientsQuery(t *testing.T) {
	t.Parallel()

	opts := services.NormalizeClientsQuery(models.ClientsQueryOptions{})
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 20, opts.PageSize)
	assert.Equal(t, models.VisibilityAll, opts.Visibility)
	assert.Equal(t, models.CategoryTypeBehavior, opts.CategoryType)
	assert.Equal(t, models.ClientSortLastOrder, opts.SortBy)
	assert.Equal(t, "desc", opts.SortOrder)

	// Oversized page sizes clamp back to the default.
	opts = services.NormalizeClientsQuery(models.ClientsQueryOptions{PageSize: 5000})
	assert.Equal(t, 20, opts.PageSize)
}

func TestPageWindow(t *testing.T) {
	t.Parallel()

	clients := testClients(25)

	t.Run("middle page", func(t *testing.T) {
		t.Parallel()

		page, total, totalPages, hasMore := services.PageWindow(clients, 2, 10)
		require.Len(t, page, 10)
		assert.Equal(t, 25, total)
		assert.Equal(t, 3, totalPages)
		assert.True(t, hasMore)
		assert.Equal(t, "client-11", page[0].Key)
		assert.Equal(t, "client-20", page[9].Key)
	})

	t.Run("last short page", func(t *testing.T) {
		t.Parallel()

		page, total, totalPages, hasMore := services.PageWindow(clients, 3, 10)
		require.Len(t, page, 5)
		assert.Equal(t, 25, total)
		assert.Equal(t, 3, totalPages)
		assert.False(t, hasMore)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		t.Parallel()

		page, total, totalPages, hasMore := services.PageWindow(clients, 9, 10)
		assert.Empty(t, page)
		assert.Equal(t, 25, total)
		assert.Equal(t, 3, totalPages)
		assert.False(t, hasMore)
	})

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()

		page, total, totalPages, hasMore := services.PageWindow(nil, 1, 10)
		assert.Empty(t, page)
		assert.Equal(t, 0, total)
		assert.Equal(t, 0, totalPages)
		assert.False(t, hasMore)
	})
}

func TestSortClients(t *testing.T) {
	t.Parallel()

	t.Run("descending spend", func(t *testing.T) {
		t.Parallel()

		clients := testClients(5)
		services.SortClients(clients, models.ClientSortTotalSpent, "desc")
		assert.Equal(t, "client-05", clients[0].Key)
		assert.Equal(t, "client-01", clients[4].Key)
	})

	t.Run("ties break by key for deterministic paging", func(t *testing.T) {
		t.Parallel()

		clients := []models.ClassifiedClient{
			{ClientAggregate: models.ClientAggregate{Key: "b", TotalSpent: 100}},
			{ClientAggregate: models.ClientAggregate{Key: "a", TotalSpent: 100}},
			{ClientAggregate: models.ClientAggregate{Key: "c", TotalSpent: 100}},
		}
		services.SortClients(clients, models.ClientSortTotalSpent, "desc")
		assert.Equal(t, "a", clients[0].Key)
		assert.Equal(t, "b", clients[1].Key)
		assert.Equal(t, "c", clients[2].Key)
	})
}

func TestFilterClients(t *testing.T) {
	t.Parallel()

	clients := testClients(4)
	clients[0].BehaviorCategory = models.BehaviorLost
	clients[1].SpendingCategory = models.SpendingPremium
	clients[2].LastContactValue = models.WhatsAppHiddenSentinel

	t.Run("behavior axis", func(t *testing.T) {
		t.Parallel()

		got := services.FilterClients(clients, models.ClientsQueryOptions{
			Category:     string(models.BehaviorLost),
			CategoryType: models.CategoryTypeBehavior,
			Visibility:   models.VisibilityAll,
		})
		require.Len(t, got, 1)
		assert.Equal(t, "client-01", got[0].Key)
	})

	t.Run("spending axis", func(t *testing.T) {
		t.Parallel()

		got := services.FilterClients(clients, models.ClientsQueryOptions{
			Category:     string(models.SpendingPremium),
			CategoryType: models.CategoryTypeSpending,
			Visibility:   models.VisibilityAll,
		})
		require.Len(t, got, 1)
		assert.Equal(t, "client-02", got[0].Key)
	})

	t.Run("visibility from the hidden sentinel", func(t *testing.T) {
		t.Parallel()

		hidden := services.FilterClients(clients, models.ClientsQueryOptions{Visibility: models.VisibilityHidden})
		require.Len(t, hidden, 1)
		assert.Equal(t, "client-03", hidden[0].Key)

		visible := services.FilterClients(clients, models.ClientsQueryOptions{Visibility: models.VisibilityVisible})
		assert.Len(t, visible, 3)

		all := services.FilterClients(clients, models.ClientsQueryOptions{Visibility: models.VisibilityAll})
		assert.Len(t, all, 4)
	})
}

func TestOverlayContacts(t *testing.T) {
	t.Parallel()

	clients := testClients(2)
	contactedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	contacts := map[string]models.WhatsAppContact{
		"client-01@example.com": {ContactedAt: &contactedAt},
	}

	rows := services.OverlayContacts(clients, contacts)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].WhatsAppContactedAt)
	assert.Equal(t, contactedAt, *rows[0].WhatsAppContactedAt)
	assert.False(t, rows[0].Hidden)

	// Missing overlay entries default to not-contacted and visible.
	assert.Nil(t, rows[1].WhatsAppContactedAt)
	assert.False(t, rows[1].Hidden)
}

func TestParseWhatsAppContact(t *testing.T) {
	t.Parallel()

	contact := services.ParseWhatsAppContact(models.WhatsAppHiddenSentinel)
	assert.True(t, contact.Hidden)
	assert.Nil(t, contact.ContactedAt)

	contact = services.ParseWhatsAppContact("2026-03-01T09:00:00Z")
	require.NotNil(t, contact.ContactedAt)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), contact.ContactedAt.UTC())
	assert.False(t, contact.Hidden)

	contact = services.ParseWhatsAppContact("")
	assert.Nil(t, contact.ContactedAt)
	assert.False(t, contact.Hidden)

	// Garbage values degrade to not-contacted rather than failing.
	contact = services.ParseWhatsAppContact("not-a-timestamp")
	assert.Nil(t, contact.ContactedAt)
	assert.False(t, contact.Hidden)
}
