package services

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizeClientsQuery applies defaults and clamps the paging window.
func NormalizeClientsQuery(opts models.ClientsQueryOptions) models.ClientsQueryOptions {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 || opts.PageSize > maxPageSize {
		opts.PageSize = defaultPageSize
	}
	if opts.Visibility == "" {
		opts.Visibility = models.VisibilityAll
	}
	if opts.CategoryType == "" {
		opts.CategoryType = models.CategoryTypeBehavior
	}
	if opts.SortBy == "" {
		opts.SortBy = models.ClientSortLastOrder
	}
	if opts.SortOrder != "asc" {
		opts.SortOrder = "desc"
	}
	return opts
}

// FilterClients keeps the clients matching the category and visibility
// filters. Visibility comes from the latest order's contact marker: exactly
// the hidden sentinel hides a client.
func FilterClients(clients []models.ClassifiedClient, opts models.ClientsQueryOptions) []models.ClassifiedClient {
	out := make([]models.ClassifiedClient, 0, len(clients))
	for _, c := range clients {
		if opts.Category != "" {
			switch opts.CategoryType {
			case models.CategoryTypeSpending:
				if string(c.SpendingCategory) != opts.Category {
					continue
				}
			default:
				if string(c.BehaviorCategory) != opts.Category {
					continue
				}
			}
		}

		hidden := c.LastContactValue == models.WhatsAppHiddenSentinel
		switch opts.Visibility {
		case models.VisibilityHidden:
			if !hidden {
				continue
			}
		case models.VisibilityVisible:
			if hidden {
				continue
			}
		}

		out = append(out, c)
	}
	return out
}

// SortClients orders clients server-side before the page window is cut.
// Ties always break by customer key so paging is deterministic.
func SortClients(clients []models.ClassifiedClient, sortBy, sortOrder string) {
	asc := sortOrder == "asc"

	less := func(i, j int) bool {
		a, b := clients[i], clients[j]
		var cmp int
		switch sortBy {
		case models.ClientSortTotalSpent:
			switch {
			case a.TotalSpent < b.TotalSpent:
				cmp = -1
			case a.TotalSpent > b.TotalSpent:
				cmp = 1
			}
		case models.ClientSortTotalOrders:
			cmp = a.TotalOrders - b.TotalOrders
		default: // lastOrder
			switch {
			case a.LastOrderDate.Before(b.LastOrderDate):
				cmp = -1
			case a.LastOrderDate.After(b.LastOrderDate):
				cmp = 1
			}
		}
		if cmp == 0 {
			return a.Key < b.Key
		}
		if asc {
			return cmp < 0
		}
		return cmp > 0
	}

	sort.SliceStable(clients, less)
}

// PageWindow slices one page out of the filtered, sorted set and reports the
// paging metadata. Counts are always computed against the post-filter set.
func PageWindow(clients []models.ClassifiedClient, page, pageSize int) ([]models.ClassifiedClient, int, int, bool) {
	totalCount := len(clients)
	totalPages := 0
	if totalCount > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}

	start := (page - 1) * pageSize
	if start >= totalCount {
		return []models.ClassifiedClient{}, totalCount, totalPages, false
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}
	return clients[start:end], totalCount, totalPages, end < totalCount
}

// OverlayContacts joins the WhatsApp-contact lookup onto the paged rows.
// This is a second pass keyed by email; missing entries default to
// not-contacted and visible.
func OverlayContacts(clients []models.ClassifiedClient, contacts map[string]models.WhatsAppContact) []models.ClientRow {
	rows := make([]models.ClientRow, 0, len(clients))
	for _, c := range clients {
		row := models.ClientRow{
			Key:              c.Key,
			Name:             c.User.Name,
			LastName:         c.User.LastName,
			Email:            c.User.Email,
			PhoneNumber:      c.User.PhoneNumber,
			Address:          c.Address,
			TotalOrders:      c.TotalOrders,
			TotalSpent:       c.TotalSpent,
			FirstOrderDate:   c.FirstOrderDate,
			LastOrderDate:    c.LastOrderDate,
			BehaviorCategory: c.BehaviorCategory,
			SpendingCategory: c.SpendingCategory,
			MonthlyWeightKg:  c.MonthlyWeightKg,
		}
		if contact, ok := contacts[strings.ToLower(strings.TrimSpace(c.User.Email))]; ok {
			row.WhatsAppContactedAt = contact.ContactedAt
			row.Hidden = contact.Hidden
		}
		rows = append(rows, row)
	}
	return rows
}

// GetClientsPaginated runs the aggregation + classification inline and then
// filters, counts, sorts and pages server-side. List views use the
// spend-tier weight approximation; the precise line-item path is reserved
// for the full categorization.
func (s *ClientAnalyticsService) GetClientsPaginated(ctx context.Context, opts models.ClientsQueryOptions) (*models.PaginatedClientsResponse, error) {
	opts = NormalizeClientsQuery(opts)

	orders, err := s.store.FetchOrders(ctx, AnalyticsStatuses, nil, nil)
	if err != nil {
		log.Printf("[clients.paginated] ERROR fetch orders err=%v", err)
		return nil, err
	}

	now := time.Now()
	classified := ClassifyClients(BuildClientAggregates(orders), now, SpendTierWeightStrategy{})
	filtered := FilterClients(classified, opts)
	SortClients(filtered, opts.SortBy, opts.SortOrder)
	paged, totalCount, totalPages, hasMore := PageWindow(filtered, opts.Page, opts.PageSize)

	contacts, err := s.store.FetchWhatsAppContacts(ctx)
	if err != nil {
		log.Printf("[clients.paginated] ERROR fetch contacts err=%v", err)
		return nil, err
	}

	return &models.PaginatedClientsResponse{
		Clients:    OverlayContacts(paged, contacts),
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasMore:    hasMore,
	}, nil
}

// GetClientsByCategory is the unpaginated convenience wrapper used by
// export-style views; it reuses the paginated pipeline with one big window.
func (s *ClientAnalyticsService) GetClientsByCategory(ctx context.Context, category, categoryType string) ([]models.ClientRow, error) {
	orders, err := s.store.FetchOrders(ctx, AnalyticsStatuses, nil, nil)
	if err != nil {
		log.Printf("[clients.by-category] ERROR fetch orders err=%v", err)
		return nil, err
	}

	opts := NormalizeClientsQuery(models.ClientsQueryOptions{
		Category:     category,
		CategoryType: categoryType,
	})

	now := time.Now()
	classified := ClassifyClients(BuildClientAggregates(orders), now, SpendTierWeightStrategy{})
	filtered := FilterClients(classified, opts)
	SortClients(filtered, opts.SortBy, opts.SortOrder)

	contacts, err := s.store.FetchWhatsAppContacts(ctx)
	if err != nil {
		log.Printf("[clients.by-category] ERROR fetch contacts err=%v", err)
		return nil, err
	}

	return OverlayContacts(filtered, contacts), nil
}
