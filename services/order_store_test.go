package services_test

import (
	"testing"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRollupAggregate(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rollup := services.ClientRollup{
		Key:         "u-1",
		TotalOrders: 3,
		TotalSpent:  15000,
		FirstOrder:  base,
		LastOrder:   base.AddDate(0, 2, 0),
		// Pushed dates arrive in whatever order the pipeline grouped them.
		OrderDates: []time.Time{base.AddDate(0, 2, 0), base, base.AddDate(0, 1, 0)},
	}

	agg := rollup.Aggregate()
	assert.Equal(t, "u-1", agg.Key)
	assert.Equal(t, 3, agg.TotalOrders)
	assert.Equal(t, 15000.0, agg.TotalSpent)

	// Entries must come out date-ascending for the behavior classifier's gap
	// computation.
	dates := agg.OrderDates()
	require.Len(t, dates, 3)
	assert.Equal(t, base, dates[0])
	assert.Equal(t, base.AddDate(0, 1, 0), dates[1])
	assert.Equal(t, base.AddDate(0, 2, 0), dates[2])
}
