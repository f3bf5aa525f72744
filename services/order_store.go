package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStoreTimeout marks an aggregation that ran past its deadline. Retryable:
// the caller gets no partial results, ever.
var ErrStoreTimeout = errors.New("order store query timed out")

// AnalyticsStatuses are the lifecycle statuses that participate in client
// categorization.
var AnalyticsStatuses = []string{
	models.OrderStatusPending,
	models.OrderStatusConfirmed,
	models.OrderStatusDelivered,
	models.OrderStatusCancelled,
}

// OrderStore is the read-side adapter over the orders collection. Heavy
// rollups are pushed down as aggregation pipelines; full-document reads are
// cursor-streamed.
type OrderStore struct {
	col *mongo.Collection
}

func NewOrderStore() *OrderStore {
	return &OrderStore{col: config.Orders()}
}

func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrStoreTimeout, err)
	}
	return err
}

// FetchOrders returns orders matching the given statuses, optionally bounded
// by creation date.
func (s *OrderStore) FetchOrders(ctx context.Context, statuses []string, from, to *time.Time) ([]models.Order, error) {
	filter := bson.M{"status": bson.M{"$in": statuses}}
	if from != nil || to != nil {
		dateFilter := bson.M{}
		if from != nil {
			dateFilter["$gte"] = *from
		}
		if to != nil {
			dateFilter["$lt"] = *to
		}
		filter["createdAt"] = dateFilter
	}

	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, storeErr(err)
	}
	return orders, nil
}

// ClientRollup is the compact per-client summary produced by the pushdown
// pipeline: everything the cheap stats path needs, without line items.
type ClientRollup struct {
	Key         string      `bson:"_id"`
	TotalOrders int         `bson:"totalOrders"`
	TotalSpent  float64     `bson:"totalSpent"`
	FirstOrder  time.Time   `bson:"firstOrder"`
	LastOrder   time.Time   `bson:"lastOrder"`
	OrderDates  []time.Time `bson:"orderDates"`
}

// FetchClientRollups groups orders by customer key inside the database,
// mirroring ResolveCustomerKey: userId when present, else the lowercased
// email. Orders with neither group under the empty key and are dropped.
func (s *OrderStore) FetchClientRollups(ctx context.Context) ([]ClientRollup, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": AnalyticsStatuses}}},
		{"$group": bson.M{
			"_id": bson.M{"$ifNull": bson.A{
				"$userId",
				bson.M{"$ifNull": bson.A{
					"$user.id",
					bson.M{"$toLower": bson.M{"$ifNull": bson.A{"$user.email", ""}}},
				}},
			}},
			"totalOrders": bson.M{"$sum": 1},
			"totalSpent":  bson.M{"$sum": "$total"},
			"firstOrder":  bson.M{"$min": "$createdAt"},
			"lastOrder":   bson.M{"$max": "$createdAt"},
			"orderDates":  bson.M{"$push": "$createdAt"},
		}},
		{"$match": bson.M{"_id": bson.M{"$ne": ""}}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	var rollups []ClientRollup
	if err := cursor.All(ctx, &rollups); err != nil {
		return nil, storeErr(err)
	}
	return rollups, nil
}

// Aggregate converts a rollup into a ClientAggregate with dated entries but
// no line items, for paths that never weigh products.
func (r ClientRollup) Aggregate() models.ClientAggregate {
	dates := append([]time.Time(nil), r.OrderDates...)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	entries := make([]models.OrderEntry, len(dates))
	for i, d := range dates {
		entries[i] = models.OrderEntry{Date: d}
	}
	return models.ClientAggregate{
		Key:            r.Key,
		TotalOrders:    r.TotalOrders,
		TotalSpent:     r.TotalSpent,
		FirstOrderDate: r.FirstOrder,
		LastOrderDate:  r.LastOrder,
		Entries:        entries,
	}
}

// FetchWhatsAppContacts returns the latest whatsappContactedAt value per
// email, for the overlay join on the clients table.
func (s *OrderStore) FetchWhatsAppContacts(ctx context.Context) (map[string]models.WhatsAppContact, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"user.email": bson.M{"$nin": bson.A{nil, ""}}}},
		{"$sort": bson.M{"createdAt": 1}},
		{"$group": bson.M{
			"_id":         bson.M{"$toLower": "$user.email"},
			"contactedAt": bson.M{"$last": "$whatsappContactedAt"},
		}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	type contactDoc struct {
		Email       string `bson:"_id"`
		ContactedAt string `bson:"contactedAt"`
	}

	contacts := make(map[string]models.WhatsAppContact)
	for cursor.Next(ctx) {
		var doc contactDoc
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		contacts[doc.Email] = ParseWhatsAppContact(doc.ContactedAt)
	}
	if err := cursor.Err(); err != nil {
		return nil, storeErr(err)
	}
	return contacts, nil
}

// ParseWhatsAppContact interprets a raw whatsappContactedAt value: exactly
// the hidden sentinel hides the client; an RFC3339 value is the contact
// timestamp; anything else means visible and never contacted.
func ParseWhatsAppContact(raw string) models.WhatsAppContact {
	if raw == models.WhatsAppHiddenSentinel {
		return models.WhatsAppContact{Hidden: true}
	}
	if raw == "" {
		return models.WhatsAppContact{}
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return models.WhatsAppContact{ContactedAt: &ts}
	}
	return models.WhatsAppContact{}
}

// UpdateWhatsAppContact writes the raw contact marker onto every order of
// the given email (empty value clears it).
func (s *OrderStore) UpdateWhatsAppContact(ctx context.Context, email, value string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var update bson.M
	if value == "" {
		update = bson.M{"$unset": bson.M{"whatsappContactedAt": ""}}
	} else {
		update = bson.M{"$set": bson.M{"whatsappContactedAt": value}}
	}

	res, err := s.col.UpdateMany(ctx,
		bson.M{"$expr": bson.M{"$eq": bson.A{bson.M{"$toLower": "$user.email"}, email}}},
		update,
	)
	if err != nil {
		return 0, storeErr(err)
	}
	return res.ModifiedCount, nil
}
