package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
)

// Collection names in the orders database
const (
	OrdersCollection     = "orders"
	ProductsCollection   = "products"
	CategoriesCollection = "categories"
	UsersCollection      = "users"
)

func ConnectMongo() {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
		log.Println("⚠️ MONGODB_URI not set, using local default")
	}

	dbName := getEnv("MONGODB_DATABASE", "barfer_orders")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(mongoURI).
		SetMaxPoolSize(20).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatalf("❌ Unable to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	MongoClient = client
	MongoDB = client.Database(dbName)

	log.Printf("✅ MongoDB connected (db=%s)", dbName)
}

func CloseMongo() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("⚠️ MongoDB disconnect error: %v", err)
		return
	}
	log.Println("✅ MongoDB connection closed")
}

// Orders returns the orders collection handle.
func Orders() *mongo.Collection {
	return MongoDB.Collection(OrdersCollection)
}

// Products returns the products collection handle.
func Products() *mongo.Collection {
	return MongoDB.Collection(ProductsCollection)
}

// Categories returns the categories collection handle.
func Categories() *mongo.Collection {
	return MongoDB.Collection(CategoriesCollection)
}

// StoreUsers returns the storefront users collection handle.
func StoreUsers() *mongo.Collection {
	return MongoDB.Collection(UsersCollection)
}
