package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	CommercialCollection  *mongo.Collection
	ResidentialCollection *mongo.Collection
	BuildersCollection    *mongo.Collection
	UserCollection        *mongo.Collection
	FavoritesCollection   *mongo.Collection
	VisitorsCollection    *mongo.Collection
	PagesCollection       *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "nivaasdb"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	CommercialCollection = Client.Database(dbName).Collection("commercialproperties")
	ResidentialCollection = Client.Database(dbName).Collection("residentialproperties")
	BuildersCollection = Client.Database(dbName).Collection("builders")
	UserCollection = Client.Database(dbName).Collection("users")
	FavoritesCollection = Client.Database(dbName).Collection("favorites")
	VisitorsCollection = Client.Database(dbName).Collection("visitors")
	PagesCollection = Client.Database(dbName).Collection("pages")
}

// PropertyCollections returns the property collections in merge order:
// commercial first, then residential.
func PropertyCollections() []*mongo.Collection {
	return []*mongo.Collection{CommercialCollection, ResidentialCollection}
}
