// Seeds the database with an admin account, the default laundry
// catalog and the slot table (including the canonical all-day delivery
// slot). Safe to re-run: collections are cleared first.
package main

import (
	"context"
	"log"
	"time"

	"washex/config"
	"washex/database"
	"washex/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedStaff(ctx)
	seedCatalog(ctx)
	seedSlots(ctx)

	log.Println("Seeding complete.")
}

func seedStaff(ctx context.Context) {
	coll := database.Collection("staff")
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear staff collection: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	now := time.Now()
	members := []interface{}{
		models.Staff{
			ID: uuid.New().String(), Name: "Admin", Email: "admin@washx.local",
			PasswordHash: string(hash), Role: models.RoleAdmin, Active: true,
			CreatedAt: now, UpdatedAt: now,
		},
		models.Staff{
			ID: uuid.New().String(), Name: "Ravi Kumar", Email: "ravi@washx.local", Phone: "9800000001",
			PasswordHash: string(hash), Role: models.RoleAgent, Active: true,
			CreatedAt: now, UpdatedAt: now,
		},
		models.Staff{
			ID: uuid.New().String(), Name: "Sunita Devi", Email: "sunita@washx.local", Phone: "9800000002",
			PasswordHash: string(hash), Role: models.RoleAgent, Active: true,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	if _, err := coll.InsertMany(ctx, members); err != nil {
		log.Fatalf("Failed to seed staff: %v", err)
	}
	log.Printf("Seeded %d staff members", len(members))
}

func seedCatalog(ctx context.Context) {
	coll := database.Collection("services")
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear services collection: %v", err)
	}

	services := []interface{}{
		models.ServiceDefinition{
			ID: uuid.New().String(), Name: "Wash & Fold",
			PricingModel: models.PricingPerWeight,
			Weight:       &models.WeightPricing{RatePerKg: 80},
			StandardTAT:  "48", ExpressTAT: "24", SuperfastTAT: "8",
			Active: true,
		},
		models.ServiceDefinition{
			ID: uuid.New().String(), Name: "Wash & Iron",
			PricingModel: models.PricingPerWeight,
			Weight:       &models.WeightPricing{RatePerKg: 110},
			StandardTAT:  "48", ExpressTAT: "24", SuperfastTAT: "12",
			Active: true,
		},
		models.ServiceDefinition{
			ID: uuid.New().String(), Name: "Shoe Cleaning",
			PricingModel: models.PricingPerPair,
			Pair:         &models.PairPricing{RatePerPair: 250},
			StandardTAT:  "72", ExpressTAT: "48", SuperfastTAT: "24",
			Active: true,
		},
		models.ServiceDefinition{
			ID: uuid.New().String(), Name: "Dry Cleaning",
			PricingModel: models.PricingPerItem,
			Itemized: &models.ItemizedPricing{Subcategories: []models.Subcategory{
				{Name: "Shirt", Price: 60},
				{Name: "Trousers", Price: 80},
				{Name: "Suit (2 pc)", Price: 350},
				{Name: "Saree", Price: 200},
				{Name: "Blanket", Price: 300},
			}},
			StandardTAT: "96", ExpressTAT: "48", SuperfastTAT: "24",
			Active: true,
		},
	}
	if _, err := coll.InsertMany(ctx, services); err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}
	log.Printf("Seeded %d services", len(services))
}

func seedSlots(ctx context.Context) {
	coll := database.Collection("slots")
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear slots collection: %v", err)
	}

	slots := []interface{}{
		models.Slot{ID: uuid.New().String(), Name: "8:00 AM - 10:00 AM", StartMinute: 480, EndMinute: 600, Kind: models.SlotKindAny},
		models.Slot{ID: uuid.New().String(), Name: "10:00 AM - 12:00 PM", StartMinute: 600, EndMinute: 720, Kind: models.SlotKindAny},
		models.Slot{ID: uuid.New().String(), Name: "12:00 PM - 2:00 PM", StartMinute: 720, EndMinute: 840, Kind: models.SlotKindAny},
		models.Slot{ID: uuid.New().String(), Name: "4:00 PM - 6:00 PM", StartMinute: 960, EndMinute: 1080, Kind: models.SlotKindAny},
		models.Slot{ID: uuid.New().String(), Name: "6:00 PM - 8:00 PM", StartMinute: 1080, EndMinute: 1200, Kind: models.SlotKindAny},
		// The canonical all-day delivery slot assigned to fresh delivery dates.
		models.Slot{ID: uuid.New().String(), Name: "All Day", StartMinute: 480, EndMinute: 1200, Kind: models.SlotKindDelivery, AllDay: true},
	}
	if _, err := coll.InsertMany(ctx, slots); err != nil {
		log.Fatalf("Failed to seed slots: %v", err)
	}
	log.Printf("Seeded %d slots", len(slots))
}
