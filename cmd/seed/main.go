package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hizmetpinari/internal/config"
	"hizmetpinari/internal/db"
	"hizmetpinari/internal/model"
)

var districts = []model.District{
	{Name: "Kadikoy", CityName: "Istanbul"},
	{Name: "Besiktas", CityName: "Istanbul"},
	{Name: "Cankaya", CityName: "Ankara"},
	{Name: "Konak", CityName: "Izmir"},
}

var categories = []model.Category{
	{
		Name: "Home Repair", Slug: "home-repair", IsActive: true,
		Services: []model.Service{
			{Name: "Plumbing", Slug: "plumbing", IsActive: true},
			{Name: "Electrical", Slug: "electrical", IsActive: true},
			{Name: "Painting", Slug: "painting", IsActive: true},
		},
	},
	{
		Name: "Cleaning", Slug: "cleaning", IsActive: true,
		Services: []model.Service{
			{Name: "House Cleaning", Slug: "house-cleaning", IsActive: true},
			{Name: "Carpet Cleaning", Slug: "carpet-cleaning", IsActive: true},
		},
	},
	{
		Name: "Moving", Slug: "moving", IsActive: true,
		Services: []model.Service{
			{Name: "Home Moving", Slug: "home-moving", IsActive: true},
		},
	},
}

type demoUser struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      model.Role
}

var demoUsers = []demoUser{
	{"admin@example.com", "admin-password", "Site", "Admin", model.RoleAdmin},
	{"customer@example.com", "customer-password", "Ayse", "Yilmaz", model.RoleCustomer},
	{"provider@example.com", "provider-password", "Mehmet", "Demir", model.RoleProvider},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Provider{},
		&model.Category{},
		&model.Service{},
		&model.District{},
		&model.Job{},
		&model.Offer{},
		&model.Review{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seedCatalog(gormDB); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if err := seedUsers(gormDB); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Println("Seed completed")
}

func seedCatalog(gormDB *gorm.DB) error {
	for i := range districts {
		if err := gormDB.Where("name = ? AND city_name = ?", districts[i].Name, districts[i].CityName).
			FirstOrCreate(&districts[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d districts", len(districts))

	for i := range categories {
		if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&categories[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d categories", len(categories))
	return nil
}

func seedUsers(gormDB *gorm.DB) error {
	for _, u := range demoUsers {
		var existing model.User
		err := gormDB.Where("email = ?", u.email).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), 10)
		if err != nil {
			return err
		}
		user := model.User{
			Email:        u.email,
			PasswordHash: string(hash),
			FirstName:    u.firstName,
			LastName:     u.lastName,
			Role:         u.role,
			IsActive:     true,
		}
		if err := gormDB.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Created demo %s user %s", u.role, u.email)
	}
	return nil
}
