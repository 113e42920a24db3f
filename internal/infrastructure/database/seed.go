package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/samlamare/cafechill-api/internal/config"
	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/pkg/utils"
)

// SeedDefaultData seeds the bootstrap admin account and the menu catalog.
// Existing rows are left alone, so the seed is safe to run on every boot.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	if err := seedAdminUser(db, &cfg.Admin); err != nil {
		return err
	}
	if err := seedMenuCatalog(db); err != nil {
		return err
	}

	log.Println("Default data seeding completed")
	return nil
}

// seedAdminUser creates the local bootstrap admin when configured via
// environment variables. Without it a fresh install has no approved
// account and nobody could approve the first staff sign-up.
func seedAdminUser(db *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", cfg.Email).First(&existing).Error; err == nil {
		log.Printf("Bootstrap admin already exists: %s", cfg.Email)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return nil
	}

	name := "Admin"
	admin := entity.User{
		ExternalUID: "local:" + cfg.Email,
		Email:       cfg.Email,
		DisplayName: &name,
		Password:    string(hashedPassword),
		Role:        enum.UserRoleAdmin,
		Status:      enum.UserStatusApproved,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Warning: failed to create bootstrap admin: %v", err)
		return nil
	}

	log.Printf("Bootstrap admin created: %s", cfg.Email)
	return nil
}

type menuSeed struct {
	Name        string
	Description string
	Price       int64 // rupees; converted to paise on insert
	Category    enum.MenuCategory
	Tags        string
	Featured    bool
	BestSeller  bool
}

var menuCatalog = []menuSeed{
	{Name: "Classic Cappuccino", Description: "Rich espresso with steamed milk foam.", Price: 180, Category: enum.MenuCategoryCoffeeHot, Tags: "hot,best-seller", Featured: true, BestSeller: true},
	{Name: "Flat White", Description: "Bold espresso with a velvety microfoam.", Price: 190, Category: enum.MenuCategoryCoffeeHot, Tags: "hot"},
	{Name: "Hazelnut Latte", Description: "Espresso with hazelnut syrup and steamed milk.", Price: 210, Category: enum.MenuCategoryCoffeeHot, Tags: "hot,flavoured"},
	{Name: "Americano", Description: "Espresso stretched with hot water.", Price: 160, Category: enum.MenuCategoryCoffeeHot, Tags: "hot"},
	{Name: "Mocha", Description: "Chocolate, espresso, and steamed milk.", Price: 220, Category: enum.MenuCategoryCoffeeHot, Tags: "hot,chocolate"},
	{Name: "Iced Hazelnut Latte", Description: "Chilled espresso with hazelnut syrup and milk.", Price: 220, Category: enum.MenuCategoryCoffeeCold, Tags: "cold", Featured: true},
	{Name: "Classic Iced Latte", Description: "Espresso over ice with chilled milk.", Price: 210, Category: enum.MenuCategoryCoffeeCold, Tags: "cold"},
	{Name: "Caramel Frappe", Description: "Blended coffee drink with caramel drizzle.", Price: 240, Category: enum.MenuCategoryCoffeeCold, Tags: "cold,sweet"},
	{Name: "Cold Brew", Description: "18-hour steeped coffee over ice.", Price: 200, Category: enum.MenuCategoryCoffeeCold, Tags: "cold"},
	{Name: "Affogato", Description: "Espresso poured over vanilla ice cream.", Price: 230, Category: enum.MenuCategoryCoffeeCold, Tags: "cold,dessert"},
	{Name: "Matcha Latte", Description: "Premium matcha green tea with steamed milk.", Price: 210, Category: enum.MenuCategoryBeverages, Tags: "hot"},
	{Name: "Lemon Iced Tea", Description: "House-brewed tea with lemon and ice.", Price: 160, Category: enum.MenuCategoryBeverages, Tags: "cold"},
	{Name: "Classic Hot Chocolate", Description: "Dark cocoa with steamed milk and cream.", Price: 190, Category: enum.MenuCategoryBeverages, Tags: "hot,chocolate"},
	{Name: "Mojito Cooler", Description: "Mint, lime, and soda over crushed ice.", Price: 180, Category: enum.MenuCategoryBeverages, Tags: "cold,refreshing"},
	{Name: "Masala Chai", Description: "Spiced Indian tea brewed with milk.", Price: 150, Category: enum.MenuCategoryBeverages, Tags: "hot"},
	{Name: "Avocado Toast", Description: "Sourdough bread topped with smashed avocado.", Price: 250, Category: enum.MenuCategoryFood, Tags: "veg"},
	{Name: "Chicken Wings", Description: "Crispy wings with house spice rub.", Price: 260, Category: enum.MenuCategoryFood, Tags: "non-veg"},
	{Name: "Tribal Rice Plate", Description: "Rice with local sides and a warm curry.", Price: 280, Category: enum.MenuCategoryFood, Tags: "signature", Featured: true},
	{Name: "Butter Toast", Description: "Crisp toast with salted butter.", Price: 130, Category: enum.MenuCategoryFood, Tags: "veg"},
	{Name: "Chicken Nuggets", Description: "Bite-sized crispy chicken pieces.", Price: 220, Category: enum.MenuCategoryFood, Tags: "non-veg"},
	{Name: "Blueberry Cheesecake", Description: "Creamy cheesecake with blueberry topping.", Price: 300, Category: enum.MenuCategoryDessert, Tags: "veg", Featured: true},
	{Name: "Brownie with Ice Cream", Description: "Warm brownie with a scoop of vanilla.", Price: 260, Category: enum.MenuCategoryDessert, Tags: "veg"},
	{Name: "Tiramisu", Description: "Coffee-soaked sponge with mascarpone.", Price: 280, Category: enum.MenuCategoryDessert, Tags: "veg"},
	{Name: "Chocolate Mousse", Description: "Dark chocolate mousse, lightly whipped.", Price: 240, Category: enum.MenuCategoryDessert, Tags: "veg"},
	{Name: "Lemon Tart", Description: "Buttery crust with lemon curd.", Price: 230, Category: enum.MenuCategoryDessert, Tags: "veg"},
	{Name: "Signature Cold Brew", Description: "Steeped for 18 hours for a smooth taste.", Price: 190, Category: enum.MenuCategorySpecial, Tags: "cold,signature", Featured: true},
	{Name: "Seasonal Pour Over", Description: "Rotating single-origin hand brew.", Price: 220, Category: enum.MenuCategorySpecial, Tags: "hot"},
	{Name: "Cafe Shillong Special", Description: "Barista's choice drink of the day.", Price: 210, Category: enum.MenuCategorySpecial, Tags: "signature"},
	{Name: "Cold Coffee Flight", Description: "Three small pours of cold coffee styles.", Price: 320, Category: enum.MenuCategorySpecial, Tags: "cold,tasting"},
	{Name: "Dessert Flight", Description: "Mini portions of three desserts.", Price: 350, Category: enum.MenuCategorySpecial, Tags: "dessert,sharing"},
}

// DefaultMenuItems returns the house menu ready for insertion. The
// admin "seed sample data" endpoint reuses this list for its bulk
// upsert, so boot seeding and the endpoint stay in sync.
func DefaultMenuItems() []entity.MenuItem {
	items := make([]entity.MenuItem, 0, len(menuCatalog))
	for _, seed := range menuCatalog {
		items = append(items, entity.MenuItem{
			Code:         utils.Slugify(seed.Name),
			Name:         seed.Name,
			Description:  seed.Description,
			Price:        seed.Price * 100,
			Category:     seed.Category,
			Tags:         seed.Tags,
			IsVegetarian: seed.Tags == "veg",
			IsAvailable:  true,
			Featured:     seed.Featured,
			BestSeller:   seed.BestSeller,
		})
	}
	return items
}

// seedMenuCatalog inserts the house menu. Items are keyed by slug code,
// so a renamed or repriced row edited through the admin panel is never
// overwritten on restart.
func seedMenuCatalog(db *gorm.DB) error {
	created := 0
	for _, item := range DefaultMenuItems() {
		var existing entity.MenuItem
		if err := db.Where("code = ?", item.Code).First(&existing).Error; err == nil {
			continue
		}

		if err := db.Create(&item).Error; err != nil {
			log.Printf("Warning: failed to seed menu item %s: %v", item.Name, err)
			continue
		}
		created++
	}

	if created > 0 {
		log.Printf("Seeded %d menu items", created)
	}
	return nil
}
