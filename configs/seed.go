package configs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account from ADMIN_USERNAME/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:  username,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Email:     username + "@localhost",
		Active:    true,
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

type CatalogSeed struct {
	ItemTypes  []string       `yaml:"itemTypes"`
	Categories []CategorySeed `yaml:"categories"`
}

type CategorySeed struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Discount    int        `yaml:"discount"`
	Items       []ItemSeed `yaml:"items"`
}

type ItemSeed struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Type        string   `yaml:"type"`
	ActualPrice string   `yaml:"actualPrice"`
	DiscountPer int      `yaml:"discountPer"`
	Rating      float64  `yaml:"rating"`
	Tags        []string `yaml:"tags"`
}

func ParseCatalogSeed(data []byte) (*CatalogSeed, error) {
	var s CatalogSeed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	return &s, nil
}

// SeedCatalog loads categories, item types and food items from a YAML file.
// Rows are matched by name so running it twice changes nothing.
func SeedCatalog(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("skip seeding catalog: %s not found", path)
		return nil
	}
	if err != nil {
		return err
	}
	seed, err := ParseCatalogSeed(data)
	if err != nil {
		return err
	}
	return ApplyCatalogSeed(db, seed)
}

func ApplyCatalogSeed(db *gorm.DB, seed *CatalogSeed) error {
	return db.Transaction(func(tx *gorm.DB) error {
		types := map[string]uint{}
		for _, name := range seed.ItemTypes {
			t := entity.ItemType{}
			if err := tx.Where(entity.ItemType{ItemTypeName: name}).FirstOrCreate(&t).Error; err != nil {
				return err
			}
			types[name] = t.ID
		}

		for _, cs := range seed.Categories {
			cat := entity.Category{}
			err := tx.Where(entity.Category{CategoryName: cs.Name}).
				Attrs(entity.Category{
					CategoryDescription: cs.Description,
					CategoryDiscount:    cs.Discount,
					CategoryStatus:      true,
				}).
				FirstOrCreate(&cat).Error
			if err != nil {
				return err
			}

			for _, is := range cs.Items {
				typeID, ok := types[is.Type]
				if !ok {
					return fmt.Errorf("item %q: unknown type %q", is.Name, is.Type)
				}
				actual, err := decimal.NewFromString(is.ActualPrice)
				if err != nil {
					return fmt.Errorf("item %q: price: %w", is.Name, err)
				}
				item := entity.FoodItem{
					ItemName:        is.Name,
					ItemDescription: is.Description,
					ActualPrice:     actual,
					DiscountPer:     is.DiscountPer,
					Rating:          is.Rating,
					IsAvailable:     true,
					CategoryID:      cat.ID,
					ItemTypeID:      typeID,
				}
				item.SellingPrice = item.DiscountedPrice()
				applyTags(&item, is.Tags)

				var count int64
				if err := tx.Model(&entity.FoodItem{}).
					Where("item_name = ? AND category_id = ?", is.Name, cat.ID).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					continue
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}
		log.Println("catalog seeded")
		return nil
	})
}

func applyTags(f *entity.FoodItem, tags []string) {
	for _, t := range tags {
		switch t {
		case "bestSeller":
			f.IsBestSeller = true
		case "fastMoving":
			f.IsFastMoving = true
		case "breakfast":
			f.IsBreakfast = true
		case "lunch":
			f.IsLunch = true
		case "dinner":
			f.IsDinner = true
		}
	}
}
