package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodItemService struct {
	Repo       *repository.FoodItemRepository
	Categories *repository.CategoryRepository
	ItemTypes  *repository.ItemTypeRepository
	UploadDir  string
}

func NewFoodItemService(
	repo *repository.FoodItemRepository,
	categories *repository.CategoryRepository,
	itemTypes *repository.ItemTypeRepository,
	uploadDir string,
) *FoodItemService {
	return &FoodItemService{Repo: repo, Categories: categories, ItemTypes: itemTypes, UploadDir: uploadDir}
}

// FoodItemIn is bound from JSON or a multipart form. Prices are decimal
// strings. Zero values leave the stored value alone on update.
type FoodItemIn struct {
	ItemName        string `json:"itemName" form:"itemName"`
	ItemDescription string `json:"itemDescription" form:"itemDescription"`
	ActualPrice     string `json:"actualPrice" form:"actualPrice"`
	DiscountPer     *int   `json:"discountPer" form:"discountPer"`
	SellingPrice    string `json:"sellingPrice" form:"sellingPrice"`
	CategoryID      uint   `json:"categoryId" form:"categoryId"`
	ItemTypeID      uint   `json:"itemTypeId" form:"itemTypeId"`
	IsAvailable     *bool  `json:"isAvailable" form:"isAvailable"`
	ImagePath       string `json:"-" form:"-"`
}

// Tags are the merchandising flags shown on the menu.
type Tags struct {
	IsBestSeller *bool `json:"isBestSeller"`
	IsFastMoving *bool `json:"isFastMoving"`
	IsBreakfast  *bool `json:"isBreakfast"`
	IsLunch      *bool `json:"isLunch"`
	IsDinner     *bool `json:"isDinner"`
}

func parsePrice(field, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil || d.IsNegative() {
		return decimal.Zero, invalid("%s must be a non-negative amount", field)
	}
	return d.Round(2), nil
}

func (s *FoodItemService) checkRefs(ctx context.Context, categoryID, itemTypeID uint) error {
	if categoryID != 0 {
		if _, err := s.Categories.FindByID(ctx, categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invalid("category %d does not exist", categoryID)
			}
			return err
		}
	}
	if itemTypeID != 0 {
		ok, err := s.ItemTypes.Exists(ctx, itemTypeID)
		if err != nil {
			return err
		}
		if !ok {
			return invalid("item type %d does not exist", itemTypeID)
		}
	}
	return nil
}

func (s *FoodItemService) List(ctx context.Context, f repository.FoodItemFilter) (repository.Page[entity.FoodItem], error) {
	return s.Repo.List(ctx, f)
}

func (s *FoodItemService) Get(ctx context.Context, id uint) (*entity.FoodItem, error) {
	f, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return f, err
}

// Create stores a new item. Without a selling price the discounted actual
// price is used.
func (s *FoodItemService) Create(ctx context.Context, in FoodItemIn) (*entity.FoodItem, error) {
	name := strings.TrimSpace(in.ItemName)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return nil, invalid("item name must be 1 to 100 characters")
	}
	if utf8.RuneCountInString(in.ItemDescription) > 1500 {
		return nil, invalid("item description must be at most 1500 characters")
	}
	if in.CategoryID == 0 || in.ItemTypeID == 0 {
		return nil, invalid("category and item type are required")
	}
	actual, err := parsePrice("actual price", in.ActualPrice)
	if err != nil {
		return nil, err
	}
	item := &entity.FoodItem{
		ItemName:        name,
		ItemDescription: strings.TrimSpace(in.ItemDescription),
		ItemImagePath:   in.ImagePath,
		ActualPrice:     actual,
		CategoryID:      in.CategoryID,
		ItemTypeID:      in.ItemTypeID,
		IsAvailable:     true,
	}
	if in.DiscountPer != nil {
		if *in.DiscountPer < 0 || *in.DiscountPer > 100 {
			return nil, invalid("discount must be between 0 and 100")
		}
		item.DiscountPer = *in.DiscountPer
	}
	if in.SellingPrice != "" {
		if item.SellingPrice, err = parsePrice("selling price", in.SellingPrice); err != nil {
			return nil, err
		}
	} else {
		item.SellingPrice = item.DiscountedPrice()
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if err := s.checkRefs(ctx, in.CategoryID, in.ItemTypeID); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.Get(ctx, item.ID)
}

// Update changes the given fields. When the actual price or discount move
// and no selling price is given, the selling price is recomputed.
func (s *FoodItemService) Update(ctx context.Context, id uint, in FoodItemIn) (*entity.FoodItem, error) {
	old, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, in.CategoryID, in.ItemTypeID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	next := *old
	if name := strings.TrimSpace(in.ItemName); name != "" {
		if utf8.RuneCountInString(name) > 100 {
			return nil, invalid("item name must be 1 to 100 characters")
		}
		updates["item_name"] = name
	}
	if in.ItemDescription != "" {
		if utf8.RuneCountInString(in.ItemDescription) > 1500 {
			return nil, invalid("item description must be at most 1500 characters")
		}
		updates["item_description"] = strings.TrimSpace(in.ItemDescription)
	}
	repriced := false
	if in.ActualPrice != "" {
		if next.ActualPrice, err = parsePrice("actual price", in.ActualPrice); err != nil {
			return nil, err
		}
		updates["actual_price"] = next.ActualPrice
		repriced = true
	}
	if in.DiscountPer != nil {
		if *in.DiscountPer < 0 || *in.DiscountPer > 100 {
			return nil, invalid("discount must be between 0 and 100")
		}
		next.DiscountPer = *in.DiscountPer
		updates["discount_per"] = next.DiscountPer
		repriced = true
	}
	switch {
	case in.SellingPrice != "":
		sp, err := parsePrice("selling price", in.SellingPrice)
		if err != nil {
			return nil, err
		}
		updates["selling_price"] = sp
	case repriced:
		updates["selling_price"] = next.DiscountedPrice()
	}
	if in.CategoryID != 0 {
		updates["category_id"] = in.CategoryID
	}
	if in.ItemTypeID != 0 {
		updates["item_type_id"] = in.ItemTypeID
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if in.ImagePath != "" {
		updates["item_image_path"] = in.ImagePath
	}

	if len(updates) > 0 {
		if err := s.Repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	if in.ImagePath != "" && old.ItemImagePath != "" {
		utils.RemoveUpload(s.UploadDir, old.ItemImagePath)
	}
	return s.Get(ctx, id)
}

func (s *FoodItemService) SetAvailability(ctx context.Context, id uint, available bool) (*entity.FoodItem, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, id, map[string]any{"is_available": available}); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *FoodItemService) SetTags(ctx context.Context, id uint, t Tags) (*entity.FoodItem, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	set := func(col string, v *bool) {
		if v != nil {
			updates[col] = *v
		}
	}
	set("is_best_seller", t.IsBestSeller)
	set("is_fast_moving", t.IsFastMoving)
	set("is_breakfast", t.IsBreakfast)
	set("is_lunch", t.IsLunch)
	set("is_dinner", t.IsDinner)
	if len(updates) > 0 {
		if err := s.Repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes the item. Carts that already hold it keep their
// snapshot and can still be ordered.
func (s *FoodItemService) Delete(ctx context.Context, id uint) error {
	f, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.RemoveUpload(s.UploadDir, f.ItemImagePath)
	return nil
}
