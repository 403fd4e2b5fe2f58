package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"gorm.io/gorm"
)

type CategoryService struct {
	Repo      *repository.CategoryRepository
	UploadDir string
}

func NewCategoryService(repo *repository.CategoryRepository, uploadDir string) *CategoryService {
	return &CategoryService{Repo: repo, UploadDir: uploadDir}
}

// CategoryIn is bound from JSON or a multipart form. Nil pointers and empty
// strings leave the stored value alone on update.
type CategoryIn struct {
	CategoryName        string `json:"categoryName" form:"categoryName"`
	CategoryDescription string `json:"categoryDescription" form:"categoryDescription"`
	CategoryDiscount    *int   `json:"categoryDiscount" form:"categoryDiscount"`
	CategoryStatus      *bool  `json:"categoryStatus" form:"categoryStatus"`
	ImagePath           string `json:"-" form:"-"`
}

func (in *CategoryIn) validate(creating bool) error {
	in.CategoryName = strings.TrimSpace(in.CategoryName)
	if creating && in.CategoryName == "" {
		return invalid("category name is required")
	}
	if utf8.RuneCountInString(in.CategoryName) > 30 {
		return invalid("category name must be at most 30 characters")
	}
	if utf8.RuneCountInString(in.CategoryDescription) > 1500 {
		return invalid("category description must be at most 1500 characters")
	}
	if in.CategoryDiscount != nil && (*in.CategoryDiscount < 0 || *in.CategoryDiscount > 100) {
		return invalid("category discount must be between 0 and 100")
	}
	return nil
}

func (s *CategoryService) List(ctx context.Context, f repository.CategoryFilter) (repository.Page[entity.Category], error) {
	return s.Repo.List(ctx, f)
}

func (s *CategoryService) ListActive(ctx context.Context) ([]entity.Category, error) {
	return s.Repo.ListActive(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*entity.Category, error) {
	c, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *CategoryService) Create(ctx context.Context, in CategoryIn) (*entity.Category, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}
	taken, err := s.Repo.NameTaken(ctx, in.CategoryName, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("category %q already exists", in.CategoryName)
	}

	c := &entity.Category{
		CategoryName:        in.CategoryName,
		CategoryDescription: strings.TrimSpace(in.CategoryDescription),
		CategoryImagePath:   in.ImagePath,
		CategoryStatus:      true,
	}
	if in.CategoryDiscount != nil {
		c.CategoryDiscount = *in.CategoryDiscount
	}
	if in.CategoryStatus != nil {
		c.CategoryStatus = *in.CategoryStatus
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in CategoryIn) (*entity.Category, error) {
	old, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(false); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.CategoryName != "" && in.CategoryName != old.CategoryName {
		taken, err := s.Repo.NameTaken(ctx, in.CategoryName, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("category %q already exists", in.CategoryName)
		}
		updates["category_name"] = in.CategoryName
	}
	if in.CategoryDescription != "" {
		updates["category_description"] = strings.TrimSpace(in.CategoryDescription)
	}
	if in.CategoryDiscount != nil {
		updates["category_discount"] = *in.CategoryDiscount
	}
	if in.CategoryStatus != nil {
		updates["category_status"] = *in.CategoryStatus
	}
	if in.ImagePath != "" {
		updates["category_image_path"] = in.ImagePath
	}

	if len(updates) > 0 {
		if err := s.Repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	if in.ImagePath != "" && old.CategoryImagePath != "" {
		utils.RemoveUpload(s.UploadDir, old.CategoryImagePath)
	}
	return s.Get(ctx, id)
}

// ToggleStatus flips the active flag and returns the new value.
func (s *CategoryService) ToggleStatus(ctx context.Context, id uint) (bool, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	next := !c.CategoryStatus
	if err := s.Repo.Update(ctx, id, map[string]any{"category_status": next}); err != nil {
		return false, err
	}
	return next, nil
}

// Delete refuses while food items still point at the category.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.Repo.CountItems(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryInUse
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.RemoveUpload(s.UploadDir, c.CategoryImagePath)
	return nil
}
