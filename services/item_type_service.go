package services

import (
	"context"
	"strings"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
)

type ItemTypeService struct {
	Repo *repository.ItemTypeRepository
}

func NewItemTypeService(repo *repository.ItemTypeRepository) *ItemTypeService {
	return &ItemTypeService{Repo: repo}
}

func (s *ItemTypeService) List(ctx context.Context) ([]entity.ItemType, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ItemTypeService) Create(ctx context.Context, name string) (*entity.ItemType, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 50 {
		return nil, invalid("item type name must be 1 to 50 characters")
	}
	taken, err := s.Repo.NameTaken(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("item type %q already exists", name)
	}
	t := &entity.ItemType{ItemTypeName: name}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
