package services

import (
	"context"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
)

type Dashboard struct {
	Users       int64 `json:"users"`
	Categories  int64 `json:"categories"`
	FoodItems   int64 `json:"foodItems"`
	OrdersToday int64 `json:"ordersToday"`
}

type DashboardService struct {
	Users      *repository.UserRepository
	Categories *repository.CategoryRepository
	Items      *repository.FoodItemRepository
	Orders     *repository.OrderRepository
	Now        func() time.Time
}

func NewDashboardService(
	users *repository.UserRepository,
	categories *repository.CategoryRepository,
	items *repository.FoodItemRepository,
	orders *repository.OrderRepository,
) *DashboardService {
	return &DashboardService{Users: users, Categories: categories, Items: items, Orders: orders, Now: time.Now}
}

func (s *DashboardService) Get(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	var err error
	if d.Users, err = s.Users.Count(ctx); err != nil {
		return nil, err
	}
	if d.Categories, err = s.Categories.Count(ctx); err != nil {
		return nil, err
	}
	if d.FoodItems, err = s.Items.Count(ctx); err != nil {
		return nil, err
	}
	now := s.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.OrdersToday, err = s.Orders.CountSince(ctx, midnight); err != nil {
		return nil, err
	}
	return &d, nil
}
