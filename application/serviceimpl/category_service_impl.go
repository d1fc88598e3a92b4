package serviceimpl

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	slugStr := req.Slug
	if slugStr == "" {
		slugStr = req.Name
	}
	slugStr = slug.Make(slugStr)

	// ตรวจสอบว่า slug ซ้ำหรือไม่
	existing, _ := s.categoryRepo.GetBySlug(ctx, slugStr)
	if existing != nil {
		logger.WarnContext(ctx, "Category slug already exists", "slug", slugStr)
		return nil, fmt.Errorf("%w: category slug %q", services.ErrAlreadyExists, slugStr)
	}

	category := &models.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        slugStr,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category not found", "category_id", id)
		return nil, services.ErrNotFound
	}
	return category, nil
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, slugStr string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		logger.WarnContext(ctx, "Category not found", "slug", slugStr)
		return nil, services.ErrNotFound
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category not found for update", "category_id", id)
		return nil, services.ErrNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		newSlug := slug.Make(*req.Slug)
		existing, _ := s.categoryRepo.GetBySlug(ctx, newSlug)
		if existing != nil && existing.ID != id {
			logger.WarnContext(ctx, "Category slug already exists", "slug", newSlug)
			return nil, fmt.Errorf("%w: category slug %q", services.ErrAlreadyExists, newSlug)
		}
		category.Slug = newSlug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category updated", "category_id", id)
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return services.ErrNotFound
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return nil
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryServiceImpl) GetProductCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	return s.categoryRepo.GetProductCounts(ctx)
}
