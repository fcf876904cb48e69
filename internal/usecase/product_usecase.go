package usecase

import (
	"context"
	"time"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	dropRepo    repository.DropRepository
}

func NewProductUseCase(productRepo repository.ProductRepository, dropRepo repository.DropRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		dropRepo:    dropRepo,
	}
}

type CreateProductInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price" validate:"required,min=1"`
	Collection  string   `json:"collection" validate:"required"`
	Images      []string `json:"images" validate:"required,min=1"`
	Sizes       []string `json:"sizes" validate:"required,min=1"`
	Stock       int      `json:"stock" validate:"min=0"`
	IsDrop      bool     `json:"is_drop"`
	DropID      string   `json:"drop_id"`
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	collection := entity.Collection(input.Collection)
	if !collection.Valid() {
		return nil, errors.BadRequest("Invalid collection", nil)
	}

	if input.DropID != "" {
		if _, err := uc.dropRepo.GetByID(ctx, input.DropID); err != nil {
			return nil, errors.BadRequest("Invalid drop", err)
		}
	}

	now := time.Now()
	product := &entity.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Collection:  collection,
		Images:      input.Images,
		Sizes:       input.Sizes,
		Stock:       input.Stock,
		IsDrop:      input.IsDrop,
		DropID:      input.DropID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input CreateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	collection := entity.Collection(input.Collection)
	if !collection.Valid() {
		return nil, errors.BadRequest("Invalid collection", nil)
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.Collection = collection
	product.Images = input.Images
	product.Sizes = input.Sizes
	product.Stock = input.Stock
	product.IsDrop = input.IsDrop
	product.DropID = input.DropID
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

type ListProductsInput struct {
	Collection string
	DropsOnly  bool
	Limit      int
	Offset     int
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, int64, error) {
	filter := map[string]interface{}{}

	if input.Collection != "" {
		if !entity.Collection(input.Collection).Valid() {
			return nil, 0, errors.BadRequest("Invalid collection", nil)
		}
		filter["collection"] = input.Collection
	}

	if input.DropsOnly {
		filter["isDrop"] = true
	}

	return uc.productRepo.List(ctx, filter, input.Limit, input.Offset)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, id)
}
