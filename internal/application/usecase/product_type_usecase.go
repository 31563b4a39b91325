package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ProductTypeUseCase casos de uso CRUD para tipos de producto.
type ProductTypeUseCase struct {
	repo repository.ProductTypeRepository
}

// NewProductTypeUseCase construye el caso de uso.
func NewProductTypeUseCase(repo repository.ProductTypeRepository) *ProductTypeUseCase {
	return &ProductTypeUseCase{repo: repo}
}

// Create crea un tipo de producto.
func (uc *ProductTypeUseCase) Create(ctx context.Context, userID string, in dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	now := time.Now()
	pt := &entity.ProductType{
		ID:        uuid.New().String(),
		Type:      strings.TrimSpace(in.Type),
		TypeDesc:  in.TypeDesc,
		CreatedAt: now,
		CreatedBy: userID,
		UpdatedAt: now,
		UpdatedBy: userID,
	}
	if pt.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, pt); err != nil {
		return nil, err
	}
	return toProductTypeResponse(pt), nil
}

// GetByID obtiene un tipo de producto.
func (uc *ProductTypeUseCase) GetByID(ctx context.Context, id string) (*dto.ProductTypeResponse, error) {
	pt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, domain.ErrNotFound
	}
	return toProductTypeResponse(pt), nil
}

// Update actualiza un tipo de producto.
func (uc *ProductTypeUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	pt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		pt.Type = strings.TrimSpace(*in.Type)
	}
	if in.TypeDesc != nil {
		pt.TypeDesc = *in.TypeDesc
	}
	if pt.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	pt.UpdatedAt = time.Now()
	pt.UpdatedBy = userID
	if err := uc.repo.Update(ctx, pt); err != nil {
		return nil, err
	}
	return toProductTypeResponse(pt), nil
}

// List lista tipos de producto filtrando por nombre.
func (uc *ProductTypeUseCase) List(ctx context.Context, filter string, limit, offset int) (*dto.ProductTypeListResponse, error) {
	list, total, err := uc.repo.List(ctx, strings.TrimSpace(filter), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductTypeResponse, 0, len(list))
	for _, pt := range list {
		items = append(items, *toProductTypeResponse(pt))
	}
	return &dto.ProductTypeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un tipo de producto; ErrConflict si hay productos que lo usan.
func (uc *ProductTypeUseCase) Delete(ctx context.Context, id string) error {
	pt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pt == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductTypeResponse(pt *entity.ProductType) *dto.ProductTypeResponse {
	return &dto.ProductTypeResponse{
		ID:        pt.ID,
		Type:      pt.Type,
		TypeDesc:  pt.TypeDesc,
		CreatedAt: pt.CreatedAt,
		UpdatedAt: pt.UpdatedAt,
	}
}
