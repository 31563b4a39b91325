package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se guarda en el
// producto: se calcula desde el libro de movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	typeRepo repository.ProductTypeRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, typeRepo repository.ProductTypeRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, typeRepo: typeRepo}
}

// Create crea un nuevo producto. Sin ProductNo se asigna "P-{n}".
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validatePrices(in.BuyingUnitPrice, in.SellingUnitPrice); err != nil {
		return nil, err
	}
	pt, err := uc.productType(ctx, in.ProductTypeID)
	if err != nil {
		return nil, err
	}
	if in.UoM == "" {
		in.UoM = entity.UoMPiece
	}
	if !entity.ValidUoM(in.UoM) {
		return nil, domain.ErrInvalidInput
	}
	no := strings.TrimSpace(in.ProductNo)
	if no == "" {
		if no, err = uc.repo.NextProductNo(ctx); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		ProductNo:        no,
		ProductName:      strings.TrimSpace(in.ProductName),
		ProductDesc:      in.ProductDesc,
		ImageURL:         in.ImageURL,
		BuyingUnitPrice:  in.BuyingUnitPrice,
		SellingUnitPrice: in.SellingUnitPrice,
		UoM:              in.UoM,
		ProductTypeID:    pt.ID,
		CreatedAt:        now,
		CreatedBy:        userID,
		UpdatedAt:        now,
		UpdatedBy:        userID,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, pt.Type), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	pt, err := uc.typeRepo.GetByID(ctx, product.ProductTypeID)
	if err != nil {
		return nil, err
	}
	name := ""
	if pt != nil {
		name = pt.Type
	}
	return toProductResponse(product, name), nil
}

// Update actualiza un producto. Los movimientos ya registrados conservan sus precios.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductNo != nil {
		product.ProductNo = strings.TrimSpace(*in.ProductNo)
	}
	if in.ProductName != nil {
		product.ProductName = strings.TrimSpace(*in.ProductName)
	}
	if in.ProductDesc != nil {
		product.ProductDesc = *in.ProductDesc
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.BuyingUnitPrice != nil {
		product.BuyingUnitPrice = *in.BuyingUnitPrice
	}
	if in.SellingUnitPrice != nil {
		product.SellingUnitPrice = *in.SellingUnitPrice
	}
	if in.UoM != nil {
		if !entity.ValidUoM(*in.UoM) {
			return nil, domain.ErrInvalidInput
		}
		product.UoM = *in.UoM
	}
	if in.ProductTypeID != nil {
		product.ProductTypeID = *in.ProductTypeID
	}
	if err := validatePrices(product.BuyingUnitPrice, product.SellingUnitPrice); err != nil {
		return nil, err
	}
	if product.ProductNo == "" {
		return nil, domain.ErrInvalidInput
	}
	pt, err := uc.productType(ctx, product.ProductTypeID)
	if err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	product.UpdatedBy = userID
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, pt.Type), nil
}

// List lista productos filtrando por texto (número o nombre) y tipo.
func (uc *ProductUseCase) List(ctx context.Context, filter, productTypeID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		Filter:        strings.TrimSpace(filter),
		ProductTypeID: productTypeID,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, err
	}
	typeIDs := make([]string, 0, len(list))
	for _, p := range list {
		typeIDs = append(typeIDs, p.ProductTypeID)
	}
	names := map[string]string{}
	if len(typeIDs) > 0 {
		types, err := uc.typeRepo.GetByIDs(ctx, typeIDs)
		if err != nil {
			return nil, err
		}
		for _, t := range types {
			names[t.ID] = t.Type
		}
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, names[p.ProductTypeID]))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un producto; ErrConflict si tiene movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) productType(ctx context.Context, id string) (*entity.ProductType, error) {
	pt, err := uc.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, fmt.Errorf("%w: tipo de producto %s", domain.ErrNotFound, id)
	}
	return pt, nil
}

func validatePrices(buying, selling decimal.Decimal) error {
	if buying.IsNegative() || selling.IsNegative() {
		return domain.ErrPriceInvalid
	}
	return nil
}

func toProductResponse(p *entity.Product, typeName string) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		ProductNo:        p.ProductNo,
		ProductName:      p.ProductName,
		ProductDesc:      p.ProductDesc,
		ImageURL:         p.ImageURL,
		BuyingUnitPrice:  p.BuyingUnitPrice,
		SellingUnitPrice: p.SellingUnitPrice,
		UoM:              p.UoM,
		ProductTypeID:    p.ProductTypeID,
		ProductTypeName:  typeName,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
