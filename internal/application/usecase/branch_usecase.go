package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/ledger"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// lookupLimit máximo de opciones del combo de sucursales.
const lookupLimit = 20

// BranchUseCase casos de uso CRUD para sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso. repo puede ser el decorador con caché.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create crea una nueva sucursal. El IVA se limita a [0,100].
func (uc *BranchUseCase) Create(ctx context.Context, userID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	now := time.Now()
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Code:      strings.TrimSpace(in.Code),
		Name:      strings.TrimSpace(in.Name),
		VatPerc:   ledger.ClampVATPerc(in.VatPerc),
		IsActive:  active,
		CreatedAt: now,
		CreatedBy: userID,
		UpdatedAt: now,
		UpdatedBy: userID,
	}
	if branch.Code == "" || branch.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(branch), nil
}

// Update actualiza una sucursal.
func (uc *BranchUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		branch.Code = strings.TrimSpace(*in.Code)
	}
	if in.Name != nil {
		branch.Name = strings.TrimSpace(*in.Name)
	}
	if in.VatPerc != nil {
		branch.VatPerc = ledger.ClampVATPerc(*in.VatPerc)
	}
	if in.IsActive != nil {
		branch.IsActive = *in.IsActive
	}
	if branch.Code == "" || branch.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	branch.UpdatedAt = time.Now()
	branch.UpdatedBy = userID
	if err := uc.repo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista sucursales con filtro opcional por nombre o código.
func (uc *BranchUseCase) List(ctx context.Context, filter string, limit, offset int) (*dto.BranchListResponse, error) {
	list, total, err := uc.repo.List(ctx, repository.BranchFilter{Filter: strings.TrimSpace(filter), Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Lookup sucursales activas que coinciden con filter, ordenadas por nombre.
func (uc *BranchUseCase) Lookup(ctx context.Context, filter string) ([]dto.BranchLookupItem, error) {
	list, _, err := uc.repo.List(ctx, repository.BranchFilter{
		Filter:     strings.TrimSpace(filter),
		OnlyActive: true,
		Limit:      lookupLimit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchLookupItem, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BranchLookupItem{ID: b.ID, DisplayName: b.DisplayName()})
	}
	return out, nil
}

// Delete elimina una sucursal; ErrConflict si tiene movimientos.
func (uc *BranchUseCase) Delete(ctx context.Context, id string) error {
	branch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:          b.ID,
		Code:        b.Code,
		Name:        b.Name,
		DisplayName: b.DisplayName(),
		VatPerc:     b.VatPerc,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
