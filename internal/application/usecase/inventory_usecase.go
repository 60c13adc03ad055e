package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/domain"
	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

// InventoryUseCase registro y consulta de existencias por bodega.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create registra la existencia de un producto en una bodega. No actualiza filas existentes.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	inv := &entity.Inventory{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UpdatedAt:   now(),
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Get obtiene la fila de un producto en una bodega.
func (uc *InventoryUseCase) Get(ctx context.Context, productID, warehouseID int64) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.Get(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// ListByProduct lista la existencia del producto en todas las bodegas.
func (uc *InventoryUseCase) ListByProduct(ctx context.Context, productID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return items, nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:          inv.ID,
		ProductID:   inv.ProductID,
		WarehouseID: inv.WarehouseID,
		Quantity:    inv.Quantity,
		UpdatedAt:   inv.UpdatedAt,
	}
}
