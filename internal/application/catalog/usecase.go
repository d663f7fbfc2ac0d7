// Package catalog contiene los casos de uso CRUD del catálogo de prendas.
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
	"github.com/Danielpnvs/usekaylla-api/internal/domain"
	domcatalog "github.com/Danielpnvs/usekaylla-api/internal/domain/catalog"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

// ClothingUseCase casos de uso CRUD para prendas. Los campos de precio
// derivados los calcula siempre el servidor (ver domain/catalog).
type ClothingUseCase struct {
	repo repository.ClothingRepository
}

// NewClothingUseCase construye el caso de uso.
func NewClothingUseCase(repo repository.ClothingRepository) *ClothingUseCase {
	return &ClothingUseCase{repo: repo}
}

// Create da de alta una prenda. El código debe ser único.
func (uc *ClothingUseCase) Create(ctx context.Context, session domain.Session, in dto.CreateClothingRequest) (*dto.ClothingResponse, error) {
	if session.IsViewer() {
		return nil, domain.ErrReadOnlyMode
	}
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.FreightPerUnit.IsNegative() || in.PackagingCost.IsNegative() ||
		in.ExtraCosts.IsNegative() || in.CreditFeePercent.IsNegative() || in.ProfitMarginPct.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	item := &entity.ClothingItem{
		ID:               uuid.New().String(),
		Code:             code,
		Name:             name,
		Description:      in.Description,
		Category:         in.Category,
		Brand:            in.Brand,
		Supplier:         in.Supplier,
		CostPrice:        in.CostPrice,
		FreightPerUnit:   in.FreightPerUnit,
		PackagingCost:    in.PackagingCost,
		ExtraCosts:       in.ExtraCosts,
		CreditFeePercent: in.CreditFeePercent,
		ProfitMarginPct:  in.ProfitMarginPct,
		Status:           entity.ClothingStatusAvailable,
		Variations:       toVariations(in.Variations),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	domcatalog.ComputePricing(item)

	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toClothingResponse(item), nil
}

// GetByID obtiene una prenda por ID.
func (uc *ClothingUseCase) GetByID(ctx context.Context, id string) (*dto.ClothingResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toClothingResponse(item), nil
}

// Update edita una prenda; los campos nil no cambian. Si cambia cualquier
// componente de costo se recalculan los derivados.
func (uc *ClothingUseCase) Update(ctx context.Context, session domain.Session, id string, in dto.UpdateClothingRequest) (*dto.ClothingResponse, error) {
	if session.IsViewer() {
		return nil, domain.ErrReadOnlyMode
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Brand != nil {
		item.Brand = *in.Brand
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.CostPrice != nil {
		item.CostPrice = *in.CostPrice
	}
	if in.FreightPerUnit != nil {
		item.FreightPerUnit = *in.FreightPerUnit
	}
	if in.PackagingCost != nil {
		item.PackagingCost = *in.PackagingCost
	}
	if in.ExtraCosts != nil {
		item.ExtraCosts = *in.ExtraCosts
	}
	if in.CreditFeePercent != nil {
		item.CreditFeePercent = *in.CreditFeePercent
	}
	if in.ProfitMarginPct != nil {
		item.ProfitMarginPct = *in.ProfitMarginPct
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.ClothingStatusAvailable, entity.ClothingStatusSoldOut, entity.ClothingStatusArchived:
			item.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Variations != nil {
		item.Variations = toVariations(in.Variations)
	}
	domcatalog.ComputePricing(item)
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toClothingResponse(item), nil
}

// List lista el catálogo con paginación.
func (uc *ClothingUseCase) List(ctx context.Context, limit, offset int) (*dto.ClothingListResponse, error) {
	items, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClothingResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toClothingResponse(item))
	}
	return &dto.ClothingListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una prenda por ID.
func (uc *ClothingUseCase) Delete(ctx context.Context, session domain.Session, id string) error {
	if session.IsViewer() {
		return domain.ErrReadOnlyMode
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toVariations(in []dto.VariationDTO) []entity.ClothingVariation {
	out := make([]entity.ClothingVariation, 0, len(in))
	for _, v := range in {
		id := v.ID
		if id == "" {
			id = uuid.New().String()
		}
		out = append(out, entity.ClothingVariation{
			ID:           id,
			Size:         v.Size,
			Color:        v.Color,
			Quantity:     v.Quantity,
			SoldQuantity: v.SoldQuantity,
		})
	}
	return out
}

func toClothingResponse(item *entity.ClothingItem) *dto.ClothingResponse {
	if item == nil {
		return nil
	}
	variations := make([]dto.VariationDTO, 0, len(item.Variations))
	for _, v := range item.Variations {
		variations = append(variations, dto.VariationDTO{
			ID:           v.ID,
			Size:         v.Size,
			Color:        v.Color,
			Quantity:     v.Quantity,
			SoldQuantity: v.SoldQuantity,
		})
	}
	return &dto.ClothingResponse{
		ID:               item.ID,
		Code:             item.Code,
		Name:             item.Name,
		Description:      item.Description,
		Category:         item.Category,
		Brand:            item.Brand,
		Supplier:         item.Supplier,
		CostPrice:        item.CostPrice,
		FreightPerUnit:   item.FreightPerUnit,
		PackagingCost:    item.PackagingCost,
		ExtraCosts:       item.ExtraCosts,
		CreditFeePercent: item.CreditFeePercent,
		ProfitMarginPct:  item.ProfitMarginPct,
		BaseCost:         item.BaseCost,
		CreditFeeAmount:  item.CreditFeeAmount,
		Profit:           item.Profit,
		SellingPrice:     item.SellingPrice,
		Status:           item.Status,
		TotalStock:       item.TotalStock(),
		Variations:       variations,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
