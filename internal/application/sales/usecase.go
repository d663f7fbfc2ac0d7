// Package sales contiene los casos de uso del punto de venta: registro de
// ventas con descuento de stock transaccional y transiciones de estado.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
	"github.com/Danielpnvs/usekaylla-api/internal/domain"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

// RegisterSaleUseCase registra ventas de forma transaccional: valida las
// líneas contra el catálogo, descuenta stock de cada variación y persiste
// la venta en la misma transacción (Commit/Rollback vía TxRunner).
type RegisterSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, userRepo repository.UserRepository) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{txRunner: txRunner, saleRepo: saleRepo, userRepo: userRepo}
}

// RegisterSale valida y persiste una venta nueva.
//
// El precio unitario sale siempre del catálogo (SellingPrice), nunca del
// cliente. Descuento porcentual = subtotal × d/100; de valor fijo acotado
// al subtotal. Toda venta nace pagada salvo que se pida pendiente.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, session domain.Session, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if session.IsViewer() {
		return nil, domain.ErrReadOnlyMode
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ClothingItemID == "" || item.VariationID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if !entity.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	discountType := in.DiscountType
	if discountType == "" {
		discountType = entity.DiscountPercent
	}
	if discountType != entity.DiscountPercent && discountType != entity.DiscountFixed {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.SaleStatusPaid
	}
	if status != entity.SaleStatusPaid && status != entity.SaleStatusPending {
		return nil, domain.ErrInvalidInput
	}

	sellerName := ""
	if session.UserID != "" {
		if seller, err := uc.userRepo.GetByID(session.UserID); err == nil && seller != nil {
			sellerName = seller.Name
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		DiscountType:  discountType,
		PaymentMethod: in.PaymentMethod,
		Status:        status,
		Notes:         in.Notes,
		SellerID:      session.UserID,
		SellerName:    sellerName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		clothingRepo repository.ClothingRepository,
	) error {
		subtotal := decimal.Zero
		for _, line := range in.Items {
			item, err := clothingRepo.GetByID(line.ClothingItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			variation := item.FindVariation(line.VariationID)
			if variation == nil {
				return domain.ErrNotFound
			}
			if variation.Quantity < line.Quantity {
				return domain.ErrInsufficientStock
			}
			variation.Quantity -= line.Quantity
			variation.SoldQuantity += line.Quantity
			if item.TotalStock() == 0 {
				item.Status = entity.ClothingStatusSoldOut
			}
			item.UpdatedAt = now
			if err := clothingRepo.Update(item); err != nil {
				return err
			}

			qty := decimal.NewFromInt(int64(line.Quantity))
			lineTotal := item.SellingPrice.Mul(qty)
			subtotal = subtotal.Add(lineTotal)
			sale.Items = append(sale.Items, entity.SaleItem{
				ID:               uuid.New().String(),
				ClothingItemID:   item.ID,
				ClothingItemCode: item.Code,
				ClothingItemName: item.Name,
				VariationID:      variation.ID,
				Size:             variation.Size,
				Color:            variation.Color,
				Quantity:         line.Quantity,
				UnitPrice:        item.SellingPrice,
				TotalPrice:       lineTotal,
			})
		}

		discountValue := decimal.Zero
		if in.Discount.IsPositive() {
			if discountType == entity.DiscountPercent {
				discountValue = subtotal.Mul(in.Discount).Div(decimal.NewFromInt(100)).Round(2)
			} else {
				// El descuento fijo no puede superar el subtotal
				discountValue = decimal.Min(in.Discount, subtotal)
			}
		}
		total := subtotal.Sub(discountValue)
		if total.IsNegative() {
			total = decimal.Zero
		}
		sale.Subtotal = subtotal
		sale.Discount = discountValue
		sale.Total = total
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// UpdateStatus aplica una transición de estado: pending→paid, o
// pending/paid→cancelled. Cancelar devuelve el stock de cada variación en
// la misma transacción. Una venta cancelada es terminal.
func (uc *RegisterSaleUseCase) UpdateStatus(ctx context.Context, session domain.Session, id, status string) (*dto.SaleResponse, error) {
	if session.IsViewer() {
		return nil, domain.ErrReadOnlyMode
	}
	if status != entity.SaleStatusPaid && status != entity.SaleStatusCancelled {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Sale
	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		clothingRepo repository.ClothingRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Status == entity.SaleStatusCancelled || sale.Status == status {
			return domain.ErrInvalidInput
		}
		if status == entity.SaleStatusPaid && sale.Status != entity.SaleStatusPending {
			return domain.ErrInvalidInput
		}

		if status == entity.SaleStatusCancelled {
			if err := restoreStock(clothingRepo, sale); err != nil {
				return err
			}
		}
		sale.Status = status
		sale.UpdatedAt = time.Now()
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(updated), nil
}

// GetByID obtiene una venta por ID.
func (uc *RegisterSaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List devuelve todas las ventas ordenadas por fecha de creación descendente.
func (uc *RegisterSaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

// restoreStock devuelve al catálogo las cantidades de una venta cancelada.
func restoreStock(clothingRepo repository.ClothingRepository, sale *entity.Sale) error {
	now := time.Now()
	for _, line := range sale.Items {
		item, err := clothingRepo.GetByID(line.ClothingItemID)
		if err != nil {
			return err
		}
		if item == nil {
			// La prenda fue borrada del catálogo: no hay stock que devolver
			continue
		}
		variation := item.FindVariation(line.VariationID)
		if variation == nil {
			continue
		}
		variation.Quantity += line.Quantity
		if variation.SoldQuantity >= line.Quantity {
			variation.SoldQuantity -= line.Quantity
		}
		if item.Status == entity.ClothingStatusSoldOut && item.TotalStock() > 0 {
			item.Status = entity.ClothingStatusAvailable
		}
		item.UpdatedAt = now
		if err := clothingRepo.Update(item); err != nil {
			return err
		}
	}
	return nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ID:               it.ID,
			ClothingItemID:   it.ClothingItemID,
			ClothingItemCode: it.ClothingItemCode,
			ClothingItemName: it.ClothingItemName,
			VariationID:      it.VariationID,
			Size:             it.Size,
			Color:            it.Color,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			TotalPrice:       it.TotalPrice,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		Items:         items,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		DiscountType:  s.DiscountType,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		Notes:         s.Notes,
		SellerID:      s.SellerID,
		SellerName:    s.SellerName,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
