package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas de la venta se guardan como jsonb en la misma fila.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	query := `
		INSERT INTO sales (id, items, subtotal, discount, discount_type, total, payment_method, status, notes, seller_id, seller_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		s.ID, items, s.Subtotal, s.Discount, s.DiscountType, s.Total,
		s.PaymentMethod, s.Status, s.Notes, s.SellerID, s.SellerName,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, items, subtotal, discount, discount_type, total, payment_method, status, notes, seller_id, seller_name, created_at, updated_at
		FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Update actualiza una venta existente.
func (r *SaleRepo) Update(s *entity.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	query := `
		UPDATE sales SET items = $2, subtotal = $3, discount = $4, discount_type = $5, total = $6,
			payment_method = $7, status = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		s.ID, items, s.Subtotal, s.Discount, s.DiscountType, s.Total,
		s.PaymentMethod, s.Status, s.Notes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// List devuelve todas las ventas ordenadas por fecha de creación descendente.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	query := `
		SELECT id, items, subtotal, discount, discount_type, total, payment_method, status, notes, seller_id, seller_name, created_at, updated_at
		FROM sales ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var items []byte
	err := row.Scan(
		&s.ID, &items, &s.Subtotal, &s.Discount, &s.DiscountType, &s.Total,
		&s.PaymentMethod, &s.Status, &s.Notes, &s.SellerID, &s.SellerName,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal sale items: %w", err)
		}
	}
	return &s, nil
}
