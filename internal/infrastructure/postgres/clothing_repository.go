package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Danielpnvs/usekaylla-api/internal/domain"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

var _ repository.ClothingRepository = (*ClothingRepo)(nil)

const clothingColumns = `id, code, name, description, category, brand, supplier,
	cost_price, freight_per_unit, packaging_cost, extra_costs, credit_fee_percent, profit_margin_pct,
	base_cost, credit_fee_amount, profit, selling_price, status, variations, created_at, updated_at`

// ClothingRepo implementación del puerto ClothingRepository sobre PostgreSQL (usable con pool o tx).
// Las variaciones talla/color se guardan como jsonb en la misma fila.
type ClothingRepo struct {
	q Querier
}

// NewClothingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClothingRepository(q Querier) *ClothingRepo {
	return &ClothingRepo{q: q}
}

// Create persiste una nueva prenda. El código debe ser único.
func (r *ClothingRepo) Create(item *entity.ClothingItem) error {
	variations, err := json.Marshal(item.Variations)
	if err != nil {
		return fmt.Errorf("marshal variations: %w", err)
	}
	query := `
		INSERT INTO clothing_items (` + clothingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Description, item.Category, item.Brand, item.Supplier,
		item.CostPrice, item.FreightPerUnit, item.PackagingCost, item.ExtraCosts,
		item.CreditFeePercent, item.ProfitMarginPct,
		item.BaseCost, item.CreditFeeAmount, item.Profit, item.SellingPrice,
		item.Status, variations, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert clothing item: %w", err)
	}
	return nil
}

// GetByID obtiene una prenda por ID.
func (r *ClothingRepo) GetByID(id string) (*entity.ClothingItem, error) {
	query := `SELECT ` + clothingColumns + ` FROM clothing_items WHERE id = $1`
	item, err := scanClothing(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get clothing item: %w", err)
	}
	return item, nil
}

// GetByCode obtiene una prenda por su código único.
func (r *ClothingRepo) GetByCode(code string) (*entity.ClothingItem, error) {
	query := `SELECT ` + clothingColumns + ` FROM clothing_items WHERE code = $1`
	item, err := scanClothing(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get clothing item by code: %w", err)
	}
	return item, nil
}

// Update actualiza una prenda existente.
func (r *ClothingRepo) Update(item *entity.ClothingItem) error {
	variations, err := json.Marshal(item.Variations)
	if err != nil {
		return fmt.Errorf("marshal variations: %w", err)
	}
	query := `
		UPDATE clothing_items SET name = $2, description = $3, category = $4, brand = $5, supplier = $6,
			cost_price = $7, freight_per_unit = $8, packaging_cost = $9, extra_costs = $10,
			credit_fee_percent = $11, profit_margin_pct = $12,
			base_cost = $13, credit_fee_amount = $14, profit = $15, selling_price = $16,
			status = $17, variations = $18, updated_at = $19
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.Brand, item.Supplier,
		item.CostPrice, item.FreightPerUnit, item.PackagingCost, item.ExtraCosts,
		item.CreditFeePercent, item.ProfitMarginPct,
		item.BaseCost, item.CreditFeeAmount, item.Profit, item.SellingPrice,
		item.Status, variations, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update clothing item: %w", err)
	}
	return nil
}

// Delete elimina una prenda por ID.
func (r *ClothingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clothing_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete clothing item: %w", err)
	}
	return nil
}

// List lista el catálogo con paginación, más reciente primero.
func (r *ClothingRepo) List(limit, offset int) ([]*entity.ClothingItem, error) {
	query := `SELECT ` + clothingColumns + ` FROM clothing_items ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListAll devuelve el catálogo completo (para la derivación del flujo de caja).
func (r *ClothingRepo) ListAll() ([]*entity.ClothingItem, error) {
	query := `SELECT ` + clothingColumns + ` FROM clothing_items ORDER BY created_at DESC`
	return r.queryMany(query)
}

func (r *ClothingRepo) queryMany(query string, args ...any) ([]*entity.ClothingItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clothing items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClothingItem
	for rows.Next() {
		item, err := scanClothing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan clothing item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanClothing(row pgx.Row) (*entity.ClothingItem, error) {
	var item entity.ClothingItem
	var variations []byte
	err := row.Scan(
		&item.ID, &item.Code, &item.Name, &item.Description, &item.Category, &item.Brand, &item.Supplier,
		&item.CostPrice, &item.FreightPerUnit, &item.PackagingCost, &item.ExtraCosts,
		&item.CreditFeePercent, &item.ProfitMarginPct,
		&item.BaseCost, &item.CreditFeeAmount, &item.Profit, &item.SellingPrice,
		&item.Status, &variations, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(variations) > 0 {
		if err := json.Unmarshal(variations, &item.Variations); err != nil {
			return nil, fmt.Errorf("unmarshal variations: %w", err)
		}
	}
	return &item, nil
}
