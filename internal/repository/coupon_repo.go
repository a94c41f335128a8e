package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

// CouponRepo reads the coupon table. It is consulted once at startup; the
// resolver built from its rows is immutable afterwards.
type CouponRepo struct {
	db *sql.DB
}

func NewCouponRepo(db *sql.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

const listCouponsQuery = `
	SELECT coupon_code, discount_percent, name, description, category
	FROM coupons
	WHERE active
	ORDER BY coupon_code
`

func (r *CouponRepo) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	rows, err := r.db.QueryContext(ctx, listCouponsQuery)
	if err != nil {
		return nil, fmt.Errorf("query coupons: %w", err)
	}
	defer rows.Close()

	var coupons []models.Coupon
	for rows.Next() {
		var c models.Coupon
		var desc, category sql.NullString
		if err := rows.Scan(&c.Code, &c.Percent, &c.Name, &desc, &category); err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		c.Description = desc.String
		c.Category = category.String
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coupons: %w", err)
	}
	return coupons, nil
}
