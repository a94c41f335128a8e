package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

func TestListCoupons(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"coupon_code", "discount_percent", "name", "description", "category"}).
		AddRow("FLASH50", 50, "Flash Sale", "Limited time flash offer", "Flash").
		AddRow("staff15", 15, "Staff", nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM coupons")).WillReturnRows(rows)

	got, err := NewCouponRepo(db).ListCoupons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Coupon{
		{Code: "FLASH50", Percent: 50, Name: "Flash Sale", Description: "Limited time flash offer", Category: "Flash"},
		{Code: "staff15", Percent: 15, Name: "Staff"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCoupons_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT").WillReturnError(boom)

	_, err = NewCouponRepo(db).ListCoupons(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestListCoupons_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"coupon_code", "discount_percent", "name", "description", "category"}).
		AddRow("X", "not-a-number", "X", nil, nil)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err = NewCouponRepo(db).ListCoupons(context.Background())
	assert.Error(t, err)
}
