package repository

import (
	"context"
	"time"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/util"

	"github.com/jmoiron/sqlx"
)

type OrderRepository struct {
	*config.Database
}

func NewOrderRepository(database *config.Database) *OrderRepository {
	return &OrderRepository{database}
}

// GetAnalyticsData : сводные показатели по пользователям, товарам и заказам
func (r *OrderRepository) GetAnalyticsData(ctx context.Context) (*model.AnalyticsData, error) {
	query := `
	SELECT
		(SELECT COUNT(*) FROM users)    AS total_users,
		(SELECT COUNT(*) FROM products) AS total_products,
		COUNT(o.uuid)                   AS total_sales,
		COALESCE(SUM(o.total_amount), 0) AS total_revenue
	FROM orders o
	`

	data := &model.AnalyticsData{}
	if err := sqlx.GetContext(ctx, r.DB, data, query); err != nil {
		return nil, util.LogError("[OrderRepo] не удалось получить сводную аналитику", err)
	}

	return data, nil
}

// GetDailySales : продажи и выручка по дням за заданный период
func (r *OrderRepository) GetDailySales(ctx context.Context, startDate, endDate time.Time) ([]model.DailySales, error) {
	query := `
	SELECT
		to_char(created_at::date, 'YYYY-MM-DD') AS date,
		COUNT(uuid)                             AS sales,
		COALESCE(SUM(total_amount), 0)          AS revenue
	FROM orders
	WHERE created_at >= $1 AND created_at < $2
	GROUP BY created_at::date
	ORDER BY created_at::date
	`

	var sales []model.DailySales
	if err := sqlx.SelectContext(ctx, r.DB, &sales, query, startDate, endDate); err != nil {
		return nil, util.LogError("[OrderRepo] не удалось получить продажи по дням", err)
	}

	return sales, nil
}
