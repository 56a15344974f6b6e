package model

import "time"

type Order struct {
	UUID        string    `db:"uuid" json:"id"`
	UserUUID    string    `db:"user_uuid" json:"userId"`
	TotalAmount float64   `db:"total_amount" json:"totalAmount"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// AnalyticsData : сводные показатели магазина
type AnalyticsData struct {
	TotalUsers    int     `db:"total_users" json:"users"`
	TotalProducts int     `db:"total_products" json:"products"`
	TotalSales    int     `db:"total_sales" json:"totalSales"`
	TotalRevenue  float64 `db:"total_revenue" json:"totalRevenue"`
}

// DailySales : продажи и выручка за один день
type DailySales struct {
	Date    string  `db:"date" json:"date"`
	Sales   int     `db:"sales" json:"sales"`
	Revenue float64 `db:"revenue" json:"revenue"`
}
