package model

import "time"

// DailyMetric is one point of a dashboard time series.
type DailyMetric struct {
	Day   time.Time `json:"day" yaml:"day"`
	Value float64   `json:"value" yaml:"value"`
}

// Overview aggregates the numbers shown on the dashboard landing page.
type Overview struct {
	TotalOrders      int            `json:"total_orders" yaml:"total_orders"`
	ActiveOrders     int            `json:"active_orders" yaml:"active_orders"`
	TotalRevenue     float64        `json:"total_revenue" yaml:"total_revenue"`
	TotalUsers       int            `json:"total_users" yaml:"total_users"`
	TotalRestaurants int            `json:"total_restaurants" yaml:"total_restaurants"`
	ActivePartners   int            `json:"active_partners" yaml:"active_partners"`
	OpenTickets      int            `json:"open_tickets" yaml:"open_tickets"`
	OrdersByDay      []DailyMetric  `json:"orders_by_day" yaml:"orders_by_day"`
	RevenueByDay     []DailyMetric  `json:"revenue_by_day" yaml:"revenue_by_day"`
	OrdersByStatus   map[string]int `json:"orders_by_status" yaml:"orders_by_status"`
}
