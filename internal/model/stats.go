package model

import (
	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalVehicles     int             `json:"totalVehicles" db:"total_vehicles"`
	AvailableVehicles int             `json:"availableVehicles" db:"available_vehicles"`
	TotalCustomers    int             `json:"totalCustomers" db:"total_customers"`
	ActiveBookings    int             `json:"activeBookings" db:"active_bookings"`
	PendingBookings   int             `json:"pendingBookings" db:"pending_bookings"`
	OverdueBookings   int             `json:"overdueBookings" db:"overdue_bookings"`
	MonthRevenue      decimal.Decimal `json:"monthRevenue" db:"month_revenue"`
}
