package repository

import (
	"time"

	"github.com/EnmaSantos/office-snack-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LowStockThreshold marks snacks that need restocking on the dashboard.
const LowStockThreshold = 3

type TransactionRepository interface {
	Create(tx *gorm.DB, transactions ...*model.Transaction) error
	FindViewsByUser(userID uuid.UUID) ([]model.TransactionView, error)
	FindAllViews() ([]model.TransactionView, error)
	SumByUser(userID uuid.UUID) (decimal.Decimal, error)
	GetDailySales(startDate, endDate time.Time) ([]DailySalesData, error)
	GetDashboardStats() (*DashboardStats, error)
}

// DailySalesData is one day of purchases for the sales chart.
type DailySalesData struct {
	Date    string          `json:"date"`
	Units   int             `json:"units"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardStats feeds the admin overview cards.
type DashboardStats struct {
	TotalSnacks        int64           `json:"total_snacks"`
	AvailableSnacks    int64           `json:"available_snacks"`
	LowStockCount      int64           `json:"low_stock_count"`
	StockValuation     decimal.Decimal `json:"stock_valuation"`
	TotalUsers         int64           `json:"total_users"`
	TotalBalance       decimal.Decimal `json:"total_balance"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	PendingRequests    int64           `json:"pending_requests"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *gorm.DB, transactions ...*model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	return tx.Create(transactions).Error
}

// viewQuery joins the live user and snack rows, including soft-deleted snacks.
func (r *transactionRepo) viewQuery() *gorm.DB {
	return r.db.Table("transactions AS t").
		Select(`t.id, t.user_id, u.email AS user_email, u.display_name AS user_display_name,
			t.snack_id, s.name AS snack_name, s.price AS snack_price, s.image_url AS snack_image_url,
			t.amount, t.kind, t.created_at`).
		Joins("JOIN users AS u ON u.id = t.user_id").
		Joins("LEFT JOIN snacks AS s ON s.id = t.snack_id").
		Order("t.created_at DESC").
		Order("t.id ASC")
}

func (r *transactionRepo) FindViewsByUser(userID uuid.UUID) ([]model.TransactionView, error) {
	views := []model.TransactionView{}
	err := r.viewQuery().Where("t.user_id = ?", userID).Scan(&views).Error
	return views, err
}

func (r *transactionRepo) FindAllViews() ([]model.TransactionView, error) {
	views := []model.TransactionView{}
	err := r.viewQuery().Scan(&views).Error
	return views, err
}

func (r *transactionRepo) SumByUser(userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Row().Scan(&sum)
	return sum.Round(2), err
}

func (r *transactionRepo) GetDailySales(startDate, endDate time.Time) ([]DailySalesData, error) {
	results := []DailySalesData{}

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(created_at) as date,
			COUNT(*) as units,
			COALESCE(SUM(-amount), 0) as revenue
		`).
		Where("kind = ? AND created_at BETWEEN ? AND ?", model.TxPurchase, startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data DailySalesData
		if err := rows.Scan(&data.Date, &data.Units, &data.Revenue); err != nil {
			return nil, err
		}
		if len(data.Date) > 10 {
			data.Date = data.Date[:10]
		}
		data.Revenue = data.Revenue.Round(2)
		results = append(results, data)
	}

	return results, rows.Err()
}

func (r *transactionRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Snack{}).Count(&stats.TotalSnacks).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Snack{}).Where("is_available = ?", true).Count(&stats.AvailableSnacks).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Snack{}).
		Where("is_available = ? AND stock < ?", true, LowStockThreshold).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Snack{}).
		Select("COALESCE(SUM(stock * price), 0)").
		Row().Scan(&stats.StockValuation); err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.User{}).
		Select("COALESCE(SUM(balance), 0)").
		Row().Scan(&stats.TotalBalance); err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.User{}).
		Select("COALESCE(SUM(-balance), 0)").
		Where("balance < 0").
		Row().Scan(&stats.OutstandingBalance); err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.SnackRequest{}).
		Where("status = ?", model.RequestPending).
		Count(&stats.PendingRequests).Error; err != nil {
		return nil, err
	}

	stats.StockValuation = stats.StockValuation.Round(2)
	stats.TotalBalance = stats.TotalBalance.Round(2)
	stats.OutstandingBalance = stats.OutstandingBalance.Round(2)
	return &stats, nil
}
