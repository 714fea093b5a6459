package service

import (
	"time"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"
)

const (
	defaultSalesDays = 7
	maxSalesDays     = 90
)

type DashboardService interface {
	GetDailySales(caller model.Identity, days int) ([]repository.DailySalesData, error)
	GetDashboardStats(caller model.Identity) (*repository.DashboardStats, error)
}

type dashboardService struct {
	txRepo repository.TransactionRepository
}

func NewDashboardService(txRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{txRepo: txRepo}
}

func (s *dashboardService) GetDailySales(caller model.Identity, days int) ([]repository.DailySalesData, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = defaultSalesDays
	}
	if days > maxSalesDays {
		days = maxSalesDays
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -days)
	return s.txRepo.GetDailySales(startDate, endDate)
}

func (s *dashboardService) GetDashboardStats(caller model.Identity) (*repository.DashboardStats, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.txRepo.GetDashboardStats()
}
