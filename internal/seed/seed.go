// Package seed fills an empty database with the default catalog and a test
// account for local development.
package seed

import (
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/shopspring/decimal"
)

const (
	TestUserEmail   = "test.user@byui.edu"
	TestUserBalance = "5.00"
	defaultStock    = 10
)

var defaultSnacks = []struct {
	name  string
	price string
}{
	{"Assorted Nuts", "0.50"},
	{"Chips (Frito, Dorito, Ruffles, Cheetos)", "0.50"},
	{"Chocolate Candy Bars (Kinder, M&M, Twix, M&M)", "0.50"},
	{"Corn Dogs", "1.00"},
	{"Granola Bars", "0.25"},
	{"Gummy Bears", "0.25"},
	{"Hot Pockets", "0.25"},
	{"Jerkey Sticks", "0.75"},
	{"Monster Energy Drinks", "1.25"},
	{"Oatmeal", "0.25"},
	{"Oreos, Chips Ahoy, Nilla Wafers", "0.50"},
	{"Popcorn", "0.35"},
	{"Pretzels & Goldfish", "0.00"},
	{"Protein Bars", "1.50"},
	{"Ramen", "0.25"},
	{"Rice Krispy", "0.50"},
	{"String Cheese", "0.25"},
	{"Velveeta Mac n Cheese", "0.00"},
}

// system acts for seeding; its zero UserID is recorded as "system".
var system = model.Identity{DisplayName: "system", IsAdmin: true}

type Seeder struct {
	catalog service.CatalogService
	auth    service.AuthService
	ledger  service.LedgerService
	log     *slog.Logger
}

func New(catalog service.CatalogService, auth service.AuthService, ledger service.LedgerService, log *slog.Logger) *Seeder {
	return &Seeder{catalog: catalog, auth: auth, ledger: ledger, log: log}
}

// Run seeds only when the catalog is empty, so restarts are no-ops.
func (s *Seeder) Run() error {
	existing, err := s.catalog.ListAll(system)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.log.Debug("Catalog already populated, skipping seed", "snacks", len(existing))
		return nil
	}

	available := true
	for _, item := range defaultSnacks {
		input := &service.SnackInput{
			Name:        item.name,
			Price:       decimal.RequireFromString(item.price),
			Stock:       defaultStock,
			IsAvailable: &available,
		}
		if _, err := s.catalog.CreateSnack(system, input); err != nil {
			return err
		}
	}
	s.log.Info("Seeded default snacks", "count", len(defaultSnacks))

	user, err := s.auth.EnsureUser(&service.EnsureUserInput{Email: TestUserEmail, DisplayName: "Test User"})
	if err != nil {
		s.log.Warn("Skipping test user", "email", TestUserEmail, "error", err)
		return nil
	}
	if _, err := s.ledger.AdjustBalance(system, &service.AdjustBalanceInput{
		UserID: user.ID,
		Amount: decimal.RequireFromString(TestUserBalance),
	}); err != nil {
		return err
	}
	s.log.Info("Seeded test user", "email", TestUserEmail, "balance", TestUserBalance)
	return nil
}
