package handler

import (
	"github.com/EnmaSantos/office-snack-app/internal/middleware"
	"github.com/EnmaSantos/office-snack-app/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	Auth         *AuthHandler
	Snack        *SnackHandler
	Checkout     *CheckoutHandler
	Ledger       *LedgerHandler
	Transaction  *TransactionHandler
	SnackRequest *SnackRequestHandler
	User         *UserHandler
	Dashboard    *DashboardHandler
	ShoppingList *ShoppingListHandler
}

// RegisterRoutes mounts the versioned API on app. requireAuth must store the
// caller identity the way middleware.RequireAuth does.
func RegisterRoutes(app *fiber.App, h *Handlers, requireAuth fiber.Handler) {
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/validate-token", h.Auth.ValidateToken)
	auth.Post("/signout", h.Auth.SignOut)

	api.Get("/snacks", h.Snack.GetSnacks)
	api.Get("/snacks/:id", h.Snack.GetSnack)

	// ============ AUTHENTICATED ROUTES ============
	// Auth is attached per route so unknown paths still fall through to 404.
	api.Get("/me", requireAuth, h.User.GetMe)
	api.Post("/checkout", requireAuth, h.Checkout.Checkout)
	api.Post("/add-balance", requireAuth, h.Ledger.AddBalance)
	api.Get("/transactions", requireAuth, h.Transaction.GetMyTransactions)
	api.Post("/snack-requests", requireAuth, h.SnackRequest.CreateRequest)

	// ============ ADMIN ROUTES ============
	admin := middleware.RequireAdmin()

	api.Post("/snacks", requireAuth, admin, h.Snack.CreateSnack)
	api.Put("/snacks/:id", requireAuth, admin, h.Snack.UpdateSnack)
	api.Delete("/snacks/:id", requireAuth, admin, h.Snack.DeleteSnack)
	api.Get("/admin/snacks", requireAuth, admin, h.Snack.GetAllSnacks)

	api.Post("/adjust-balance", requireAuth, admin, h.Ledger.AdjustBalance)
	api.Post("/toggle-admin-status", requireAuth, admin, h.Ledger.ToggleAdminStatus)

	api.Get("/users", requireAuth, admin, h.User.GetUsers)
	api.Get("/users/:id/reconciliation", requireAuth, admin, h.Ledger.Reconcile)

	api.Get("/user-transactions/:id", requireAuth, admin, h.Transaction.GetUserTransactions)
	api.Get("/all-transactions", requireAuth, admin, h.Transaction.GetAllTransactions)

	api.Get("/snack-requests", requireAuth, admin, h.SnackRequest.GetRequests)
	api.Put("/snack-requests/:id", requireAuth, admin, h.SnackRequest.UpdateRequest)
	api.Delete("/snack-requests/:id", requireAuth, admin, h.SnackRequest.DeleteRequest)

	api.Get("/shopping-list/suggestions", requireAuth, admin, h.ShoppingList.GetSuggestions)
	api.Post("/shopping-list", requireAuth, admin, h.ShoppingList.Compile)

	api.Get("/dashboard/stats", requireAuth, admin, h.Dashboard.GetDashboardStats)
	api.Get("/dashboard/sales", requireAuth, admin, h.Dashboard.GetSales)

	api.Use(func(c *fiber.Ctx) error {
		return fail(c, fiber.StatusNotFound, "route not found")
	})
}

// RegisterWebSocket exposes the hub's event stream on /ws.
func RegisterWebSocket(app *fiber.App, hub *ws.Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		if !hub.Attach(c) {
			return
		}
		defer hub.Detach(c)

		for {
			// Clients only listen; reading detects the close.
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
