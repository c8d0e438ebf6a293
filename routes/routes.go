package routes

import (
	"github.com/gofiber/fiber/v2"

	"vendorflow-backend/controllers"
)

// Deps carries the constructed handlers and gate middleware; routes never
// reach for globals.
type Deps struct {
	Vendors *controllers.VendorController
	Admin   *controllers.AdminController

	// AdminAuth guards every admin route.
	AdminAuth fiber.Handler
	// Idempotency optionally wraps the public submission endpoint.
	Idempotency fiber.Handler
}

// Register wires all HTTP routes.
func Register(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	// Public vendor submission
	submit := []fiber.Handler{}
	if deps.Idempotency != nil {
		submit = append(submit, deps.Idempotency)
	}
	submit = append(submit, deps.Vendors.SubmitVendor)
	api.Post("/vendors", submit...)

	// Admin review workflow (basic auth)
	admin := api.Group("/admin", deps.AdminAuth)
	admin.Get("/vendors", deps.Admin.GetVendors)
	admin.Get("/vendors/:id", deps.Admin.GetVendor)
	admin.Post("/vendors/:id/approve", deps.Admin.ApproveVendor)
	admin.Get("/export/csv", deps.Admin.ExportCSV)

	// Admin dashboard page (basic auth)
	app.Get("/admin", deps.AdminAuth, deps.Admin.Dashboard)
}
