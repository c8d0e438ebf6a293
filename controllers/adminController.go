package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vendorflow-backend/models"
	"vendorflow-backend/utils"
)

type AdminController struct {
	vendors   VendorStore
	publicDir string
}

func NewAdminController(vendors VendorStore, publicDir string) *AdminController {
	return &AdminController{vendors: vendors, publicDir: publicDir}
}

// GET /api/admin/vendors
func (ct *AdminController) GetVendors(c *fiber.Ctx) error {
	vendors, err := ct.vendors.ListAll()
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error fetching vendors",
			"error":   err.Error(),
		})
	}
	if vendors == nil {
		vendors = []models.Vendor{}
	}
	return c.JSON(fiber.Map{
		"success": true,
		"vendors": vendors,
	})
}

// GET /api/admin/vendors/:id
func (ct *AdminController) GetVendor(c *fiber.Ctx) error {
	id, err := vendorID(c)
	if err != nil {
		return err
	}

	vendor, err := ct.vendors.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Vendor not found",
		})
	}
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error fetching vendor",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"vendor":  vendor,
	})
}

// POST /api/admin/vendors/:id/approve
func (ct *AdminController) ApproveVendor(c *fiber.Ctx) error {
	id, err := vendorID(c)
	if err != nil {
		return err
	}

	// Set by the basic-auth gate; recorded as approved_by.
	approver, _ := c.Locals("username").(string)

	vendor, err := ct.vendors.Approve(id, approver)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Vendor not found",
		})
	}
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error approving vendor",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Vendor approved",
		"vendor":  vendor,
	})
}

// GET /api/admin/export/csv
func (ct *AdminController) ExportCSV(c *fiber.Ctx) error {
	vendors, err := ct.vendors.ListAll()
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error exporting CSV",
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=vendors-%d.csv", time.Now().UnixMilli()))
	return c.Send(utils.VendorsCSV(vendors))
}

// GET /admin
func (ct *AdminController) Dashboard(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(ct.publicDir, "admin.html"))
}

func vendorID(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid vendor id")
	}
	return uint(id), nil
}
