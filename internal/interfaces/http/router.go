package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joansel25/farmacia-api/internal/application/auth"
	"github.com/joansel25/farmacia-api/internal/application/inventory"
	"github.com/joansel25/farmacia-api/internal/application/reports"
	"github.com/joansel25/farmacia-api/internal/application/sales"
	"github.com/joansel25/farmacia-api/internal/application/usecase"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	EmployeeUC *usecase.EmployeeUseCase
	MovementUC *inventory.MovementUseCase
	InvoiceUC  *sales.InvoiceUseCase
	ReportUC   *reports.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todas las rutas de negocio van detrás
// del Bearer Token; el acceso por recurso se restringe por rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	admin := RequireRole(entity.RoleAdmin)
	staff := RequireRole(entity.RoleAdmin, entity.RoleEmployee)
	reportHandler := NewReportHandler(deps.ReportUC)

	// Categorías (solo administrador)
	categories := protected.Group("/categorias", admin)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Productos (administrador y empleado). /pdf va antes de /:id para que
	// Fiber no lo capture como parámetro.
	products := protected.Group("/productos", staff)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/pdf", reportHandler.ProductsPDF)
	products.Get("/:id/pdf", reportHandler.ProductPDF)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Proveedores (administrador y proveedor)
	suppliers := protected.Group("/proveedores", RequireRole(entity.RoleAdmin, entity.RoleProvider))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Clientes (administrador, empleado y cliente)
	clients := protected.Group("/clientes", RequireRole(entity.RoleAdmin, entity.RoleEmployee, entity.RoleClient))
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Empleados (solo administrador)
	employees := protected.Group("/empleados", admin)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Facturas de venta y sus detalles (administrador y empleado)
	invoices := protected.Group("/facturas", staff)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id/pdf", reportHandler.InvoicePDF)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/detalles", invoiceHandler.AddDetail)

	details := protected.Group("/detalles", staff)
	details.Put("/:id", invoiceHandler.UpdateDetail)
	details.Delete("/:id", invoiceHandler.DeleteDetail)

	// Movimientos de inventario (administrador y empleado)
	movements := protected.Group("/movimientos", staff)
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Get("/pdf", reportHandler.MovementsPDF)
	movements.Get("/:id/pdf", reportHandler.MovementPDF)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Delete("/:id", movementHandler.Delete)
}
