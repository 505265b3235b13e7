package server

import (
	"marketplace-backend/internal/handler"
	custommw "marketplace-backend/internal/middleware"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	adminHandler    *handler.AdminHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	returnHandler   *handler.ReturnHandler
	addressHandler  *handler.AddressHandler
	paymentHandler  *handler.PaymentHandler
}

type Services struct {
	Auth        service.AuthService
	User        service.UserService
	SellerAdmin service.SellerAdminService
	Category    service.CategoryService
	Product     service.ProductService
	Checkout    service.CheckoutService
	Order       service.OrderService
	Return      service.ReturnService
	Address     service.AddressService
	Payment     service.PaymentService
}

func NewServer(svcs Services, jwtSecret, uploadDir string) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(custommw.JWT(jwtSecret))

	e.Static("/uploads", uploadDir)

	s := &Server{
		echo:            e,
		authHandler:     handler.NewAuthHandler(svcs.Auth),
		userHandler:     handler.NewUserHandler(svcs.User),
		adminHandler:    handler.NewAdminHandler(svcs.User, svcs.SellerAdmin),
		categoryHandler: handler.NewCategoryHandler(svcs.Category),
		productHandler:  handler.NewProductHandler(svcs.Product),
		checkoutHandler: handler.NewCheckoutHandler(svcs.Checkout),
		orderHandler:    handler.NewOrderHandler(svcs.Order),
		returnHandler:   handler.NewReturnHandler(svcs.Return),
		addressHandler:  handler.NewAddressHandler(svcs.Address),
		paymentHandler:  handler.NewPaymentHandler(svcs.Payment),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth (public) --------
	api.POST("/auth/signup", s.authHandler.Signup)
	api.POST("/auth/login", s.authHandler.Login)
	api.POST("/seller/login", s.authHandler.SellerLogin)
	api.POST("/admin/login", s.authHandler.AdminLogin)
	api.POST("/admin/verify-email", s.authHandler.VerifyAdminEmail)

	// -------- profile --------
	users := api.Group("/users", custommw.RequireAuth())
	users.GET("/profile", s.userHandler.GetProfile)
	users.PUT("/profile", s.userHandler.UpdateProfile)

	// -------- admin --------
	admin := api.Group("/admin", custommw.RequireRole("admin"))
	admin.GET("/users", s.adminHandler.ListUsers)
	admin.DELETE("/users/:id", s.adminHandler.DeleteUser)
	admin.PUT("/users/:id/ban", s.adminHandler.BanUser)
	admin.GET("/sellers", s.adminHandler.ListSellers)
	admin.POST("/sellers", s.adminHandler.AddSeller)
	admin.PUT("/sellers/:id", s.adminHandler.UpdateSeller)
	admin.DELETE("/sellers/:id", s.adminHandler.DeleteSeller)

	// -------- catalog --------
	api.GET("/categories", s.categoryHandler.ListCategories)
	api.POST("/categories", s.categoryHandler.CreateCategory, custommw.RequireRole("admin"))
	api.PUT("/categories/:id", s.categoryHandler.UpdateCategory, custommw.RequireRole("admin"))
	api.DELETE("/categories/:id", s.categoryHandler.DeleteCategory, custommw.RequireRole("admin"))

	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/:id", s.productHandler.GetProduct)
	api.GET("/products/seller", s.productHandler.ListSellerProducts, custommw.RequireRole("seller"))
	api.GET("/products/category/:categoryId", s.productHandler.ListProductsByCategory)
	api.POST("/products", s.productHandler.CreateProduct, custommw.RequireRole("seller"))
	api.POST("/products/json", s.productHandler.CreateProductJSON, custommw.RequireRole("seller"))
	api.POST("/products/:id/upload-image", s.productHandler.UploadProductImage, custommw.RequireRole("seller"))
	api.PUT("/products/:id", s.productHandler.UpdateProductJSON, custommw.RequireRole("seller"))
	api.PUT("/products/:id/multipart", s.productHandler.UpdateProductMultipart, custommw.RequireRole("seller"))
	api.DELETE("/products/:id", s.productHandler.DeleteProduct, custommw.RequireRole("seller"))

	// -------- checkout --------
	api.GET("/checkout/upi-details", s.checkoutHandler.UPIDetails)
	api.POST("/checkout/process", s.checkoutHandler.ProcessCheckout, custommw.RequireAuth())

	// -------- orders --------
	api.GET("/orders/user", s.orderHandler.ListUserOrders, custommw.RequireAuth())
	api.GET("/orders/admin/all", s.orderHandler.ListAllOrders, custommw.RequireRole("admin"))
	api.GET("/orders/admin/revenue", s.orderHandler.Revenue, custommw.RequireRole("admin"))
	api.GET("/orders/seller", s.orderHandler.ListSellerOrders, custommw.RequireRole("seller"))
	api.PUT("/orders/:id/status", s.orderHandler.UpdateStatus, custommw.RequireRole("seller"))
	api.PUT("/orders/:id/cancel", s.orderHandler.Cancel, custommw.RequireAuth())
	api.PUT("/orders/:id/reject", s.orderHandler.Reject, custommw.RequireRole("seller"))

	// -------- returns --------
	api.POST("/returns", s.returnHandler.CreateReturn, custommw.RequireAuth())
	api.POST("/returns/request", s.returnHandler.RequestReturn, custommw.RequireAuth())
	api.GET("/returns/user", s.returnHandler.ListUserReturns, custommw.RequireAuth())
	api.GET("/returns/seller", s.returnHandler.ListSellerReturns, custommw.RequireRole("seller"))
	api.GET("/returns/all", s.returnHandler.ListAllReturns, custommw.RequireRole("admin"))
	api.PUT("/returns/:id/status", s.returnHandler.UpdateStatus, custommw.RequireRole("seller"))

	// -------- address & payment book --------
	api.GET("/addresses/user", s.addressHandler.ListAddresses, custommw.RequireAuth())
	api.POST("/addresses", s.addressHandler.CreateAddress, custommw.RequireAuth())
	api.PUT("/addresses/:id", s.addressHandler.UpdateAddress, custommw.RequireAuth())
	api.DELETE("/addresses/:id", s.addressHandler.DeleteAddress, custommw.RequireAuth())

	api.GET("/payments/user", s.paymentHandler.ListPayments, custommw.RequireAuth())
	api.POST("/payments", s.paymentHandler.CreatePayment, custommw.RequireAuth())
	api.PUT("/payments/:id", s.paymentHandler.UpdatePayment, custommw.RequireAuth())
	api.DELETE("/payments/:id", s.paymentHandler.DeletePayment, custommw.RequireAuth())
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
