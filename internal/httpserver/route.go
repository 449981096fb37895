package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Maaz9703/maazweb-api/internal/middleware/auth"
)

type Deps struct {
	Auth      *AuthHTTP
	Products  *ProductHTTP
	Orders    *OrderHTTP
	Coupons   *CouponHTTP
	Addresses *AddressHTTP
	Wishlist  *WishlistHTTP
	Reviews   *ReviewHTTP
	Settings  *SettingsHTTP
	Users     *UserHTTP
	JWTSecret []byte
}

// Register wires every route under /api. Public reads stay open, the
// rest require a bearer token, admin groups additionally check the role.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})

	mw := authmw.New(d.JWTSecret)
	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/me", d.Auth.Me, mw.RequireAuth)

	products := api.Group("/products")
	products.GET("", d.Products.GetProducts)
	products.GET("/categories/list", d.Products.GetCategories)
	products.GET("/:id", d.Products.GetProduct)
	products.POST("", d.Products.CreateProduct, mw.RequireAdmin)
	products.PUT("/:id", d.Products.UpdateProduct, mw.RequireAdmin)
	products.DELETE("/:id", d.Products.DeleteProduct, mw.RequireAdmin)

	orders := api.Group("/orders", mw.RequireAuth)
	orders.POST("", d.Orders.CreateOrder)
	orders.GET("", d.Orders.GetMyOrders)
	orders.POST("/create-payment-intent", d.Orders.CreatePaymentIntent)
	orders.GET("/admin/all", d.Orders.GetAllOrders, mw.RequireAdmin)
	orders.GET("/:id", d.Orders.GetOrder)
	orders.PUT("/:id/status", d.Orders.UpdateOrderStatus, mw.RequireAdmin)

	coupons := api.Group("/coupons")
	coupons.POST("/validate", d.Coupons.ValidateCoupon, mw.RequireAuth)
	coupons.GET("", d.Coupons.GetCoupons, mw.RequireAdmin)
	coupons.POST("", d.Coupons.CreateCoupon, mw.RequireAdmin)
	coupons.DELETE("/:id", d.Coupons.DeleteCoupon, mw.RequireAdmin)

	addresses := api.Group("/addresses", mw.RequireAuth)
	addresses.GET("", d.Addresses.GetAddresses)
	addresses.POST("", d.Addresses.CreateAddress)
	addresses.PUT("/:id", d.Addresses.UpdateAddress)
	addresses.DELETE("/:id", d.Addresses.DeleteAddress)
	addresses.PUT("/:id/default", d.Addresses.SetDefaultAddress)

	wishlist := api.Group("/wishlist", mw.RequireAuth)
	wishlist.GET("", d.Wishlist.GetWishlist)
	wishlist.POST("", d.Wishlist.AddToWishlist)
	wishlist.DELETE("/:productId", d.Wishlist.RemoveFromWishlist)

	reviews := api.Group("/reviews")
	reviews.GET("/product/:productId", d.Reviews.GetProductReviews)
	reviews.POST("", d.Reviews.SubmitReview, mw.RequireAuth)
	reviews.DELETE("/:id", d.Reviews.DeleteReview, mw.RequireAuth)

	settings := api.Group("/settings")
	settings.GET("", d.Settings.GetSettings)
	settings.PUT("", d.Settings.UpdateSettings, mw.RequireAdmin)

	users := api.Group("/users", mw.RequireAdmin)
	users.GET("", d.Users.GetUsers)
	users.GET("/stats", d.Users.GetUserStats)
}
