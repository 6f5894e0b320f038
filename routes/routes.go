package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/controllers"
	"github.com/revanth-raj24/AlmirahShop/middleware"
	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// Controllers bundles everything the router needs.
type Controllers struct {
	Auth     *controllers.AuthController
	Product  *controllers.ProductController
	Cart     *controllers.CartController
	Order    *controllers.OrderController
	Seller   *controllers.SellerController
	Admin    *controllers.AdminController
	Address  *controllers.AddressController
	Wishlist *controllers.WishlistController
	Review   *controllers.ReviewController

	Notification *controllers.NotificationController
}

// RegisterRoutes wires every endpoint group onto the engine.
func RegisterRoutes(r *gin.Engine, c Controllers, tokens services.TokenService, users repository.UserRepository) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/verify", c.Auth.VerifyOTP)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.Refresh)
	}

	// Public catalog.
	r.GET("/products", c.Product.ListProducts)
	r.GET("/products/:id", c.Product.GetProduct)
	r.GET("/products/:id/reviews", c.Review.ListReviews)

	authed := r.Group("/")
	authed.Use(middleware.Authenticate(tokens))
	{
		cart := authed.Group("/cart")
		{
			cart.GET("", c.Cart.GetCart)
			cart.DELETE("", c.Cart.ClearCart)
			cart.POST("/items", c.Cart.AddItem)
			cart.PUT("/items", c.Cart.SetQuantity)
			cart.POST("/items/:product_id/increase", c.Cart.IncreaseItem)
			cart.POST("/items/:product_id/decrease", c.Cart.DecreaseItem)
			cart.DELETE("/items/:product_id", c.Cart.RemoveItem)
		}

		orders := authed.Group("/orders")
		{
			orders.POST("/checkout", c.Order.Checkout)
			orders.GET("", c.Order.ListMyOrders)
			orders.GET("/:id", c.Order.GetOrder)
			orders.POST("/items/:item_id/return", c.Order.RequestReturn)
			orders.DELETE("/items/:item_id/return", c.Order.CancelReturn)
		}

		addresses := authed.Group("/addresses")
		{
			addresses.GET("", c.Address.ListAddresses)
			addresses.POST("", c.Address.CreateAddress)
			addresses.PUT("/:id", c.Address.UpdateAddress)
			addresses.DELETE("/:id", c.Address.DeleteAddress)
		}

		wishlist := authed.Group("/wishlist")
		{
			wishlist.GET("", c.Wishlist.ListWishlist)
			wishlist.POST("/:product_id", c.Wishlist.AddToWishlist)
			wishlist.DELETE("/:product_id", c.Wishlist.RemoveFromWishlist)
		}

		authed.POST("/reviews", c.Review.CreateReview)
		authed.DELETE("/reviews/:id", c.Review.DeleteReview)
	}

	// Seller workspace. Unapproved sellers are blocked here with a
	// machine-readable reason; everything else about their account works.
	seller := r.Group("/seller")
	seller.Use(
		middleware.Authenticate(tokens),
		middleware.RequireRole(models.RoleSeller, models.RoleAdmin),
		middleware.RequireApprovedSeller(users),
	)
	{
		seller.GET("/items", c.Seller.ListItems)
		seller.POST("/items/:item_id/accept", c.Seller.AcceptItem)
		seller.POST("/items/:item_id/reject", c.Seller.RejectItem)
		seller.POST("/items/:item_id/return/accept", c.Seller.AcceptReturn)
		seller.POST("/items/:item_id/return/reject", c.Seller.RejectReturn)
		seller.POST("/items/:item_id/return/received", c.Seller.MarkReturnReceived)

		seller.GET("/products", c.Seller.ListProducts)
		seller.POST("/products", c.Seller.CreateProduct)
		seller.PUT("/products/:id", c.Seller.UpdateProduct)
		seller.DELETE("/products/:id", c.Seller.DeleteProduct)
		seller.POST("/products/:id/variants", c.Seller.AddVariant)
		seller.PUT("/variants/:variant_id", c.Seller.UpdateVariant)
		seller.DELETE("/variants/:variant_id", c.Seller.DeleteVariant)
		seller.POST("/uploads/presign", c.Seller.PresignUpload)

		seller.GET("/notifications", c.Notification.ListSellerNotifications)
		seller.POST("/notifications", c.Notification.SaveNotification)
		seller.PATCH("/notifications/:id/read", c.Notification.MarkRead)
		seller.DELETE("/notifications/:id", c.Notification.DeleteNotification)
		seller.GET("/notifications/unread/count", c.Notification.UnreadCount)
	}

	admin := r.Group("/admin")
	admin.Use(
		middleware.Authenticate(tokens),
		middleware.RequireRole(models.RoleAdmin),
	)
	{
		admin.GET("/sellers", c.Admin.ListSellers)
		admin.POST("/sellers/:id/approve", c.Admin.ApproveSeller)
		admin.POST("/sellers/:id/revoke", c.Admin.RevokeSeller)
		admin.POST("/users/:id/block", c.Admin.BlockUser)
		admin.POST("/users/:id/unblock", c.Admin.UnblockUser)
		admin.DELETE("/users/:id", c.Admin.DeleteUser)

		admin.GET("/products/pending", c.Admin.ListPendingProducts)
		admin.POST("/products/:id/approve", c.Admin.ApproveProduct)
		admin.POST("/products/:id/reject", c.Admin.RejectProduct)
		admin.POST("/products/bulk", c.Admin.BulkUpdateProducts)

		admin.GET("/orders", c.Admin.ListAllOrders)
		admin.PUT("/orders/:id/status", c.Admin.ForceOrderStatus)
		admin.PUT("/items/:item_id/status", c.Admin.OverrideItemStatus)
		admin.PUT("/items/:item_id/return-status", c.Admin.OverrideReturnStatus)

		admin.GET("/notifications", c.Notification.ListAllNotifications)
		admin.POST("/notifications", c.Notification.CreateNotification)
		admin.PATCH("/notifications/:id/read", c.Notification.MarkRead)
		admin.DELETE("/notifications/:id", c.Notification.DeleteNotification)
		admin.GET("/notifications/unread/count", c.Notification.UnreadCount)

		admin.GET("/analytics", c.Admin.Analytics)
	}
}
