package handler

import "github.com/gin-gonic/gin"

// Handlers groups the route handlers served under /api.
type Handlers struct {
	Contact *ContactHandler
	Blog    *BlogHandler
	Job     *JobHandler
	Product *ProductHandler
	Chat    *ChatHandler
	Health  *HealthHandler
}

// RegisterRoutes mounts every API route on router.
func RegisterRoutes(router gin.IRouter, h Handlers) {
	api := router.Group("/api")

	api.GET("/health", h.Health.Health)
	api.HEAD("/health", h.Health.Health)
	api.GET("/ready", h.Health.Ready)

	contact := api.Group("/contact")
	{
		contact.POST("", h.Contact.Create)
		contact.GET("", h.Contact.List)
		contact.DELETE("/:id", h.Contact.Delete)
	}

	blog := api.Group("/blog")
	{
		blog.GET("", h.Blog.List)
		blog.GET("/:slug", h.Blog.Get)
		blog.POST("", h.Blog.Create)
		blog.PUT("/:id", h.Blog.Update)
		blog.DELETE("/:id", h.Blog.Delete)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.Job.List)
		jobs.GET("/:id", h.Job.Get)
		jobs.POST("", h.Job.Create)
		jobs.PUT("/:id", h.Job.Update)
		jobs.DELETE("/:id", h.Job.Delete)
	}

	chat := api.Group("/chat")
	{
		chat.GET("", h.Chat.List)
		chat.POST("", h.Chat.Create)
		chat.DELETE("/:id", h.Chat.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/blogs", h.Blog.ListAdmin)
		admin.GET("/jobs", h.Job.ListAdmin)
	}
}
