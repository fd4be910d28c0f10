package handler

import (
	"net/http"

	"cinemashop/pkg/logger"
	"cinemashop/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes настраивает все маршруты сервиса с использованием Gin
// Публичный каталог, защищенные корзина и заказы
func SetupRoutes(
	movieHandler *MovieHandler,
	cartHandler *CartHandler,
	orderHandler *OrderHandler,
	authMiddleware *AuthMiddleware,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware("cinemashop"))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint - публичный, без аутентификации
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "cinemashop",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Каталог - чтение публичное
	movies := router.Group("/movies")
	{
		movies.GET("", movieHandler.ListMovies)                 // Список / фильтр каталога
		movies.GET("/:id", movieHandler.GetMovie)               // Фильм по ID
		movies.GET("/:id/reactions", movieHandler.GetReactions) // Счётчики реакций
		movies.GET("/:id/comments", movieHandler.GetComments)   // Комментарии фильма

		// Запись требует JWT токен
		protected := movies.Group("")
		protected.Use(authMiddleware.Authenticate())
		{
			protected.POST("", authMiddleware.RequireRole("manager", "admin"), movieHandler.CreateMovie)
			protected.POST("/reactions", movieHandler.CreateReaction) // Лайк/дизлайк
			protected.POST("/comments", movieHandler.CreateComment)   // Комментарий
		}
	}

	// Корзина - все маршруты требуют аутентификации
	cart := router.Group("/cart")
	cart.Use(authMiddleware.Authenticate())
	{
		cart.POST("/items", cartHandler.AddItem)                // Добавить фильм в корзину
		cart.DELETE("/items/:movie_id", cartHandler.RemoveItem) // Убрать фильм из корзины
		cart.GET("", cartHandler.GetCart)                       // Содержимое корзины
		cart.POST("/checkout", cartHandler.Checkout)            // Оформить заказ
		cart.DELETE("/clear", cartHandler.Clear)                // Очистить корзину
	}

	// История заказов - все маршруты требуют аутентификации
	orders := router.Group("/orders")
	orders.Use(authMiddleware.Authenticate())
	{
		orders.GET("", orderHandler.GetUserOrders) // Заказы пользователя
		orders.GET("/:id", orderHandler.GetOrder)  // Заказ по ID
	}

	return router
}
