package server

import (
	"log"

	"braik-ai-be/internal/bootstrap"
	"braik-ai-be/internal/config"
	"braik-ai-be/internal/pkg/serverutils"
	ws "braik-ai-be/internal/websocket"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		// Scanned documents arrive as base64 bodies.
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)

	protected := api.Group("", serverutils.JwtMiddleware)
	c.EntryController.RegisterRoutes(protected)
	c.CalendarController.RegisterRoutes(protected)
	c.ChatController.RegisterRoutes(protected)
	c.InsightController.RegisterRoutes(protected)
	c.ChannelController.RegisterRoutes(protected)

	registerWebsocketRoutes(app, c)
}

// registerWebsocketRoutes exposes the guardian alert push channel and
// the voice bridge. The token travels as a query parameter because an
// upgrade request cannot carry an Authorization header from a browser.
func registerWebsocketRoutes(app *fiber.App, c *bootstrap.Container) {
	app.Use("/ws", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		email, err := serverutils.ParseToken(ctx.Query("token"))
		if err != nil {
			return fiber.ErrUnauthorized
		}
		ctx.Locals("email", email)
		return ctx.Next()
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		email, _ := conn.Locals("email").(string)
		ws.ServeWs(c.WebSocketHub, conn, email)
	}))

	app.Get("/ws/voice", websocket.New(func(conn *websocket.Conn) {
		ws.ServeVoice(conn, c.Gateway, c.Logger)
	}))
}
