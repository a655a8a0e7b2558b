// Package devserver replica el contrato REST del backend de la cafetería
// sobre SQLite, para desarrollo local sin el backend real y para los tests
// de integración del cliente. Mantiene las mismas rutas, formas de payload,
// mensajes de error y efectos (descuento de stock al crear pedidos) que se
// observan del backend; incluida la convención de devolver {"error": "..."}
// con HTTP 200.
//
// No es el backend de producción: solo implementa lo que el cliente consume.
package devserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/beanbrews-backoffice/pkg/logger"
)

// Server servidor de desarrollo.
type Server struct {
	db  *gorm.DB
	log *logger.Logger
	app *fiber.App
}

// New abre (o crea) la base SQLite, migra el esquema y registra las rutas.
func New(dbPath string, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.Nop()
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		// El log de SQL va por pkg/logger, no por el de GORM.
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("devserver: abrir sqlite: %w", err)
	}
	if err := db.AutoMigrate(&User{}, &Item{}, &Order{}, &OrderItem{}); err != nil {
		return nil, fmt.Errorf("devserver: migrar esquema: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "beanbrews-devserver",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	s := &Server{db: db, log: log, app: app}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API is running 🚀"})
	})

	users := s.app.Group("/users")
	users.Get("/", s.listUsers)
	users.Post("/", s.createUser)
	users.Put("/:id", s.updateUser)
	users.Delete("/:id", s.deleteUser)

	stocks := s.app.Group("/stocks")
	stocks.Get("/", s.listItems)
	stocks.Post("/", s.createItem)
	stocks.Put("/:id", s.updateItem)
	stocks.Delete("/:id", s.deleteItem)

	orders := s.app.Group("/orders")
	orders.Get("/", s.listOrders)
	orders.Post("/", s.createOrder)
	orders.Put("/:id", s.updateOrder)
	orders.Delete("/:id", s.deleteOrder)
}

// App expone la app de fiber para tests (app.Test).
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen arranca el servidor en addr.
func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Msg("servidor de desarrollo escuchando")
	return s.app.Listen(addr)
}

// Shutdown apaga el servidor.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// fail respuesta de error del contrato: {"error": msg} con HTTP 200.
func fail(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"error": msg})
}
