package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"funkopop-api/internal/apperror"
	"funkopop-api/internal/middleware"
	"funkopop-api/internal/model"
	"funkopop-api/internal/repository"
	"funkopop-api/internal/service"
	"funkopop-api/internal/ws"
	"funkopop-api/pkg/jwt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

// newTestEnv wires the app the way cmd/api does, against an in-memory store
func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.FunkoPop{}, &model.Review{}, &model.User{}))

	hub := ws.NewHub()
	go hub.Run()

	popRepo := repository.NewFunkoPopRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	userRepo := repository.NewUserRepo(db)

	popHandler := NewFunkoPopHandler(service.NewFunkoPopService(popRepo, hub))
	reviewHandler := NewReviewHandler(service.NewReviewService(reviewRepo, popRepo, hub))
	authHandler := NewAuthHandler(service.NewAuthService(userRepo))

	app := fiber.New(fiber.Config{ErrorHandler: apperror.Handler})

	requireAuth := middleware.RequireAuth(userRepo)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to FunkoPops"})
	})

	api := app.Group("/api/1.0")

	pops := api.Group("/funkopops")
	pops.Get("/", popHandler.GetAll)
	pops.Get("/:id", popHandler.GetByID)
	pops.Post("/", requireAuth, adminOnly, popHandler.Create)
	pops.Patch("/:id", requireAuth, adminOnly, popHandler.Edit)
	pops.Delete("/:id", requireAuth, adminOnly, popHandler.Delete)

	pops.Get("/:id/reviews", reviewHandler.List)
	pops.Post("/:id/reviews", requireAuth, reviewHandler.Create)
	pops.Patch("/:id/reviews/:reviewId", requireAuth, reviewHandler.Edit)
	pops.Delete("/:id/reviews/:reviewId", requireAuth, reviewHandler.Delete)

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/signin", authHandler.Signin)
	auth.Get("/get-user", requireAuth, authHandler.GetUser)

	app.Use(func(c *fiber.Ctx) error {
		return apperror.RouteNotFound()
	})

	return &testEnv{app: app, db: db}
}

func (env *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	body := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (env *testEnv) createUser(t *testing.T, email, role string) (*model.User, string) {
	user := &model.User{Email: email, Role: role}
	require.NoError(t, user.SetPassword("P4ssword!"))
	require.NoError(t, env.db.Create(user).Error)

	token, err := jwt.GenerateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func popPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Marvel: WandaVision - Halloween Wanda",
		"price":       7.2,
		"description": "Funko pop of halloween wanda",
		"quantity":    "100",
	}
}
