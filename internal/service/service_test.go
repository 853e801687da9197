package service

import (
	"strings"
	"testing"

	"funkopop-api/internal/model"
	"funkopop-api/internal/repository"
	"funkopop-api/internal/ws"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.FunkoPop{}, &model.Review{}, &model.User{}))
	return db
}

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func newPopService(t *testing.T) (FunkoPopService, *gorm.DB) {
	db := newTestDB(t)
	return NewFunkoPopService(repository.NewFunkoPopRepo(db), newTestHub()), db
}

func newReviewService(t *testing.T) (ReviewService, FunkoPopService, *gorm.DB) {
	db := newTestDB(t)
	hub := newTestHub()
	popRepo := repository.NewFunkoPopRepo(db)
	return NewReviewService(repository.NewReviewRepo(db), popRepo, hub),
		NewFunkoPopService(popRepo, hub), db
}

func newAuthService(t *testing.T) (AuthService, *gorm.DB) {
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepo(db)), db
}

func validPopPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Marvel: WandaVision - Halloween Wanda",
		"price":       7.2,
		"description": "Funko pop of halloween wanda",
		"quantity":    "100",
	}
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *model.User {
	user := &model.User{Email: email, Role: role}
	require.NoError(t, user.SetPassword("P4ssword!"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func longString(length int) string {
	return strings.Repeat("a", length)
}
