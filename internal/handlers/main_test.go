package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pleone55/CS493-Final/internal/constants"
	"github.com/pleone55/CS493-Final/internal/models"
	"github.com/pleone55/CS493-Final/internal/repository"
	"github.com/pleone55/CS493-Final/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db               *gorm.DB
	userRepo         repository.UserRepository
	boatService      *services.BoatService
	containerService *services.ContainerService
	boatHandler      *BoatHandler
	containerHandler *ContainerHandler
	userHandler      *UserHandler
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Boat{},
		&models.Container{},
		&models.User{},
	)
	require.NoError(t, err)

	boatRepo := repository.NewBoatRepository(db)
	containerRepo := repository.NewContainerRepository(db)
	userRepo := repository.NewUserRepository(db)

	containerService := services.NewContainerService(containerRepo)
	boatService := services.NewBoatService(boatRepo, containerService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:               db,
		userRepo:         userRepo,
		boatService:      boatService,
		containerService: containerService,
		boatHandler:      NewBoatHandler(boatService),
		containerHandler: NewContainerHandler(containerService),
		userHandler:      NewUserHandler(userRepo),
	}
}

// authAs stands in for the JWT middleware and injects the owner subject.
func authAs(owner string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyOwner, owner)
		c.Next()
	}
}

// router wires the resource routes the way cmd/server does, with the
// caller's identity fixed to owner.
func (env testEnv) router(owner string) *gin.Engine {
	r := gin.New()

	boats := r.Group("/boats")
	boats.Use(authAs(owner))
	{
		boats.POST("", env.boatHandler.CreateBoat)
		boats.GET("", env.boatHandler.ListBoats)
		boats.GET("/:boat_id", env.boatHandler.GetBoat)
		boats.PATCH("/:boat_id", env.boatHandler.PatchBoat)
		boats.PUT("/:boat_id", env.boatHandler.PutBoat)
		boats.DELETE("/:boat_id", env.boatHandler.DeleteBoat)
		boats.PUT("/:boat_id/containers/:container_id", env.boatHandler.AttachContainer)
		boats.DELETE("/:boat_id/containers/:container_id", env.boatHandler.DetachContainer)
	}
	r.DELETE("/boats", env.boatHandler.DeleteAll)
	r.PUT("/boats", env.boatHandler.UpdateAll)

	containers := r.Group("/containers")
	{
		containers.POST("", env.containerHandler.CreateContainer)
		containers.GET("", env.containerHandler.ListContainers)
		containers.GET("/:container_id", env.containerHandler.GetContainer)
		containers.PATCH("/:container_id", env.containerHandler.PatchContainer)
		containers.PUT("/:container_id", env.containerHandler.PutContainer)
		containers.DELETE("/:container_id", env.containerHandler.DeleteContainer)
	}
	r.DELETE("/containers", env.containerHandler.DeleteAll)
	r.PUT("/containers", env.containerHandler.UpdateAll)

	users := r.Group("/users")
	{
		users.GET("", env.userHandler.ListUsers)
		users.GET("/:user_id", env.userHandler.GetUser)
		users.DELETE("/:user_id", env.userHandler.DeleteUser)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func do(t *testing.T, r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
