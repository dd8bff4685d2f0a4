package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/galeriaviva/gallery-api/internal/constants"
	"github.com/galeriaviva/gallery-api/internal/database"
	"github.com/galeriaviva/gallery-api/internal/middleware"
	"github.com/galeriaviva/gallery-api/internal/models"
	"github.com/galeriaviva/gallery-api/internal/repository"
	"github.com/galeriaviva/gallery-api/internal/services"
	"github.com/galeriaviva/gallery-api/internal/storage"
	"github.com/galeriaviva/gallery-api/internal/token"
)

const testTokenTTL = time.Hour

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// pngBytes is a minimal payload carrying the PNG magic number, enough for
// MIME sniffing without being a decodable image.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type testEnv struct {
	db        *gorm.DB
	router    *gin.Engine
	tokens    *token.JWTManager
	uploadDir string

	authService    *services.AuthService
	artworkService *services.ArtworkService
	userService    *services.UserService
}

// setupTestEnv builds the full router against an in-memory database and a
// temporary upload directory.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Like{},
		&models.Favorite{},
		&models.Comment{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	uploadDir := t.TempDir()
	store, err := storage.NewLocalStorage(uploadDir, constants.UploadURLPath)
	require.NoError(t, err)

	tokens := token.NewJWTManager("test-secret", testTokenTTL)

	userRepo := repository.NewUserRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	artworkService := services.NewArtworkService(artworkRepo, store)
	userService := services.NewUserService(userRepo, artworkRepo)
	commentService := services.NewCommentService(commentRepo, artworkRepo, userRepo)

	authHandler := NewAuthHandler(authService)
	artworkHandler := NewArtworkHandler(artworkService)
	userHandler := NewUserHandler(userService, artworkService)
	commentHandler := NewCommentHandler(commentService)

	r := gin.New()
	r.Static("/"+constants.UploadURLPath, uploadDir)
	api := r.Group("/api")
	api.POST("/auth", authHandler.Handle)
	api.GET("/artworks", middleware.OptionalAuth(tokens), artworkHandler.HandleGet)
	api.POST("/artworks", middleware.RequireAuth(tokens), artworkHandler.HandlePost)
	api.GET("/users", middleware.RequireAuth(tokens), userHandler.HandleGet)
	api.POST("/users", middleware.RequireAuth(tokens), userHandler.HandlePost)
	api.GET("/comments", commentHandler.ListByArtwork)
	api.POST("/comments", middleware.RequireAuth(tokens), commentHandler.Create)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:             db,
		router:         r,
		tokens:         tokens,
		uploadDir:      uploadDir,
		authService:    authService,
		artworkService: artworkService,
		userService:    userService,
	}
}

// createUser registers a user and returns it with a valid bearer token.
func (env *testEnv) createUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	bearer, err := env.tokens.Issue(user.ID)
	require.NoError(t, err)

	return user, bearer
}

// createArtwork inserts an artwork row directly, bypassing the upload flow.
func (env *testEnv) createArtwork(t *testing.T, title string, ownerID uint64) *models.Artwork {
	t.Helper()

	artwork := &models.Artwork{
		Title:      title,
		ArtistName: "Test Artist",
		ImageURL:   constants.UploadURLPath + "/" + title + ".png",
		OwnerID:    &ownerID,
	}
	require.NoError(t, env.db.Create(artwork).Error)
	return artwork
}

// doJSON sends a JSON request, attaching the bearer token when non-empty.
func (env *testEnv) doJSON(t *testing.T, method, path string, bearer string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()

	env.router.ServeHTTP(w, req)
	return w
}

// doMultipart sends a multipart form; file is attached as artwork_image when
// fileContents is non-nil.
func (env *testEnv) doMultipart(t *testing.T, path, bearer string, fields map[string]string, fileName string, fileContents []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if fileContents != nil {
		part, err := mw.CreateFormFile("artwork_image", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContents)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()

	env.router.ServeHTTP(w, req)
	return w
}
