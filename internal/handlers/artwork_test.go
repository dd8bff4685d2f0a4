package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galeriaviva/gallery-api/internal/dto"
	"github.com/galeriaviva/gallery-api/internal/models"
)

func uploadFields(title string) map[string]string {
	return map[string]string{
		"action":      "upload_artwork",
		"title":       title,
		"artist_name": "Edvard Munch",
		"description": "Oil on canvas",
		"style":       "Expressionism",
	}
}

func TestArtworkHandler_Upload(t *testing.T) {
	env := setupTestEnv(t)
	user, bearer := env.createUser(t, "uploader")

	w := env.doMultipart(t, "/api/artworks", bearer, uploadFields("The Scream"), "scream.png", pngBytes)
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		ArtworkID uint64 `json:"artwork_id"`
		ImageURL  string `json:"image_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ArtworkID)
	require.NotEmpty(t, response.ImageURL)

	var artwork models.Artwork
	require.NoError(t, env.db.First(&artwork, response.ArtworkID).Error)
	require.Equal(t, "The Scream", artwork.Title)
	require.NotNil(t, artwork.OwnerID)
	require.Equal(t, user.ID, *artwork.OwnerID)

	stored, err := os.ReadFile(filepath.Join(env.uploadDir, filepath.Base(response.ImageURL)))
	require.NoError(t, err)
	require.Equal(t, pngBytes, stored)
}

func TestArtworkHandler_Upload_ImageServedAtStoredURL(t *testing.T) {
	env := setupTestEnv(t)
	_, bearer := env.createUser(t, "uploader")

	w := env.doMultipart(t, "/api/artworks", bearer, uploadFields("Reachable"), "reachable.png", pngBytes)
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		ImageURL string `json:"image_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	// The frontend uses image_url verbatim as <img src>, so the file must be
	// fetchable at exactly that path on the API host.
	fetch := env.doJSON(t, http.MethodGet, "/"+response.ImageURL, "", nil)
	require.Equal(t, http.StatusOK, fetch.Code)
	require.Equal(t, pngBytes, fetch.Body.Bytes())
}

func TestArtworkHandler_Upload_RejectsUnsupportedType(t *testing.T) {
	env := setupTestEnv(t)
	_, bearer := env.createUser(t, "uploader")

	w := env.doMultipart(t, "/api/artworks", bearer, uploadFields("Not An Image"), "notes.txt", []byte("just some text"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Rejection must leave no orphan on disk and no row behind.
	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	require.Empty(t, entries)

	var count int64
	require.NoError(t, env.db.Model(&models.Artwork{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestArtworkHandler_Upload_RejectsOversizeFile(t *testing.T) {
	env := setupTestEnv(t)
	_, bearer := env.createUser(t, "uploader")

	huge := make([]byte, 5*1024*1024+1)
	copy(huge, pngBytes)

	w := env.doMultipart(t, "/api/artworks", bearer, uploadFields("Too Big"), "big.png", huge)
	require.Equal(t, http.StatusBadRequest, w.Code)

	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestArtworkHandler_Upload_RequiresTitle(t *testing.T) {
	env := setupTestEnv(t)
	_, bearer := env.createUser(t, "uploader")

	fields := uploadFields("")
	w := env.doMultipart(t, "/api/artworks", bearer, fields, "scream.png", pngBytes)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArtworkHandler_Upload_RequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doMultipart(t, "/api/artworks", "", uploadFields("No Token"), "scream.png", pngBytes)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestArtworkHandler_Get(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "owner")
	liker, _ := env.createUser(t, "liker")
	artwork := env.createArtwork(t, "Starry Night", user.ID)

	require.NoError(t, env.db.Create(&models.Like{ArtworkID: artwork.ID, UserID: liker.ID}).Error)

	w := env.doJSON(t, http.MethodGet, "/api/artworks?id="+itoa(artwork.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ArtworkDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Starry Night", response.Title)
	require.EqualValues(t, 1, response.LikeCount)
}

func TestArtworkHandler_Get_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/artworks?id=9999", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestArtworkHandler_List(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "owner")
	env.createArtwork(t, "Water Lilies", user.ID)
	env.createArtwork(t, "Sunflowers", user.ID)

	w := env.doJSON(t, http.MethodGet, "/api/artworks", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var artworks []dto.ArtworkDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &artworks))
	require.Len(t, artworks, 2)
}

func TestArtworkHandler_List_EmptyIsOK(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/artworks?search=nothing-matches", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestArtworkHandler_List_Search(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "owner")
	env.createArtwork(t, "Water Lilies", user.ID)
	env.createArtwork(t, "Sunflowers", user.ID)

	// Case-insensitive substring match.
	w := env.doJSON(t, http.MethodGet, "/api/artworks?search=LILIES", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var artworks []dto.ArtworkDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &artworks))
	require.Len(t, artworks, 1)
	require.Equal(t, "Water Lilies", artworks[0].Title)
}

func TestArtworkHandler_List_SortPopular(t *testing.T) {
	env := setupTestEnv(t)
	owner, _ := env.createUser(t, "owner")
	fan, _ := env.createUser(t, "fan")
	quiet := env.createArtwork(t, "Quiet Piece", owner.ID)
	popular := env.createArtwork(t, "Crowd Favorite", owner.ID)
	_ = quiet

	require.NoError(t, env.db.Create(&models.Like{ArtworkID: popular.ID, UserID: fan.ID}).Error)
	require.NoError(t, env.db.Create(&models.Like{ArtworkID: popular.ID, UserID: owner.ID}).Error)

	w := env.doJSON(t, http.MethodGet, "/api/artworks?sort=popular", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var artworks []dto.ArtworkDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &artworks))
	require.Len(t, artworks, 2)
	require.Equal(t, "Crowd Favorite", artworks[0].Title)
	require.EqualValues(t, 2, artworks[0].LikeCount)
}

func TestArtworkHandler_List_Paginated(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "owner")
	for _, title := range []string{"One", "Two", "Three"} {
		env.createArtwork(t, title, user.ID)
	}

	w := env.doJSON(t, http.MethodGet, "/api/artworks?page=1&per_page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ArtworkListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Artworks, 2)
	require.Equal(t, 1, response.Pagination.Page)
	require.Equal(t, 2, response.Pagination.PerPage)
	require.EqualValues(t, 3, response.Pagination.TotalCount)
	require.Equal(t, 2, response.Pagination.TotalPages)
}

func TestArtworkHandler_GetStyles(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, "owner")

	impressionism := "Impressionism"
	cubism := "Cubism"
	for _, style := range []*string{&impressionism, &cubism, &impressionism, nil} {
		artwork := env.createArtwork(t, "Piece", user.ID)
		artwork.Style = style
		require.NoError(t, env.db.Save(artwork).Error)
	}

	w := env.doJSON(t, http.MethodGet, "/api/artworks?action=get_styles", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var styles []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &styles))
	require.Equal(t, []string{"Cubism", "Impressionism"}, styles)
}

func TestArtworkHandler_ToggleLike(t *testing.T) {
	env := setupTestEnv(t)
	owner, _ := env.createUser(t, "owner")
	_, bearer := env.createUser(t, "fan")
	artwork := env.createArtwork(t, "Togglable", owner.ID)

	payload := map[string]any{
		"action":     "toggle_like",
		"artwork_id": artwork.ID,
	}

	w := env.doJSON(t, http.MethodPost, "/api/artworks", bearer, payload)
	require.Equal(t, http.StatusOK, w.Code)

	var first struct {
		IsLiked   bool  `json:"is_liked"`
		LikeCount int64 `json:"like_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.True(t, first.IsLiked)
	require.EqualValues(t, 1, first.LikeCount)

	// A second toggle inverts the first.
	w = env.doJSON(t, http.MethodPost, "/api/artworks", bearer, payload)
	require.Equal(t, http.StatusOK, w.Code)

	var second struct {
		IsLiked   bool  `json:"is_liked"`
		LikeCount int64 `json:"like_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	require.False(t, second.IsLiked)
	require.EqualValues(t, 0, second.LikeCount)
}

func TestArtworkHandler_LikeStatus(t *testing.T) {
	env := setupTestEnv(t)
	owner, _ := env.createUser(t, "owner")
	_, bearer := env.createUser(t, "fan")
	artwork := env.createArtwork(t, "Status Check", owner.ID)

	w := env.doJSON(t, http.MethodGet, "/api/artworks?action=get_like_status&artwork_id="+itoa(artwork.ID), bearer, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status dto.LikeStatusDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	require.False(t, status.IsLiked)
	require.EqualValues(t, 0, status.LikeCount)
}

func TestArtworkHandler_LikeStatus_RequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/artworks?action=get_like_status&artwork_id=1", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestArtworkHandler_Update_OwnerOnly(t *testing.T) {
	env := setupTestEnv(t)
	owner, ownerBearer := env.createUser(t, "owner")
	_, strangerBearer := env.createUser(t, "stranger")
	artwork := env.createArtwork(t, "Original Title", owner.ID)

	fields := map[string]string{
		"action":      "update_artwork",
		"artwork_id":  itoa(artwork.ID),
		"title":       "Renamed",
		"artist_name": "Edvard Munch",
	}

	w := env.doMultipart(t, "/api/artworks", strangerBearer, fields, "", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.doMultipart(t, "/api/artworks", ownerBearer, fields, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Artwork
	require.NoError(t, env.db.First(&updated, artwork.ID).Error)
	require.Equal(t, "Renamed", updated.Title)
}

func TestArtworkHandler_Delete_Cascades(t *testing.T) {
	env := setupTestEnv(t)
	_, ownerBearer := env.createUser(t, "owner")
	fan, _ := env.createUser(t, "fan")

	// Upload through the handler so a real file lands on disk.
	w := env.doMultipart(t, "/api/artworks", ownerBearer, uploadFields("Doomed"), "doomed.png", pngBytes)
	require.Equal(t, http.StatusCreated, w.Code)

	var uploaded struct {
		ArtworkID uint64 `json:"artwork_id"`
		ImageURL  string `json:"image_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))

	require.NoError(t, env.db.Create(&models.Like{ArtworkID: uploaded.ArtworkID, UserID: fan.ID}).Error)
	require.NoError(t, env.db.Create(&models.Comment{ArtworkID: uploaded.ArtworkID, UserID: fan.ID, CommentText: "nice"}).Error)

	w = env.doJSON(t, http.MethodPost, "/api/artworks", ownerBearer, map[string]any{
		"action":     "delete_artwork",
		"artwork_id": uploaded.ArtworkID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, model := range []any{&models.Artwork{}, &models.Like{}, &models.Comment{}} {
		var count int64
		require.NoError(t, env.db.Model(model).Count(&count).Error)
		require.Zero(t, count)
	}

	_, err := os.Stat(filepath.Join(env.uploadDir, filepath.Base(uploaded.ImageURL)))
	require.True(t, os.IsNotExist(err))
}

func TestArtworkHandler_Delete_NotOwner(t *testing.T) {
	env := setupTestEnv(t)
	owner, _ := env.createUser(t, "owner")
	_, strangerBearer := env.createUser(t, "stranger")
	artwork := env.createArtwork(t, "Protected", owner.ID)

	w := env.doJSON(t, http.MethodPost, "/api/artworks", strangerBearer, map[string]any{
		"action":     "delete_artwork",
		"artwork_id": artwork.ID,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Artwork{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
