package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"slices"

	"github.com/gabriel-vasile/mimetype"
	"github.com/galeriaviva/gallery-api/internal/constants"
	"github.com/galeriaviva/gallery-api/internal/models"
	"github.com/galeriaviva/gallery-api/internal/repository"
	"github.com/galeriaviva/gallery-api/internal/storage"
	"github.com/galeriaviva/gallery-api/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrArtworkNotFound       = errors.New("artwork not found")
	ErrNotArtworkOwner       = errors.New("only the owner can modify this artwork")
	ErrMissingArtworkFields  = errors.New("title, artist name and image are required")
	ErrFileTooLarge          = errors.New("file exceeds the 5 MiB limit")
	ErrUnsupportedFileType   = errors.New("unsupported file type, only JPEG, PNG and GIF are accepted")
	ErrFailedToStoreImage    = errors.New("failed to store image file")
	ErrFailedToSaveArtwork   = errors.New("failed to save artwork")
	ErrFailedToDeleteArtwork = errors.New("failed to delete artwork")
)

// ArtworkService handles the artwork catalog, uploads and likes.
type ArtworkService struct {
	artworkRepo repository.ArtworkRepository
	storage     storage.Storage
}

// NewArtworkService creates a new ArtworkService.
func NewArtworkService(artworkRepo repository.ArtworkRepository, store storage.Storage) *ArtworkService {
	return &ArtworkService{
		artworkRepo: artworkRepo,
		storage:     store,
	}
}

// UploadArtworkInput represents the multipart fields of an upload.
type UploadArtworkInput struct {
	Title        string
	ArtistName   string
	Description  string
	Style        string
	CreationYear *int
	OwnerID      uint64
	File         *multipart.FileHeader
}

// UpdateArtworkInput represents the multipart fields of an update. File is
// optional; when present it replaces the stored image.
type UpdateArtworkInput struct {
	Title        string
	ArtistName   string
	Description  string
	Style        string
	CreationYear *int
	File         *multipart.FileHeader
}

// openValidatedImage enforces the size cap and sniffs the real MIME type of
// an uploaded file. It returns the file rewound to the start, plus the
// extension matching the detected type.
func openValidatedImage(fh *multipart.FileHeader) (multipart.File, string, error) {
	if fh.Size > constants.MaxUploadSize {
		return nil, "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open uploaded file: %w", err)
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		file.Close()
		return nil, "", fmt.Errorf("failed to detect file type: %w", err)
	}

	if !slices.Contains(constants.AllowedImageMIMETypes, mtype.String()) {
		file.Close()
		return nil, "", ErrUnsupportedFileType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	return file, mtype.Extension(), nil
}

// Upload validates the input, persists the image file and then the artwork
// row. The file write happens first; if the insert fails afterwards the file
// is deleted so no row ever points at a missing image.
func (s *ArtworkService) Upload(input UploadArtworkInput) (*models.Artwork, error) {
	title := utils.SanitizeText(input.Title)
	artistName := utils.SanitizeText(input.ArtistName)

	if title == "" || artistName == "" || input.File == nil {
		return nil, ErrMissingArtworkFields
	}

	file, ext, err := openValidatedImage(input.File)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileName := uuid.New().String() + ext
	relPath, err := s.storage.Save(fileName, file)
	if err != nil {
		return nil, ErrFailedToStoreImage
	}

	ownerID := input.OwnerID
	artwork := &models.Artwork{
		Title:        title,
		ArtistName:   artistName,
		Description:  utils.SanitizeTextPtr(input.Description),
		Style:        utils.SanitizeTextPtr(input.Style),
		CreationYear: input.CreationYear,
		ImageURL:     relPath,
		OwnerID:      &ownerID,
	}

	if err := s.artworkRepo.Create(artwork); err != nil {
		// Compensate: the row never landed, so the file must go too.
		if delErr := s.storage.Delete(relPath); delErr != nil {
			log.Printf("failed to remove orphaned upload %s: %v", relPath, delErr)
		}
		return nil, ErrFailedToSaveArtwork
	}

	return artwork, nil
}

// Update applies field changes to an owned artwork, replacing the image file
// when a new one is supplied. A failed file write aborts before the row is
// touched; the old file is removed only after the row update succeeds.
func (s *ArtworkService) Update(artworkID, actorID uint64, input UpdateArtworkInput) (*models.Artwork, error) {
	artwork, err := s.findOwned(artworkID, actorID)
	if err != nil {
		return nil, err
	}

	title := utils.SanitizeText(input.Title)
	artistName := utils.SanitizeText(input.ArtistName)
	if title == "" || artistName == "" {
		return nil, ErrMissingArtworkFields
	}

	artwork.Title = title
	artwork.ArtistName = artistName
	artwork.Description = utils.SanitizeTextPtr(input.Description)
	artwork.Style = utils.SanitizeTextPtr(input.Style)
	artwork.CreationYear = input.CreationYear

	oldPath := ""
	newPath := ""
	if input.File != nil {
		file, ext, err := openValidatedImage(input.File)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		fileName := uuid.New().String() + ext
		newPath, err = s.storage.Save(fileName, file)
		if err != nil {
			return nil, ErrFailedToStoreImage
		}

		oldPath = artwork.ImageURL
		artwork.ImageURL = newPath
	}

	if err := s.artworkRepo.Update(artwork); err != nil {
		if newPath != "" {
			if delErr := s.storage.Delete(newPath); delErr != nil {
				log.Printf("failed to remove orphaned upload %s: %v", newPath, delErr)
			}
		}
		return nil, ErrFailedToSaveArtwork
	}

	if oldPath != "" {
		if err := s.storage.Delete(oldPath); err != nil {
			log.Printf("failed to remove replaced image %s: %v", oldPath, err)
		}
	}

	return artwork, nil
}

// Delete removes an owned artwork with its likes and comments in one
// transaction. The image file is removed after the commit; a failed file
// delete is logged but the row deletions stand.
func (s *ArtworkService) Delete(artworkID, actorID uint64) error {
	artwork, err := s.findOwned(artworkID, actorID)
	if err != nil {
		return err
	}

	if err := s.artworkRepo.DeleteWithDependents(artworkID); err != nil {
		return ErrFailedToDeleteArtwork
	}

	if err := s.storage.Delete(artwork.ImageURL); err != nil {
		log.Printf("failed to remove image of deleted artwork %d: %v", artworkID, err)
	}

	return nil
}

// findOwned loads an artwork and applies the owner gate.
func (s *ArtworkService) findOwned(artworkID, actorID uint64) (*models.Artwork, error) {
	artwork, err := s.artworkRepo.FindByID(artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to find artwork: %w", err)
	}

	if artwork.OwnerID == nil || *artwork.OwnerID != actorID {
		return nil, ErrNotArtworkOwner
	}

	return artwork, nil
}

// GetArtwork retrieves an artwork with its like count.
func (s *ArtworkService) GetArtwork(id uint64) (*models.Artwork, error) {
	artwork, err := s.artworkRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to find artwork: %w", err)
	}
	return artwork, nil
}

// ListArtworks returns the filtered catalog and the unpaginated total.
func (s *ArtworkService) ListArtworks(filter repository.ArtworkFilter) ([]models.Artwork, int64, error) {
	artworks, total, err := s.artworkRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list artworks: %w", err)
	}
	return artworks, total, nil
}

// ListUploaded returns a user's artworks, newest first.
func (s *ArtworkService) ListUploaded(ownerID uint64) ([]models.Artwork, error) {
	artworks, err := s.artworkRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploaded artworks: %w", err)
	}
	return artworks, nil
}

// ListStyles returns all distinct styles present in the catalog.
func (s *ArtworkService) ListStyles() ([]string, error) {
	styles, err := s.artworkRepo.ListStyles()
	if err != nil {
		return nil, fmt.Errorf("failed to list styles: %w", err)
	}
	return styles, nil
}

// ListArtists returns all distinct artist names present in the catalog.
func (s *ArtworkService) ListArtists() ([]string, error) {
	artists, err := s.artworkRepo.ListArtists()
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// ToggleLike flips the like state for a (user, artwork) pair and returns the
// new state with the recomputed count. Delete-then-insert plus the composite
// primary key makes concurrent toggles land on a deterministic outcome.
func (s *ArtworkService) ToggleLike(artworkID, userID uint64) (bool, int64, error) {
	if _, err := s.GetArtwork(artworkID); err != nil {
		return false, 0, err
	}

	deleted, err := s.artworkRepo.DeleteLike(artworkID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to remove like: %w", err)
	}

	isLiked := false
	if !deleted {
		// No like row existed: this toggle turns the like on. A racing
		// insert of the same pair is absorbed by the conflict clause.
		if _, err := s.artworkRepo.InsertLike(&models.Like{ArtworkID: artworkID, UserID: userID}); err != nil {
			return false, 0, fmt.Errorf("failed to add like: %w", err)
		}
		isLiked = true
	}

	count, err := s.artworkRepo.CountLikes(artworkID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return isLiked, count, nil
}

// LikeStatus reports whether the user liked the artwork and the current count.
func (s *ArtworkService) LikeStatus(artworkID, userID uint64) (bool, int64, error) {
	isLiked, err := s.artworkRepo.IsLiked(artworkID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to check like status: %w", err)
	}

	count, err := s.artworkRepo.CountLikes(artworkID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return isLiked, count, nil
}
