package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Auth
const (
	MinPasswordLength = 6
	MaxUsernameLength = 50
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// Uploads
const (
	// MaxUploadSize is the hard cap for artwork image files (5 MiB).
	MaxUploadSize = 5 * 1024 * 1024

	// UploadURLPath is the URL path the stored image files are served under.
	// The frontend uses returned image_url values verbatim as <img src>, so
	// this must match the router's static mount no matter where UPLOAD_DIR
	// points on disk.
	UploadURLPath = "public/img/uploaded_artworks"
)

// AllowedImageMIMETypes lists the MIME types accepted for artwork uploads.
var AllowedImageMIMETypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
}
