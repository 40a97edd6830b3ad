package services

import (
	"byteforge/models"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkService handles the URL-shortener utility
type LinkService struct {
	db *gorm.DB
}

func NewLinkService(db *gorm.DB) *LinkService {
	return &LinkService{db: db}
}

// shortenAttempts bounds the retries on short-code collisions
const shortenAttempts = 5

// Shorten stores the target URL under a fresh short code
func (s *LinkService) Shorten(rawURL string) (*models.ShortLink, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, Invalid("url must be an absolute http or https URL")
	}

	for attempt := 0; attempt < shortenAttempts; attempt++ {
		link := models.ShortLink{
			Code: newShortCode(),
			URL:  rawURL,
		}
		err := s.db.Create(&link).Error
		if err == nil {
			return &link, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	// exhausting the retries on a server-generated key is an internal
	// failure, not a conflict the caller can resolve
	return nil, fmt.Errorf("could not allocate a unique short code after %d attempts", shortenAttempts)
}

// Resolve returns the link for the code and counts the visit
func (s *LinkService) Resolve(code string) (*models.ShortLink, error) {
	link, err := s.Stats(code)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(link).UpdateColumn("visits", gorm.Expr("visits + 1")).Error; err != nil {
		return nil, err
	}
	link.Visits++
	return link, nil
}

// Stats returns the link for the code without counting a visit
func (s *LinkService) Stats(code string) (*models.ShortLink, error) {
	var link models.ShortLink
	if err := s.db.Where("code = ?", code).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Link")
		}
		return nil, err
	}
	return &link, nil
}

// newShortCode returns the first uuid group, 8 hex characters.
// Variable so tests can force code collisions.
var newShortCode = func() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
