package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/jumplink/internal/domain"
	"github.com/MrSnakeDoc/jumplink/internal/logger"
)

// Creator is the part of the registry the seeder needs. Seeded links skip
// the shortening provider so startup never waits on it.
type Creator interface {
	CreateLocalLink(rawURL, requestedCode string) (domain.LinkRecord, error)
}

// Loader handles loading and parsing of the links seed file
type Loader struct {
	filePath string
}

// NewLoader creates a new seed loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	for i := range file.Links {
		file.Links[i].URL = strings.TrimSpace(file.Links[i].URL)
		file.Links[i].Code = strings.TrimSpace(file.Links[i].Code)
	}

	return &file, nil
}

// Apply creates every entry through the registry. Invalid entries are
// logged and skipped. It stops early if ctx is cancelled and returns the
// number of links created.
func Apply(ctx context.Context, file *File, reg Creator, log logger.Logger) int {
	created := 0
	for i, entry := range file.Links {
		if ctx.Err() != nil {
			log.Warn("seeding interrupted", logger.Int("remaining", len(file.Links)-i))
			break
		}
		rec, err := reg.CreateLocalLink(entry.URL, entry.Code)
		if err != nil {
			log.Warn("skipping seed entry",
				logger.Int("index", i),
				logger.String("url", entry.URL),
				logger.Error(err))
			continue
		}
		if entry.Code != "" && rec.Code != entry.Code {
			log.Warn("seed code already taken, generated a new one",
				logger.String("requested", entry.Code),
				logger.String("code", rec.Code))
		}
		created++
	}
	return created
}
