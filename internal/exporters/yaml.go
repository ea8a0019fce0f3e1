package exporters

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/booklist/internal/entities"
)

type yamlDocument struct {
	GeneratedAt string                `yaml:"generated_at"`
	Count       int                   `yaml:"count"`
	Books       []entities.RankedBook `yaml:"books"`
}

// GenerateYAML renders the list as a YAML document.
func GenerateYAML(books []entities.RankedBook, generatedAt time.Time) ([]byte, error) {
	if books == nil {
		books = []entities.RankedBook{}
	}
	return yaml.Marshal(yamlDocument{
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Count:       len(books),
		Books:       books,
	})
}
