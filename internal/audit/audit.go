package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/booklist/internal/entities"
)

// AddRecord is written for every accepted add request.
type AddRecord struct {
	Action     string         `json:"action"`
	Request    any            `json:"request"`
	Book       *entities.Book `json:"book"`
	RecordedAt time.Time      `json:"recorded_at"`
}

type Auditor struct {
	AuditDir string
}

func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
	}
}

// Enabled reports whether an audit directory is configured.
func (a *Auditor) Enabled() bool {
	return a != nil && a.AuditDir != ""
}

// SaveJSON saves the provided data as JSON to a file with UUID4 filename
func (a *Auditor) SaveJSON(data any) (string, error) {
	if err := a.ensureAuditDir(); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	auditID := uuid.New()
	filename := fmt.Sprintf("%s.json", auditID.String())
	path := filepath.Join(a.AuditDir, filename)

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	log.Printf("Saved audit file: %s", path)
	return filename, nil
}

// RecordAdd stores an AddRecord. It is a no-op when auditing is disabled and
// only logs failures, so callers never fail a request because of it.
func (a *Auditor) RecordAdd(request any, book *entities.Book) {
	if !a.Enabled() {
		return
	}
	record := AddRecord{
		Action:     "add_book",
		Request:    request,
		Book:       book,
		RecordedAt: time.Now().UTC(),
	}
	if _, err := a.SaveJSON(record); err != nil {
		log.Printf("WARNING: failed to audit add request: %v", err)
	}
}

// ensureAuditDir creates the audit directory if it doesn't exist
func (a *Auditor) ensureAuditDir() error {
	if _, err := os.Stat(a.AuditDir); os.IsNotExist(err) {
		if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
