// Package cert formats and exports the completion certificate. The id
// is an opaque local token, not a cryptographic proof.
package cert

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
)

const border = "---------------------------------------"

// Certificate is an issued completion certificate.
type Certificate struct {
	ID       string
	IssuedAt time.Time
}

// New creates a certificate issued now.
func New(id string) Certificate {
	return Certificate{ID: id, IssuedAt: time.Now()}
}

// Render produces the plain-text certificate block.
func (c Certificate) Render() string {
	return fmt.Sprintf(`%s
CERTIFICATE OF COMPLETION
%s

This certifies that the user associated with the ID below
has successfully completed the Cybersecurity Essentials Training.

Certificate ID: %s
Issued Date: %s

%s
`, border, border, c.ID, c.IssuedAt.Format("1/2/2006"), border)
}

// Filename returns the export file name for this certificate.
func (c Certificate) Filename() string {
	return fmt.Sprintf("Cybersecurity_Certificate_%s.txt", c.ID)
}

// WriteFile writes the rendered certificate into dir and returns the
// full path.
func (c Certificate) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, c.Filename())
	if err := os.WriteFile(path, []byte(c.Render()), 0o644); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}
	return path, nil
}

// CopyID places the certificate id on the system clipboard.
func CopyID(id string) error {
	if err := clipboard.WriteAll(id); err != nil {
		return fmt.Errorf("copy certificate id: %w", err)
	}
	return nil
}
