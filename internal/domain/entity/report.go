package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StoredReport is the persisted record behind a shareable report page.
type StoredReport struct {
	ID          string     `json:"id"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	ImageBase64 string     `json:"imageBase64,omitempty"`
	Report      string     `json:"report"`
	CaseID      string     `json:"caseId"`
	Mode        string     `json:"mode"`
	Intensity   int        `json:"intensity"`
	Context     string     `json:"context,omitempty"`
	CreatedAt   int64      `json:"createdAt"`
	Telemetry   *Telemetry `json:"telemetry,omitempty"`
}

// NewCaseNumber returns a display case number like 20261225-143501-A3F9.
func NewCaseNumber() string {
	now := time.Now()
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("%s-%s", now.Format("20060102-150405"), suffix)
}
