// ABOUTME: Complaint is the source document loaded from the complaints dataset
// ABOUTME: Read-only input to chunking; narrative text is pre-cleaned upstream
package models

// Complaint represents a single customer complaint narrative
type Complaint struct {
	ComplaintID string `json:"complaint_id"`
	Product     string `json:"product"`
	Narrative   string `json:"narrative"`
}
