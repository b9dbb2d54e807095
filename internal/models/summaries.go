package models

import "github.com/google/uuid"

// EntityInfo is the minimal related-entity projection attached to a journal
// when the matching enrichment flag is set: id plus name, nothing else.
type EntityInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AccountInfo carries the account projection for enriched journals.
type AccountInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// AttachmentInfo carries the attachment projection for enriched journals.
type AttachmentInfo struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	Title    *string   `json:"title,omitempty"`
}
