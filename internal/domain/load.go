package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LoadStats summarizes one load invocation.
type LoadStats struct {
	Patch     string `json:"patch"`
	Champions int    `json:"champions"`
	Tags      int    `json:"tags"`
	ModsRows  int    `json:"modsRows"`
	SpellRows int    `json:"spellRows"`
	Shape     string `json:"shape,omitempty"`
	Source    string `json:"source,omitempty"`
}

// PatchLoad is the audit record of a committed load.
type PatchLoad struct {
	ID       uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Patch    string         `json:"patch" gorm:"not null;index"`
	Source   string         `json:"source"`
	Stats    datatypes.JSON `json:"stats"`
	LoadedAt time.Time      `json:"loadedAt" gorm:"not null;index"`
}

func (PatchLoad) TableName() string { return "patch_loads" }
