package models

import (
	"time"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelEntry, LevelMid, LevelSenior, LevelExecutive:
		return true
	}
	return false
}

type AnalysisDepth string

const (
	DepthQuick    AnalysisDepth = "quick"
	DepthStandard AnalysisDepth = "standard"
	DepthDeep     AnalysisDepth = "deep"
)

func (d AnalysisDepth) Valid() bool {
	switch d {
	case DepthQuick, DepthStandard, DepthDeep:
		return true
	}
	return false
}

// AnalysisRecord is the analytics row persisted for every completed
// analysis. The full result is kept as serialized JSON next to the
// headline scores so history queries stay cheap.
type AnalysisRecord struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID      *uuid.UUID `gorm:"type:uuid" json:"document_id,omitempty"`
	Industry        string     `gorm:"type:text" json:"industry"`
	ExperienceLevel string     `gorm:"type:text" json:"experience_level"`
	AnalysisDepth   string     `gorm:"type:text" json:"analysis_depth"`
	OverallScore    float64    `gorm:"type:decimal(5,2)" json:"overall_score"`
	KeywordScore    float64    `gorm:"type:decimal(5,2)" json:"keyword_score"`
	ATSScore        float64    `gorm:"type:decimal(5,2)" json:"ats_score"`
	ResultJSON      string     `gorm:"type:jsonb" json:"-"`
	DurationMs      int64      `gorm:"type:bigint" json:"duration_ms"`
	CreatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AnalysisRecord) TableName() string {
	return "analysis_records"
}
