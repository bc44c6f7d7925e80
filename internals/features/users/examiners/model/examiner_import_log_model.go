// file: internals/features/users/examiners/model/examiner_import_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExaminerImportLogModel records one CSV bulk import: counts plus the
// per-row error report, kept as JSON for the admin UI to render.
type ExaminerImportLogModel struct {
	ExaminerImportLogID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:examiner_import_log_id" json:"examiner_import_log_id"`
	ExaminerImportLogSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:examiner_import_log_school_id" json:"examiner_import_log_school_id"`

	ExaminerImportLogFileName string `gorm:"type:varchar(255);column:examiner_import_log_file_name" json:"examiner_import_log_file_name"`

	ExaminerImportLogTotalRows int `gorm:"not null;column:examiner_import_log_total_rows" json:"examiner_import_log_total_rows"`
	ExaminerImportLogCreated   int `gorm:"not null;column:examiner_import_log_created" json:"examiner_import_log_created"`
	ExaminerImportLogFailed    int `gorm:"not null;column:examiner_import_log_failed" json:"examiner_import_log_failed"`

	ExaminerImportLogReport datatypes.JSON `gorm:"type:jsonb;column:examiner_import_log_report" json:"examiner_import_log_report,omitempty"`

	ExaminerImportLogCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:examiner_import_log_created_by" json:"examiner_import_log_created_by"`
	ExaminerImportLogCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:examiner_import_log_created_at" json:"examiner_import_log_created_at"`
}

func (ExaminerImportLogModel) TableName() string { return "examiner_import_logs" }
