package phase

type PhaseInput struct {
	Name        string `json:"phase_main_name" binding:"required,notblank,max=255"`
	Description string `json:"phase_main_description"`
	StartDate   string `json:"phase_start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"phase_end_date" binding:"omitempty,datetime=2006-01-02"`
}

type SavePhasesDTO struct {
	MasterID uint         `json:"project_master_id" binding:"required"`
	Phases   []PhaseInput `json:"phases" binding:"required,min=1,dive"`
}

type StartPhaseDTO struct {
	PhaseMainID   uint `json:"phase_main_id" binding:"required"`
	ProjectMainID uint `json:"project_main_id" binding:"required"`
}

type PhaseProjectRefDTO struct {
	PhaseProjectID uint `json:"phase_project_id" binding:"required"`
}

type RequestRevisionDTO struct {
	PhaseProjectID uint   `json:"phase_project_id" binding:"required"`
	FeedbackText   string `json:"revision_feedback" binding:"required,notblank"`
	OriginalFile   string `json:"revision_file_original" binding:"required,notblank"`
}

// FulfillRevisionDTO answers a revision request. An empty revision_file_revised
// is rejected as a validation error (400); an unknown revision_phase_id is 404.
type FulfillRevisionDTO struct {
	RevisionID  uint   `json:"revision_phase_id" binding:"required"`
	RevisedFile string `json:"revision_file_revised"`
}

type DecidePhaseDTO struct {
	PhaseProjectID uint  `json:"phase_project_id" binding:"required"`
	Approve        *bool `json:"approve" binding:"required"`
}

type DiscussionDTO struct {
	PhaseProjectID uint   `json:"phase_project_id" binding:"required"`
	Text           string `json:"discussion_text" binding:"required,notblank"`
}

type UploadFileDTO struct {
	PhaseProjectID uint   `json:"phase_project_id" binding:"required"`
	FileName       string `json:"file_name" binding:"required,notblank,max=255"`
	Content        string `json:"content_base64" binding:"required,base64"`
}

type PhaseDetailByTemplateDTO struct {
	PhaseMainID   uint `json:"phase_main_id" binding:"required"`
	ProjectMainID uint `json:"project_main_id" binding:"required"`
}
