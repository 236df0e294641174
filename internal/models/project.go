package models

type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "devam-ediyor"
	ProjectTender    ProjectStatus = "ihale"
	ProjectDesign    ProjectStatus = "proje"
	ProjectMeeting   ProjectStatus = "gorusme"
	ProjectCompleted ProjectStatus = "tamamlandi"
	ProjectCancelled ProjectStatus = "iptal"
)

var ProjectStatuses = []ProjectStatus{
	ProjectOngoing,
	ProjectTender,
	ProjectDesign,
	ProjectMeeting,
	ProjectCompleted,
	ProjectCancelled,
}

func (s ProjectStatus) Valid() bool {
	for _, v := range ProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Customer    string        `json:"customer"`
	Status      ProjectStatus `json:"status"`
	Description string        `json:"description"`

	// Eski kayıtlarla uyumluluk için tutulan alanlar
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Progress    float64 `json:"progress"`
	Budget      float64 `json:"budget"`
	Responsible string  `json:"responsible"`
}

func (p *Project) RecordID() string      { return p.ID }
func (p *Project) SetRecordID(id string) { p.ID = id }
func (p *Project) Normalize()            {}

func (p *Project) Validate() []string {
	var errs []string
	if blank(p.Name) {
		errs = append(errs, "Proje adı boş olamaz")
	}
	if blank(p.Customer) {
		errs = append(errs, "Müşteri adı boş olamaz")
	}
	if p.Status == "" {
		errs = append(errs, "Durum seçilmelidir")
	} else if !p.Status.Valid() {
		errs = append(errs, "Proje durumu geçersiz")
	}
	return errs
}
