package staffservice

// Specialist модель специалиста из справочника персонала
type Specialist struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
