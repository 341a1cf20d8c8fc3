package model

type ModuleLevel string

const (
	Beginner     ModuleLevel = "beginner"
	Intermediate ModuleLevel = "intermediate"
	Advanced     ModuleLevel = "advanced"
)

const DefaultPointsReward = 10

// Levels lists the difficulty levels from easiest to hardest.
var Levels = []ModuleLevel{Beginner, Intermediate, Advanced}

func (l ModuleLevel) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Module is a learning unit. Modules are authored out of band and never
// modified through the API.
type Module struct {
	UUIDBase
	Title        string      `gorm:"size:255;not null" json:"title"`
	Level        ModuleLevel `gorm:"size:20;not null;index" json:"level"`
	Description  string      `gorm:"type:text;not null" json:"description"`
	Content      string      `gorm:"type:text;not null" json:"content"`
	PointsReward int         `gorm:"not null" json:"pointsReward"`
	Order        int         `gorm:"column:display_order;not null;default:0" json:"order"`
}

func (Module) TableName() string {
	return "modules"
}

// ModuleSummary is the list view of a module. It never carries content.
type ModuleSummary struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Level        ModuleLevel `json:"level"`
	Description  string      `json:"description"`
	PointsReward int         `json:"pointsReward"`
	Order        int         `json:"order"`
}

func (m *Module) Summary() ModuleSummary {
	return ModuleSummary{
		ID:           m.ID,
		Title:        m.Title,
		Level:        m.Level,
		Description:  m.Description,
		PointsReward: m.PointsReward,
		Order:        m.Order,
	}
}

// ModuleRef is the denormalised module shape embedded in dashboard rows.
type ModuleRef struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Level        ModuleLevel `json:"level"`
	PointsReward int         `json:"pointsReward,omitempty"`
}
