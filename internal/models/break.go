package models

// BreakInterval is a single break on a given calendar day. Start and End are
// wall-clock times of day (HH:MM:SS) interpreted against Date (YYYY-MM-DD).
type BreakInterval struct {
	ID              int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Date            string `gorm:"index;not null" json:"date"`
	Start           string `gorm:"not null" json:"start"`
	End             string `gorm:"not null" json:"end"`
	DurationMinutes int    `gorm:"not null;default:0" json:"durationMinutes"`
}

// TableName pins the table name
func (BreakInterval) TableName() string {
	return "breaks"
}
