package models

// Event is the canonical natural-event record. Every persisted row
// satisfies all six field constraints; ID is assigned by the store on
// creation and never reused after deletion.
type Event struct {
	ID        uint64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string   `gorm:"type:varchar(255);not null" json:"title"`
	Date      Date     `gorm:"type:date;not null;index" json:"date"`
	Category  Category `gorm:"type:varchar(50);not null;index" json:"category"`
	Longitude float64  `gorm:"not null" json:"longitude"`
	Latitude  float64  `gorm:"not null" json:"latitude"`
	Status    Status   `gorm:"type:varchar(50);not null;index" json:"status"`
}

func (Event) TableName() string {
	return "events"
}
