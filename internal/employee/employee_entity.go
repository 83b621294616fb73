package employee

// Employee is the persisted record. The id is assigned by the database on
// creation and immutable afterwards.
type Employee struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"not null"`
	Salary     int    `gorm:"not null"`
	Department string `gorm:"not null"`
}
