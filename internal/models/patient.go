package models

// Patient is a ward patient. Only RoomNumber and CareNotes change after creation.
type Patient struct {
	BaseModel
	Name          string `gorm:"size:200;not null;index" json:"patientName"`
	Age           int    `gorm:"not null" json:"age"`
	RoomNumber    string `gorm:"size:50" json:"roomNumber"`
	AssignedNurse string `gorm:"size:100;not null" json:"assignedNurse"`
	CareNotes     string `gorm:"type:text" json:"careNotes"`
}
