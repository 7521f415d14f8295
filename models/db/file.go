package dbmodels

// FileMeta метаданные файла в S3
type FileMeta struct {
	BaseModel
	OwnerID     string `gorm:"type:varchar(36);index"`
	Name        string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(100)"`
	Size        int64
	ObjectKey   string `gorm:"type:varchar(255)"` // ключ объекта в бакете
}
