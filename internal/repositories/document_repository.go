package repositories

import (
	"errors"

	"marlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDownloadDocNotFound  = errors.New("download doc not found")
	ErrScheduleFileNotFound = errors.New("schedule file not found")
)

type DocumentRepository interface {
	// DownloadDoc operations
	FindAllDocs(category string) ([]models.DownloadDoc, error)
	FindDocByID(id string) (*models.DownloadDoc, error)
	CreateDoc(doc *models.DownloadDoc) error
	UpdateDoc(doc *models.DownloadDoc) error
	DeleteDoc(id string) error

	// ScheduleFile operations (singleton-style: one current schedule)
	GetSchedule() (*models.ScheduleFile, error)
	ReplaceSchedule(file *models.ScheduleFile) error
	DeleteSchedule() error
}

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) FindAllDocs(category string) ([]models.DownloadDoc, error) {
	var docs []models.DownloadDoc
	query := r.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) FindDocByID(id string) (*models.DownloadDoc, error) {
	var doc models.DownloadDoc
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDownloadDocNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) CreateDoc(doc *models.DownloadDoc) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepositoryImpl) UpdateDoc(doc *models.DownloadDoc) error {
	result := r.db.Model(&models.DownloadDoc{}).Where("id = ?", doc.ID).Updates(map[string]interface{}{
		"title":       doc.Title,
		"description": doc.Description,
		"category":    doc.Category,
		"file_path":   doc.FilePath,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDownloadDocNotFound
	}
	return nil
}

func (r *DocumentRepositoryImpl) DeleteDoc(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.DownloadDoc{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDownloadDocNotFound
	}
	return nil
}

func (r *DocumentRepositoryImpl) GetSchedule() (*models.ScheduleFile, error) {
	var file models.ScheduleFile
	err := r.db.Order("created_at DESC").First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleFileNotFound
		}
		return nil, err
	}
	return &file, nil
}

// ReplaceSchedule drops any previous schedule rows and inserts the new one.
func (r *DocumentRepositoryImpl) ReplaceSchedule(file *models.ScheduleFile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ScheduleFile{}).Error; err != nil {
			return err
		}
		return tx.Create(file).Error
	})
}

func (r *DocumentRepositoryImpl) DeleteSchedule() error {
	result := r.db.Where("1 = 1").Delete(&models.ScheduleFile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleFileNotFound
	}
	return nil
}
