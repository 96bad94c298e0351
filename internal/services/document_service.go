package services

import (
	"context"
	"mime/multipart"

	"marlink_backend/internal/models"
	"marlink_backend/internal/repositories"
	"marlink_backend/internal/services/dto"
	"marlink_backend/pkg/apperrors"
)

type DocumentService interface {
	// Downloadable documents
	ListDocs(category string) ([]models.DownloadDoc, error)
	GetDoc(id string) (*models.DownloadDoc, error)
	CreateDoc(ctx context.Context, req *dto.DownloadDocRequest, file *multipart.FileHeader, uploaderID string) (*models.DownloadDoc, error)
	UpdateDoc(ctx context.Context, id string, req *dto.DownloadDocRequest, file *multipart.FileHeader) (*models.DownloadDoc, error)
	DeleteDoc(ctx context.Context, id string) error

	// Sailing schedule (one current file)
	GetSchedule() (*models.ScheduleFile, error)
	ReplaceSchedule(ctx context.Context, req *dto.ScheduleFileRequest, file *multipart.FileHeader, uploaderID string) (*models.ScheduleFile, error)
	DeleteSchedule(ctx context.Context) error
}

type DocumentServiceImpl struct {
	docRepo repositories.DocumentRepository
	uploads UploadService
}

func NewDocumentService(docRepo repositories.DocumentRepository, uploads UploadService) DocumentService {
	return &DocumentServiceImpl{
		docRepo: docRepo,
		uploads: uploads,
	}
}

func (s *DocumentServiceImpl) ListDocs(category string) ([]models.DownloadDoc, error) {
	docs, err := s.docRepo.FindAllDocs(category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range docs {
		docs[i].FileURL = s.uploads.URL(context.Background(), docs[i].FilePath)
	}
	return docs, nil
}

func (s *DocumentServiceImpl) GetDoc(id string) (*models.DownloadDoc, error) {
	doc, err := s.docRepo.FindDocByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDownloadDocNotFound) {
			return nil, apperrors.NewNotFoundError("download-docs", "Document not found")
		}
		return nil, apperrors.InternalError(err)
	}
	doc.FileURL = s.uploads.URL(context.Background(), doc.FilePath)
	return doc, nil
}

func (s *DocumentServiceImpl) CreateDoc(ctx context.Context, req *dto.DownloadDocRequest, file *multipart.FileHeader, uploaderID string) (*models.DownloadDoc, error) {
	if file == nil {
		return nil, apperrors.ValidationError(map[string]string{"file": "This field is required"})
	}

	path, err := s.uploads.SaveFile(ctx, file, "docs")
	if err != nil {
		return nil, err
	}

	doc := &models.DownloadDoc{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		FilePath:    path,
		UploadedBy:  uploaderID,
	}

	if err := s.docRepo.CreateDoc(doc); err != nil {
		_ = s.uploads.DeleteFile(ctx, path)
		return nil, apperrors.InternalError(err)
	}

	doc.FileURL = s.uploads.URL(ctx, doc.FilePath)
	return doc, nil
}

func (s *DocumentServiceImpl) UpdateDoc(ctx context.Context, id string, req *dto.DownloadDocRequest, file *multipart.FileHeader) (*models.DownloadDoc, error) {
	doc, err := s.GetDoc(id)
	if err != nil {
		return nil, err
	}

	oldPath := doc.FilePath
	if file != nil {
		path, err := s.uploads.SaveFile(ctx, file, "docs")
		if err != nil {
			return nil, err
		}
		doc.FilePath = path
	}

	doc.Title = req.Title
	doc.Description = req.Description
	doc.Category = req.Category

	if err := s.docRepo.UpdateDoc(doc); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if file != nil && oldPath != doc.FilePath {
		_ = s.uploads.DeleteFile(ctx, oldPath)
	}

	doc.FileURL = s.uploads.URL(ctx, doc.FilePath)
	return doc, nil
}

func (s *DocumentServiceImpl) DeleteDoc(ctx context.Context, id string) error {
	doc, err := s.GetDoc(id)
	if err != nil {
		return err
	}

	if err := s.docRepo.DeleteDoc(id); err != nil {
		return apperrors.InternalError(err)
	}

	_ = s.uploads.DeleteFile(ctx, doc.FilePath)
	return nil
}

func (s *DocumentServiceImpl) GetSchedule() (*models.ScheduleFile, error) {
	file, err := s.docRepo.GetSchedule()
	if err != nil {
		if apperrors.Is(err, repositories.ErrScheduleFileNotFound) {
			return nil, apperrors.NewNotFoundError("schedule-file", "No schedule uploaded yet")
		}
		return nil, apperrors.InternalError(err)
	}
	file.FileURL = s.uploads.URL(context.Background(), file.FilePath)
	return file, nil
}

func (s *DocumentServiceImpl) ReplaceSchedule(ctx context.Context, req *dto.ScheduleFileRequest, file *multipart.FileHeader, uploaderID string) (*models.ScheduleFile, error) {
	if file == nil {
		return nil, apperrors.ValidationError(map[string]string{"file": "This field is required"})
	}

	old, _ := s.docRepo.GetSchedule()

	path, err := s.uploads.SaveFile(ctx, file, "schedule")
	if err != nil {
		return nil, err
	}

	schedule := &models.ScheduleFile{
		Title:      req.Title,
		FilePath:   path,
		UploadedBy: uploaderID,
	}

	if err := s.docRepo.ReplaceSchedule(schedule); err != nil {
		_ = s.uploads.DeleteFile(ctx, path)
		return nil, apperrors.InternalError(err)
	}

	if old != nil {
		_ = s.uploads.DeleteFile(ctx, old.FilePath)
	}

	schedule.FileURL = s.uploads.URL(ctx, schedule.FilePath)
	return schedule, nil
}

func (s *DocumentServiceImpl) DeleteSchedule(ctx context.Context) error {
	old, err := s.GetSchedule()
	if err != nil {
		return err
	}

	if err := s.docRepo.DeleteSchedule(); err != nil {
		return apperrors.InternalError(err)
	}

	_ = s.uploads.DeleteFile(ctx, old.FilePath)
	return nil
}
