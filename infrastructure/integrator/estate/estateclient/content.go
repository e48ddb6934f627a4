package estateclient

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/estate-admin-api/internal/domain"
)

//go:generate mockgen -source=content.go -destination=../mocks/content.go -package=mocks

type ServiceCatalogClient interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error
}

type SectionClient interface {
	ListSections(ctx context.Context) ([]domain.Section, error)
	CreateSection(ctx context.Context, section *domain.Section) (*domain.Section, error)
	UpdateSection(ctx context.Context, section *domain.Section) (*domain.Section, error)
	DeleteSection(ctx context.Context, id int64) error
}

type MediaClient interface {
	ListMedia(ctx context.Context) ([]domain.Media, error)
	UploadMedia(ctx context.Context, upload *domain.MediaUpload) (*domain.Media, error)
	UpdateMedia(ctx context.Context, media *domain.Media) (*domain.Media, error)
	DeleteMedia(ctx context.Context, id int64) error
}

func (c *EstateClient) ListServices(ctx context.Context) ([]domain.Service, error) {
	return list[domain.Service](ctx, c, pathServices, nil)
}

func (c *EstateClient) CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	return save(ctx, c, http.MethodPost, pathCreateService, service)
}

func (c *EstateClient) UpdateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	return save(ctx, c, http.MethodPut, pathEditService, service)
}

func (c *EstateClient) DeleteService(ctx context.Context, id int64) error {
	return remove(ctx, c, pathDeleteService, id)
}

func (c *EstateClient) ListSections(ctx context.Context) ([]domain.Section, error) {
	return list[domain.Section](ctx, c, pathSections, nil)
}

func (c *EstateClient) CreateSection(ctx context.Context, section *domain.Section) (*domain.Section, error) {
	return save(ctx, c, http.MethodPost, pathCreateSection, section)
}

func (c *EstateClient) UpdateSection(ctx context.Context, section *domain.Section) (*domain.Section, error) {
	return save(ctx, c, http.MethodPut, pathEditSection, section)
}

func (c *EstateClient) DeleteSection(ctx context.Context, id int64) error {
	return remove(ctx, c, pathDeleteSection, id)
}

func (c *EstateClient) ListMedia(ctx context.Context) ([]domain.Media, error) {
	return list[domain.Media](ctx, c, pathMedia, nil)
}

// UploadMedia repassa o arquivo ao backend como multipart/form-data
func (c *EstateClient) UploadMedia(ctx context.Context, upload *domain.MediaUpload) (*domain.Media, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"section_id": strconv.FormatInt(upload.SectionID, 10),
		"title":      upload.Title,
		"type":       upload.Type,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, errors.Wrapf(err, "erro ao escrever campo %s", name)
		}
	}

	part, err := writer.CreateFormFile("file", upload.FileName)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar parte do arquivo")
	}
	if _, err := io.Copy(part, upload.File); err != nil {
		return nil, errors.Wrap(err, "erro ao copiar arquivo")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar multipart")
	}

	media := &domain.Media{
		SectionID: upload.SectionID,
		Title:     upload.Title,
		Type:      upload.Type,
		FileName:  upload.FileName,
	}

	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        pathCreateMedia,
		rawBody:     body,
		contentType: writer.FormDataContentType(),
	}, media)
	if err != nil {
		return nil, err
	}

	return media, nil
}

func (c *EstateClient) UpdateMedia(ctx context.Context, media *domain.Media) (*domain.Media, error) {
	return save(ctx, c, http.MethodPut, pathEditMedia, media)
}

func (c *EstateClient) DeleteMedia(ctx context.Context, id int64) error {
	return remove(ctx, c, pathDeleteMedia, id)
}
