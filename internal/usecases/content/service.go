// Package content cuida do conteúdo exibido no site: serviços, seções e mídias.
package content

import (
	"context"
	"strconv"

	"github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/estateclient"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/crud"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
)

const (
	resourceService = "service"
	resourceSection = "section"
	resourceMedia   = "media"
)

var serviceMessages = crud.Messages{
	Empty:        "Nenhum serviço cadastrado",
	FetchFailed:  "Erro ao buscar serviços",
	Created:      "Serviço criado com sucesso",
	CreateFailed: "Erro ao criar serviço",
	Updated:      "Serviço atualizado com sucesso",
	UpdateFailed: "Erro ao atualizar serviço",
	Deleted:      "Serviço excluído com sucesso",
	DeleteFailed: "Erro ao excluir serviço",
}

var sectionMessages = crud.Messages{
	Empty:        "Nenhuma seção cadastrada",
	FetchFailed:  "Erro ao buscar seções",
	Created:      "Seção criada com sucesso",
	CreateFailed: "Erro ao criar seção",
	Updated:      "Seção atualizada com sucesso",
	UpdateFailed: "Erro ao atualizar seção",
	Deleted:      "Seção excluída com sucesso",
	DeleteFailed: "Erro ao excluir seção",
}

var mediaMessages = crud.Messages{
	Empty:        "Nenhuma mídia enviada",
	FetchFailed:  "Erro ao buscar mídias",
	Created:      "Mídia enviada com sucesso",
	CreateFailed: "Erro ao enviar mídia",
	Updated:      "Mídia atualizada com sucesso",
	UpdateFailed: "Erro ao atualizar mídia",
	Deleted:      "Mídia excluída com sucesso",
	DeleteFailed: "Erro ao excluir mídia",
}

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type ContentService interface {
	Services() *crud.Resource[domain.Service]
	Sections() *crud.Resource[domain.Section]
	ListMedia(ctx context.Context, q listing.Query) (listing.Page[domain.Media], error)
	UploadMedia(ctx context.Context, upload *domain.MediaUpload) (*domain.FormResult[domain.Media], error)
	UpdateMedia(ctx context.Context, id int64, media *domain.Media) (*domain.FormResult[domain.Media], error)
	DeleteMedia(ctx context.Context, id int64) (*domain.ActionResult[domain.Media], error)
}

type Service struct {
	mediaClient estateclient.MediaClient
	recorder    auditing.Recorder

	services *crud.Resource[domain.Service]
	sections *crud.Resource[domain.Section]
	media    *crud.Resource[domain.Media]
}

func NewService(
	serviceClient estateclient.ServiceCatalogClient,
	sectionClient estateclient.SectionClient,
	mediaClient estateclient.MediaClient,
	recorder auditing.Recorder,
) ContentService {
	if recorder == nil {
		recorder = auditing.NopRecorder{}
	}

	return &Service{
		mediaClient: mediaClient,
		recorder:    recorder,
		services: crud.NewResource(resourceService, crud.Backend[domain.Service]{
			List:   serviceClient.ListServices,
			Create: serviceClient.CreateService,
			Update: serviceClient.UpdateService,
			Delete: serviceClient.DeleteService,
			SetID:  (*domain.Service).SetID,
			IDOf:   (*domain.Service).GetID,
		}, serviceMessages, recorder),
		sections: crud.NewResource(resourceSection, crud.Backend[domain.Section]{
			List:   sectionClient.ListSections,
			Create: sectionClient.CreateSection,
			Update: sectionClient.UpdateSection,
			Delete: sectionClient.DeleteSection,
			SetID:  (*domain.Section).SetID,
			IDOf:   (*domain.Section).GetID,
		}, sectionMessages, recorder),
		media: crud.NewResource(resourceMedia, crud.Backend[domain.Media]{
			List:   mediaClient.ListMedia,
			Update: mediaClient.UpdateMedia,
			Delete: mediaClient.DeleteMedia,
			SetID:  (*domain.Media).SetID,
			IDOf:   (*domain.Media).GetID,
		}, mediaMessages, recorder),
	}
}

func (s *Service) Services() *crud.Resource[domain.Service] {
	return s.services
}

func (s *Service) Sections() *crud.Resource[domain.Section] {
	return s.sections
}

func (s *Service) ListMedia(ctx context.Context, q listing.Query) (listing.Page[domain.Media], error) {
	return s.media.List(ctx, q)
}

// UploadMedia repassa o arquivo recebido em multipart ao backend
func (s *Service) UploadMedia(ctx context.Context, upload *domain.MediaUpload) (*domain.FormResult[domain.Media], error) {
	if err := usecases.Validate(upload); err != nil {
		return nil, err
	}

	media, err := s.mediaClient.UploadMedia(ctx, upload)
	if err != nil {
		return nil, s.media.Failure(ctx, auditing.ActionCreate, "", err, mediaMessages.CreateFailed)
	}

	resourceID := ""
	if media.ID > 0 {
		resourceID = strconv.FormatInt(media.ID, 10)
	}
	s.recorder.Record(ctx, auditing.ActionCreate, resourceMedia, resourceID)

	return &domain.FormResult[domain.Media]{
		Notice: domain.Success(mediaMessages.Created),
		Data:   media,
	}, nil
}

func (s *Service) UpdateMedia(ctx context.Context, id int64, media *domain.Media) (*domain.FormResult[domain.Media], error) {
	return s.media.Update(ctx, id, media)
}

func (s *Service) DeleteMedia(ctx context.Context, id int64) (*domain.ActionResult[domain.Media], error) {
	return s.media.Delete(ctx, id)
}
