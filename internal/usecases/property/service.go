package property

import (
	"context"
	"strconv"

	"github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/estateclient"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/crud"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
)

const (
	resourceRealEstate = "realestate"
	resourceUnit       = "unit"
)

var realEstateMessages = crud.Messages{
	Empty:        "Nenhum imóvel cadastrado",
	FetchFailed:  "Erro ao buscar imóveis",
	Created:      "Imóvel criado com sucesso",
	CreateFailed: "Erro ao criar imóvel",
	Updated:      "Imóvel atualizado com sucesso",
	UpdateFailed: "Erro ao atualizar imóvel",
	Deleted:      "Imóvel excluído com sucesso",
	DeleteFailed: "Erro ao excluir imóvel",
}

var unitMessages = crud.Messages{
	Empty:        "Nenhuma unidade cadastrada",
	FetchFailed:  "Erro ao buscar unidades",
	Created:      "Unidade criada com sucesso",
	CreateFailed: "Erro ao criar unidade",
	Updated:      "Unidade atualizada com sucesso",
	UpdateFailed: "Erro ao atualizar unidade",
	Deleted:      "Unidade excluída com sucesso",
	DeleteFailed: "Erro ao excluir unidade",
}

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type PropertyService interface {
	ListRealEstates(ctx context.Context, q listing.Query) (listing.Page[domain.RealEstate], error)
	GetRealEstate(ctx context.Context, id int64) (*domain.RealEstate, error)
	CreateRealEstate(ctx context.Context, realEstate *domain.RealEstate) (*domain.FormResult[domain.RealEstate], error)
	UpdateRealEstate(ctx context.Context, id int64, realEstate *domain.RealEstate) (*domain.FormResult[domain.RealEstate], error)
	DeleteRealEstate(ctx context.Context, id int64) (*domain.ActionResult[domain.RealEstate], error)

	ListUnits(ctx context.Context, realEstateID int64, q listing.Query) (listing.Page[domain.Unit], error)
	CreateUnit(ctx context.Context, realEstateID int64, unit *domain.Unit) (*domain.FormResult[domain.Unit], error)
	UpdateUnit(ctx context.Context, id int64, unit *domain.Unit) (*domain.FormResult[domain.Unit], error)
	DeleteUnit(ctx context.Context, id, realEstateID int64) (*domain.ActionResult[domain.Unit], error)
}

type Service struct {
	realEstateClient estateclient.RealEstateClient
	unitClient       estateclient.UnitClient
	realEstates      *crud.Resource[domain.RealEstate]
	recorder         auditing.Recorder
}

func NewService(
	realEstateClient estateclient.RealEstateClient,
	unitClient estateclient.UnitClient,
	recorder auditing.Recorder,
) PropertyService {
	return &Service{
		realEstateClient: realEstateClient,
		unitClient:       unitClient,
		recorder:         recorder,
		realEstates: crud.NewResource(resourceRealEstate, crud.Backend[domain.RealEstate]{
			List:   realEstateClient.ListRealEstates,
			Create: realEstateClient.CreateRealEstate,
			Update: realEstateClient.UpdateRealEstate,
			Delete: realEstateClient.DeleteRealEstate,
			SetID:  (*domain.RealEstate).SetID,
			IDOf:   (*domain.RealEstate).GetID,
		}, realEstateMessages, recorder),
	}
}

// units monta o recurso de unidades de um imóvel; zero lista todas
func (s *Service) units(realEstateID int64) *crud.Resource[domain.Unit] {
	return crud.NewResource(resourceUnit, crud.Backend[domain.Unit]{
		List: func(ctx context.Context) ([]domain.Unit, error) {
			return s.unitClient.ListUnits(ctx, realEstateID)
		},
		Create: s.unitClient.CreateUnit,
		Update: s.unitClient.UpdateUnit,
		Delete: s.unitClient.DeleteUnit,
		SetID:  (*domain.Unit).SetID,
		IDOf:   (*domain.Unit).GetID,
	}, unitMessages, s.recorder)
}

func (s *Service) ListRealEstates(ctx context.Context, q listing.Query) (listing.Page[domain.RealEstate], error) {
	return s.realEstates.List(ctx, q)
}

// GetRealEstate traz os detalhes do imóvel junto com suas unidades
func (s *Service) GetRealEstate(ctx context.Context, id int64) (*domain.RealEstate, error) {
	if id <= 0 {
		return nil, usecases.NewActionError(usecases.ErrInvalidID, apiErrors.ErrInvalidRequest, "Imóvel inválido")
	}

	realEstate, err := s.realEstateClient.GetRealEstate(ctx, id)
	if err != nil {
		return nil, s.realEstates.Failure(ctx, "details", strconv.FormatInt(id, 10), err, "Erro ao buscar detalhes do imóvel")
	}

	if len(realEstate.Units) == 0 {
		units, err := s.unitClient.ListUnits(ctx, id)
		if err != nil {
			return nil, s.realEstates.Failure(ctx, "details", strconv.FormatInt(id, 10), err, unitMessages.FetchFailed)
		}
		realEstate.Units = units
	}
	realEstate.UnitsCount = len(realEstate.Units)

	return realEstate, nil
}

func (s *Service) CreateRealEstate(ctx context.Context, realEstate *domain.RealEstate) (*domain.FormResult[domain.RealEstate], error) {
	return s.realEstates.Create(ctx, realEstate)
}

func (s *Service) UpdateRealEstate(ctx context.Context, id int64, realEstate *domain.RealEstate) (*domain.FormResult[domain.RealEstate], error) {
	return s.realEstates.Update(ctx, id, realEstate)
}

func (s *Service) DeleteRealEstate(ctx context.Context, id int64) (*domain.ActionResult[domain.RealEstate], error) {
	return s.realEstates.Delete(ctx, id)
}

func (s *Service) ListUnits(ctx context.Context, realEstateID int64, q listing.Query) (listing.Page[domain.Unit], error) {
	return s.units(realEstateID).List(ctx, q)
}

func (s *Service) CreateUnit(ctx context.Context, realEstateID int64, unit *domain.Unit) (*domain.FormResult[domain.Unit], error) {
	if realEstateID > 0 {
		unit.RealEstateID = realEstateID
	}
	return s.units(unit.RealEstateID).Create(ctx, unit)
}

func (s *Service) UpdateUnit(ctx context.Context, id int64, unit *domain.Unit) (*domain.FormResult[domain.Unit], error) {
	return s.units(unit.RealEstateID).Update(ctx, id, unit)
}

// DeleteUnit exclui a unidade e recarrega as unidades do imóvel informado
func (s *Service) DeleteUnit(ctx context.Context, id, realEstateID int64) (*domain.ActionResult[domain.Unit], error) {
	return s.units(realEstateID).Delete(ctx, id)
}
