package property

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	estatedomain "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/domain"
	estatemocks "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/mocks"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_GetRealEstate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRealEstates := estatemocks.NewMockRealEstateClient(ctrl)
	mockUnits := estatemocks.NewMockUnitClient(ctrl)
	service := NewService(mockRealEstates, mockUnits, auditing.NopRecorder{})

	t.Run("Busca as unidades quando os detalhes não trazem", func(t *testing.T) {
		mockRealEstates.EXPECT().GetRealEstate(gomock.Any(), int64(3)).
			Return(&domain.RealEstate{ID: 3, Name: "Residencial Sol"}, nil)
		mockUnits.EXPECT().ListUnits(gomock.Any(), int64(3)).
			Return([]domain.Unit{{ID: 1, RealEstateID: 3}, {ID: 2, RealEstateID: 3}}, nil)

		realEstate, err := service.GetRealEstate(context.Background(), 3)

		require.NoError(t, err)
		assert.Len(t, realEstate.Units, 2)
		assert.Equal(t, 2, realEstate.UnitsCount)
	})

	t.Run("Unidades já embutidas não geram nova chamada", func(t *testing.T) {
		mockRealEstates.EXPECT().GetRealEstate(gomock.Any(), int64(4)).
			Return(&domain.RealEstate{ID: 4, Units: []domain.Unit{{ID: 9}}}, nil)
		mockUnits.EXPECT().ListUnits(gomock.Any(), gomock.Any()).Times(0)

		realEstate, err := service.GetRealEstate(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, 1, realEstate.UnitsCount)
	})

	t.Run("Imóvel inexistente", func(t *testing.T) {
		mockRealEstates.EXPECT().GetRealEstate(gomock.Any(), int64(5)).
			Return(nil, &estatedomain.APIError{StatusCode: http.StatusNotFound, Message: "Imóvel não encontrado"})

		_, err := service.GetRealEstate(context.Background(), 5)

		actionErr, ok := usecases.AsActionError(err)
		require.True(t, ok)
		assert.Equal(t, apiErrors.ErrEstateNotFound, actionErr.Code)
		assert.Equal(t, "Imóvel não encontrado", actionErr.Notice.Message)
	})
}

func TestService_Units(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRealEstates := estatemocks.NewMockRealEstateClient(ctrl)
	mockUnits := estatemocks.NewMockUnitClient(ctrl)
	service := NewService(mockRealEstates, mockUnits, auditing.NopRecorder{})

	t.Run("Lista as unidades do imóvel", func(t *testing.T) {
		mockUnits.EXPECT().ListUnits(gomock.Any(), int64(2)).
			Return([]domain.Unit{{ID: 1}, {ID: 2}}, nil)

		page, err := service.ListUnits(context.Background(), 2, listing.Query{})

		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("Criação usa o imóvel da rota", func(t *testing.T) {
		mockUnits.EXPECT().CreateUnit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, unit *domain.Unit) (*domain.Unit, error) {
				assert.Equal(t, int64(2), unit.RealEstateID)
				unit.ID = 30
				return unit, nil
			})

		result, err := service.CreateUnit(context.Background(), 2, &domain.Unit{Number: "301", Area: 60})

		require.NoError(t, err)
		assert.Equal(t, "Unidade criada com sucesso", result.Notice.Message)
	})

	t.Run("Unidade sem área não é enviada", func(t *testing.T) {
		mockUnits.EXPECT().CreateUnit(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.CreateUnit(context.Background(), 2, &domain.Unit{Number: "302"})

		assert.ErrorIs(t, err, usecases.ErrInvalidForm)
	})

	t.Run("Exclusão recarrega as unidades do imóvel", func(t *testing.T) {
		mockUnits.EXPECT().DeleteUnit(gomock.Any(), int64(30)).Return(nil)
		mockUnits.EXPECT().ListUnits(gomock.Any(), int64(2)).Return([]domain.Unit{{ID: 1}}, nil)

		result, err := service.DeleteUnit(context.Background(), 30, 2)

		require.NoError(t, err)
		assert.Equal(t, "Unidade excluída com sucesso", result.Notice.Message)
		assert.Len(t, result.Rows, 1)
	})
}
