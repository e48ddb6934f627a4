package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	estatemocks "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/mocks"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	auditmocks "github.com/vfg2006/estate-admin-api/internal/usecases/auditing/mocks"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	"go.uber.org/mock/gomock"
)

func TestService_UploadMedia(t *testing.T) {
	tests := []struct {
		name    string
		upload  *domain.MediaUpload
		setup   func(media *estatemocks.MockMediaClient, recorder *auditmocks.MockRecorder)
		wantErr bool
	}{
		{
			name:   "Sem arquivo não chama o backend",
			upload: &domain.MediaUpload{SectionID: 1, Title: "Fachada", FileName: "fachada.jpg"},
			setup: func(media *estatemocks.MockMediaClient, recorder *auditmocks.MockRecorder) {
				media.EXPECT().UploadMedia(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: true,
		},
		{
			name:   "Sem título não chama o backend",
			upload: &domain.MediaUpload{SectionID: 1, FileName: "fachada.jpg", File: strings.NewReader("x")},
			setup: func(media *estatemocks.MockMediaClient, recorder *auditmocks.MockRecorder) {
				media.EXPECT().UploadMedia(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: true,
		},
		{
			name:   "Envio registra auditoria",
			upload: &domain.MediaUpload{SectionID: 1, Title: "Fachada", FileName: "fachada.jpg", File: strings.NewReader("x")},
			setup: func(media *estatemocks.MockMediaClient, recorder *auditmocks.MockRecorder) {
				media.EXPECT().UploadMedia(gomock.Any(), gomock.Any()).
					Return(&domain.Media{ID: 40, SectionID: 1, Title: "Fachada"}, nil)
				recorder.EXPECT().Record(gomock.Any(), auditing.ActionCreate, "media", "40")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockServices := estatemocks.NewMockServiceCatalogClient(ctrl)
			mockSections := estatemocks.NewMockSectionClient(ctrl)
			mockMedia := estatemocks.NewMockMediaClient(ctrl)
			mockRecorder := auditmocks.NewMockRecorder(ctrl)
			tt.setup(mockMedia, mockRecorder)

			service := NewService(mockServices, mockSections, mockMedia, mockRecorder)
			result, err := service.UploadMedia(context.Background(), tt.upload)

			if tt.wantErr {
				assert.ErrorIs(t, err, usecases.ErrInvalidForm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, mediaMessages.Created, result.Notice.Message)
			assert.Equal(t, int64(40), result.Data.ID)
		})
	}
}

func TestService_Sections(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSections := estatemocks.NewMockSectionClient(ctrl)
	service := NewService(estatemocks.NewMockServiceCatalogClient(ctrl), mockSections, estatemocks.NewMockMediaClient(ctrl), nil)

	mockSections.EXPECT().ListSections(gomock.Any()).
		Return([]domain.Section{{ID: 1, Name: "Destaques", Position: 2}, {ID: 2, Name: "Lançamentos", Position: 1}}, nil)

	page, err := service.Sections().List(context.Background(), listing.Query{Sort: "position"})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Lançamentos", page.Items[0].Name)
}
