package service

import (
	"context"
	"errors"
	"testing"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGalleryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGalleryRepository(ctrl)
	svc := NewGalleryService(repo, newTestLogger())
	owner := mustAddr(t, primaryAddr)

	repo.EXPECT().List(gomock.Any(), owner).Return(nil, nil)
	records, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	want := []domain.AssetRecord{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	repo.EXPECT().List(gomock.Any(), owner).Return(want, nil)
	records, err = svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, want, records)

	repo.EXPECT().List(gomock.Any(), owner).Return(nil, errors.New("boom"))
	_, err = svc.List(context.Background(), owner)
	assertAppError(t, err, "SYS_001")
}

func TestGalleryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGalleryRepository(ctrl)
	svc := NewGalleryService(repo, newTestLogger())
	owner := mustAddr(t, primaryAddr)

	repo.EXPECT().Remove(gomock.Any(), owner, int64(7)).Return(true, nil)
	require.NoError(t, svc.Delete(context.Background(), owner, 7))

	repo.EXPECT().Remove(gomock.Any(), owner, int64(8)).Return(false, nil)
	require.NoError(t, svc.Delete(context.Background(), owner, 8), "unknown ids are ignored")

	repo.EXPECT().Remove(gomock.Any(), owner, int64(9)).Return(false, errors.New("boom"))
	assertAppError(t, svc.Delete(context.Background(), owner, 9), "SYS_001")
}
