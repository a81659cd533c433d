package services

import (
	"context"
	"testing"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateImageDropsListCache(t *testing.T) {
	properties := seedProperties(1)
	repo := newFakePropertyRepo(properties)
	cacheFake := newFakeCache()
	imageRepo := &fakeImageRepo{images: map[string][]models.PropertyImage{}}
	svc := NewPropertyImageService(imageRepo, repo, cacheFake, validators.NewPropertyImageValidator())

	cacheFake.lists["properties:-:-:-:-:1:10"] = &models.PaginatedResult[models.Property]{}

	image, err := svc.CreateImage(context.Background(), &models.CreatePropertyImageRequest{
		IDProperty: properties[0].ID.Hex(),
		File:       "https://cdn.example.com/front.jpg",
		Enabled:    true,
	})
	require.NoError(t, err)
	assert.True(t, image.Enabled)
	assert.Empty(t, cacheFake.lists)
}

func TestCreateDisabledImageKeepsListCache(t *testing.T) {
	properties := seedProperties(1)
	repo := newFakePropertyRepo(properties)
	cacheFake := newFakeCache()
	imageRepo := &fakeImageRepo{images: map[string][]models.PropertyImage{}}
	svc := NewPropertyImageService(imageRepo, repo, cacheFake, validators.NewPropertyImageValidator())

	cacheFake.lists["properties:-:-:-:-:1:10"] = &models.PaginatedResult[models.Property]{}

	_, err := svc.CreateImage(context.Background(), &models.CreatePropertyImageRequest{
		IDProperty: properties[0].ID.Hex(),
		File:       "https://cdn.example.com/draft.jpg",
		Enabled:    false,
	})
	require.NoError(t, err)
	assert.Len(t, cacheFake.lists, 1)
}

func TestCreateImageUnknownProperty(t *testing.T) {
	repo := newFakePropertyRepo(nil)
	imageRepo := &fakeImageRepo{images: map[string][]models.PropertyImage{}}
	svc := NewPropertyImageService(imageRepo, repo, newFakeCache(), validators.NewPropertyImageValidator())

	_, err := svc.CreateImage(context.Background(), &models.CreatePropertyImageRequest{
		IDProperty: primitive.NewObjectID().Hex(),
		File:       "https://cdn.example.com/ghost.jpg",
		Enabled:    true,
	})
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, imageRepo.images)
}
