package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/statboard/statboard/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetProfile() {
	skin := "https://textures.example/abc"
	profile := &model.CachedProfile{
		UUID:    "069a79f444e94726a5befca90e38aaf5",
		Name:    "Notch",
		SkinURL: &skin,
	}

	err := s.storage.SaveProfile(s.ctx, profile)
	s.Require().NoError(err)

	got, err := s.storage.GetProfile(s.ctx, profile.UUID)
	s.Require().NoError(err)
	s.Equal("Notch", got.Name)
	s.Require().NotNil(got.SkinURL)
	s.Equal(skin, *got.SkinURL)
}

func (s *StorageSuite) TestGetProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "069a79f444e94726a5befca90e38aaf5")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *StorageSuite) TestSaveProfileOverwrites() {
	uuid := "069a79f444e94726a5befca90e38aaf5"
	_ = s.storage.SaveProfile(s.ctx, &model.CachedProfile{UUID: uuid, Name: "Old"})
	_ = s.storage.SaveProfile(s.ctx, &model.CachedProfile{UUID: uuid, Name: "New"})

	got, err := s.storage.GetProfile(s.ctx, uuid)
	s.Require().NoError(err)
	s.Equal("New", got.Name)
	s.Nil(got.SkinURL)
}

func (s *StorageSuite) TestGetProfileReturnsCopy() {
	uuid := "069a79f444e94726a5befca90e38aaf5"
	_ = s.storage.SaveProfile(s.ctx, &model.CachedProfile{UUID: uuid, Name: "Notch"})

	got, err := s.storage.GetProfile(s.ctx, uuid)
	s.Require().NoError(err)
	got.Name = "Mutated"

	again, err := s.storage.GetProfile(s.ctx, uuid)
	s.Require().NoError(err)
	s.Equal("Notch", again.Name)
}

func (s *StorageSuite) TestDeleteProfile() {
	uuid := "069a79f444e94726a5befca90e38aaf5"
	_ = s.storage.SaveProfile(s.ctx, &model.CachedProfile{UUID: uuid, Name: "Notch"})

	err := s.storage.DeleteProfile(s.ctx, uuid)
	s.Require().NoError(err)

	_, err = s.storage.GetProfile(s.ctx, uuid)
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *StorageSuite) TestDeleteMissingProfile() {
	s.NoError(s.storage.DeleteProfile(s.ctx, "069a79f444e94726a5befca90e38aaf5"))
}
