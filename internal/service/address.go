package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/repo"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type AddressService struct {
	Repo *repo.GormRepo
}

func validateAddressRequest(req transport.AddressRequest) error {
	switch "" {
	case req.FullName:
		return fmt.Errorf("%w: full name is required", ErrValidation)
	case req.Address:
		return fmt.Errorf("%w: address is required", ErrValidation)
	case req.City:
		return fmt.Errorf("%w: city is required", ErrValidation)
	case req.State:
		return fmt.Errorf("%w: state is required", ErrValidation)
	case req.ZipCode:
		return fmt.Errorf("%w: zip code is required", ErrValidation)
	case req.Phone:
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	return nil
}

func (s *AddressService) List(ctx context.Context, userID uint) ([]models.Address, error) {
	return s.Repo.ListAddresses(ctx, userID)
}

func (s *AddressService) Create(ctx context.Context, userID uint, req transport.AddressRequest) (*models.Address, error) {
	if err := validateAddressRequest(req); err != nil {
		return nil, err
	}

	address := &models.Address{
		UserID:    userID,
		FullName:  req.FullName,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Phone:     req.Phone,
		IsDefault: req.IsDefault,
	}
	if err := s.Repo.SaveAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Update(ctx context.Context, id, requesterID uint, req transport.AddressRequest) (*models.Address, error) {
	if err := validateAddressRequest(req); err != nil {
		return nil, err
	}

	address, err := s.owned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	address.FullName = req.FullName
	address.Address = req.Address
	address.City = req.City
	address.State = req.State
	address.ZipCode = req.ZipCode
	address.Phone = req.Phone
	address.IsDefault = req.IsDefault

	if err := s.Repo.SaveAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Delete(ctx context.Context, id, requesterID uint) error {
	if _, err := s.owned(ctx, id, requesterID); err != nil {
		return err
	}
	return s.Repo.DeleteAddress(ctx, id)
}

// SetDefault flags one address as the default; every other address of the
// user loses the flag in the same save.
func (s *AddressService) SetDefault(ctx context.Context, id, requesterID uint) (*models.Address, error) {
	address, err := s.owned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	address.IsDefault = true
	if err := s.Repo.SaveAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) owned(ctx context.Context, id, requesterID uint) (*models.Address, error) {
	address, err := s.Repo.GetAddress(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: address not found", ErrNotFound)
		}
		return nil, err
	}
	if address.UserID != requesterID {
		return nil, fmt.Errorf("%w: not authorized", ErrForbidden)
	}
	return address, nil
}
