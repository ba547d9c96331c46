package service

import (
	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
	"github.com/retriever-essentials/pantry/internal/store"
	"github.com/retriever-essentials/pantry/internal/validate"
)

type VendorService struct {
	vendors store.VendorStore
}

func NewVendorService(vendors store.VendorStore) *VendorService {
	return &VendorService{vendors: vendors}
}

func (s *VendorService) FindAll() ([]models.Vendor, error) {
	return s.vendors.FindAll()
}

func (s *VendorService) FindByID(vendorID int) (*models.Vendor, error) {
	return s.vendors.FindByID(vendorID)
}

func (s *VendorService) FindByName(name string) (*models.Vendor, error) {
	return s.vendors.FindByName(name)
}

func (s *VendorService) Add(vendor *models.Vendor) (*result.Result[models.Vendor], error) {
	res, err := s.validate(vendor)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if vendor.VendorID != 0 {
		res.AddMessage(result.Invalid, "Vendor ID cannot be set for `add` operation.")
		return res, nil
	}

	if err := s.vendors.Add(vendor); err != nil {
		return nil, err
	}
	res.SetPayload(*vendor)
	return res, nil
}

func (s *VendorService) Update(vendor *models.Vendor) (*result.Result[models.Vendor], error) {
	res, err := s.validate(vendor)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if vendor.VendorID <= 0 {
		res.AddMessage(result.Invalid, "Vendor ID must be set for `update` operation.")
		return res, nil
	}

	updated, err := s.vendors.Update(vendor)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.NotFound, "Vendor ID not found.")
		return res, nil
	}

	res.SetPayload(*vendor)
	return res, nil
}

func (s *VendorService) DeleteByID(vendorID int) (*result.Result[models.Vendor], error) {
	res := result.New[models.Vendor]()

	deleted, err := s.vendors.DeleteByID(vendorID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		res.AddMessage(result.NotFound, "Vendor ID not found.")
	}

	return res, nil
}

func (s *VendorService) validate(vendor *models.Vendor) (*result.Result[models.Vendor], error) {
	res := result.New[models.Vendor]()

	if vendor == nil {
		res.AddMessage(result.Invalid, "Vendor cannot be null")
		return res, nil
	}

	if validate.IsNullOrBlank(vendor.VendorName) {
		res.AddMessage(result.Invalid, "Vendor name is required")
	} else if len(vendor.VendorName) > 255 {
		res.AddMessage(result.Invalid, "Vendor name is too long")
	}

	if validate.IsNullOrBlank(vendor.ContactEmail) {
		res.AddMessage(result.Invalid, "Vendor contact email is required")
	} else if len(vendor.ContactEmail) > 255 {
		res.AddMessage(result.Invalid, "Vendor contact email is too long")
	} else if !validate.IsValidEmail(vendor.ContactEmail) {
		res.AddMessage(result.Invalid, "Vendor contact email is not valid")
	}

	if len(vendor.PhoneNumber) > 20 {
		res.AddMessage(result.Invalid, "Phone number must be 20 characters or fewer")
	}

	existing, err := s.vendors.FindAll()
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.Same(*vendor) && other.VendorID != vendor.VendorID {
			res.AddMessage(result.Invalid, "Duplicate vendors are not allowed")
			break
		}
	}

	return res, nil
}
