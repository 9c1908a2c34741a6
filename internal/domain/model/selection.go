package model

import "time"

// Package is a named bundle of services selected together.
type Package struct {
	PackageName string   `bson:"package_name" json:"package_name"`
	Services    []string `bson:"services" json:"services"`
}

// ServiceSelection is the active package selection of a company.
// A company has at most one selection.
type ServiceSelection struct {
	ID        int64     `bson:"_id" json:"id"`
	CompanyID int64     `bson:"company_id" json:"company_id"`
	Packages  []Package `bson:"packages" json:"packages"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (s *ServiceSelection) GetID() int64 { return s.ID }
func (s *ServiceSelection) SetID(id int64) { s.ID = id }

func (s *ServiceSelection) GetCreatedAt() time.Time { return s.CreatedAt }

func (s *ServiceSelection) SetCreatedAt(t time.Time) {
	s.CreatedAt = t
	s.UpdatedAt = t
}

// Validate requires a company and at least one named package.
func (s *ServiceSelection) Validate() error {
	errs := ValidationErrors{}
	if s.CompanyID <= 0 {
		errs["company_id"] = "this field is required"
	}
	if len(s.Packages) == 0 {
		errs["packages"] = "at least one package is required"
	}
	for _, p := range s.Packages {
		if p.PackageName == "" {
			errs["packages"] = "package_name is required for every package"
			break
		}
	}
	return errs.orNil()
}
