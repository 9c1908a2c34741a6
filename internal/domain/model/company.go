package model

import "time"

// DateLayout is the wire and storage format of camp dates.
const DateLayout = "2006-01-02"

// Company is a client company that hosts camps.
type Company struct {
	ID       int64  `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name" binding:"required,max=255"`
	District string `bson:"district" json:"district" binding:"required,max=255"`
	State    string `bson:"state" json:"state" binding:"required,max=255"`
	PinCode  string `bson:"pin_code" json:"pin_code" binding:"required,max=10"`
	Landmark string `bson:"landmark" json:"landmark" binding:"max=255"`
	// Camps is filled on read and never stored on the company document.
	Camps    []Camp `bson:"-" json:"camps"`
}

func (c *Company) GetID() int64 { return c.ID }
func (c *Company) SetID(id int64) { c.ID = id }

// Camp is a scheduled on-site collection event of a company.
type Camp struct {
	ID        int64  `bson:"_id" json:"id"`
	CompanyID int64  `bson:"company_id" json:"company" binding:"required,gt=0"`
	Location  string `bson:"location" json:"location" binding:"required,max=255"`
	District  string `bson:"district" json:"district" binding:"required,max=255"`
	State     string `bson:"state" json:"state" binding:"required,max=255"`
	PinCode   string `bson:"pin_code" json:"pin_code" binding:"required,max=10"`
	Landmark  string `bson:"landmark" json:"landmark" binding:"max=255"`
	StartDate string `bson:"start_date" json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `bson:"end_date" json:"end_date" binding:"required,datetime=2006-01-02"`
}

func (c *Camp) GetID() int64 { return c.ID }
func (c *Camp) SetID(id int64) { c.ID = id }

// Validate checks the date range of the camp.
func (c *Camp) Validate() error {
	errs := ValidationErrors{}
	start, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		errs["start_date"] = "must be a date in YYYY-MM-DD format"
	}
	end, err := time.Parse(DateLayout, c.EndDate)
	if err != nil {
		errs["end_date"] = "must be a date in YYYY-MM-DD format"
	}
	if len(errs) == 0 && end.Before(start) {
		errs["end_date"] = "must not be before start_date"
	}
	return errs.orNil()
}
