package models

import (
	"time"

	"github.com/google/uuid"
)

// NationalUserSQL maps "api_user" in the national store.
type NationalUserSQL struct {
	UUID  uuid.UUID `gorm:"column:uuid;type:uuid;primaryKey"`
	Email string    `gorm:"column:email"`
}

func (NationalUserSQL) TableName() string { return "api_user" }

// NationalAPIRequestSQL maps "api_request" in the national store.
type NationalAPIRequestSQL struct {
	UUID       uuid.UUID `gorm:"column:uuid;type:uuid;primaryKey"`
	URL        string    `gorm:"column:url"`
	UserUUID   uuid.UUID `gorm:"column:user_uuid;type:uuid"`
	CreatedUTC time.Time `gorm:"column:created_utc"`
}

func (NationalAPIRequestSQL) TableName() string { return "api_request" }

// SitesUserSQL maps "users" in the sites store.
type SitesUserSQL struct {
	UserUUID uuid.UUID `gorm:"column:user_uuid;type:uuid;primaryKey"`
	Email    string    `gorm:"column:email"`
}

func (SitesUserSQL) TableName() string { return "users" }

// SitesAPIRequestSQL maps "api_request" in the sites store.
type SitesAPIRequestSQL struct {
	APIRequestUUID uuid.UUID `gorm:"column:api_request_uuid;type:uuid;primaryKey"`
	URL            string    `gorm:"column:url"`
	UserUUID       uuid.UUID `gorm:"column:user_uuid;type:uuid"`
	CreatedUTC     time.Time `gorm:"column:created_utc"`
}

func (SitesAPIRequestSQL) TableName() string { return "api_request" }

type ApiRequestRecord struct {
	UserEmail  string    `gorm:"column:email"       json:"user_email"`
	CreatedUTC time.Time `gorm:"column:created_utc" json:"created_utc"`
	URL        string    `gorm:"column:url"         json:"url"`
}

type LastRequestRecord struct {
	UserEmail      string    `gorm:"column:email"            json:"email"`
	LastCreatedUTC time.Time `gorm:"column:last_created_utc" json:"last_api_request"`
}

// DailyRequestCount is the number of requests on one calendar date (YYYY-MM-DD).
type DailyRequestCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
