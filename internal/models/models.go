package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:255;not null"        json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null"        json:"-"`
	NationalID   string    `gorm:"size:14;uniqueIndex;not null"  json:"national_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

type Company struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	LegalName string `gorm:"size:255;not null"        json:"legal_name"`
	TaxID     string `gorm:"size:18;uniqueIndex;not null" json:"tax_id"`
	Email     string `gorm:"size:255"                 json:"email"`
}

type JobPosting struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:255;not null"        json:"title"`
	Description string    `json:"description"`
	Salary      *float64  `json:"salary"`
	PostedAt    time.Time `json:"posted_at"`
	CompanyID   uint      `gorm:"index;not null"           json:"company_id"`
	Company     *Company  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type Course struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:255;not null"        json:"name"`
	Description string `json:"description"`
	Hours       int    `json:"hours"`
}

type Certificate struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	IssuedAt       time.Time `json:"issued_at"`
	Description    string    `gorm:"size:500"       json:"description"`
	ValidationCode string    `gorm:"size:100"       json:"validation_code"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	CourseID       uint      `gorm:"index;not null" json:"course_id"`
	User           *User     `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Course         *Course   `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
