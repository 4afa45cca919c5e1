package model

import (
	"errors"
	"fmt"
	"time"
)

// Role selects which role table a User row points into.
type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RolePharmacist Role = "pharmacist"
)

var ErrInvalidRole = errors.New("invalid user type")

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RolePatient, RoleDoctor, RolePharmacist:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// User links an identity (by email) to exactly one role-table row.
type User struct {
	UserID int64
	ID     int64
	Email  string
	Type   Role
}

// Profile is a role-table row. Exactly one of *Patient, *Doctor, *Pharmacist.
type Profile interface {
	Role() Role
	RecordID() int64
	ContactEmail() string
}

type Patient struct {
	ID        int64
	FirstName string
	LastName  string
	Contact   string
	Address   string
	Email     string
}

func (p *Patient) Role() Role           { return RolePatient }
func (p *Patient) RecordID() int64      { return p.ID }
func (p *Patient) ContactEmail() string { return p.Email }

// FullName is what appointment rows carry as patient_name.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Doctor struct {
	ID             int64
	Name           string
	ClinicLocation string
	Contact        string
	Specialization string
	Email          string
}

func (d *Doctor) Role() Role           { return RoleDoctor }
func (d *Doctor) RecordID() int64      { return d.ID }
func (d *Doctor) ContactEmail() string { return d.Email }

type Pharmacist struct {
	ID           int64
	Name         string
	PharmacyName string
	Address      string
	Phone        string
	Email        string
}

func (p *Pharmacist) Role() Role           { return RolePharmacist }
func (p *Pharmacist) RecordID() int64      { return p.ID }
func (p *Pharmacist) ContactEmail() string { return p.Email }

// Medicine is a row of the "main" table.
type Medicine struct {
	ID           int64
	MedicineName string
	Ingredients  string
	PharmacyName string
	Address      string
	Availability bool
}

type Appointment struct {
	ID          int64
	PatientID   int64
	PatientName string
	DoctorID    int64
	DoctorName  string
	StartTime   time.Time
	EndTime     time.Time
	Confirm     bool
}

// StatusLine renders the patient-facing status of an appointment.
func (a *Appointment) StatusLine() string {
	if a.Confirm {
		return fmt.Sprintf("Your appointment with Dr. %s is accepted.", a.DoctorName)
	}
	return fmt.Sprintf("Your appointment with Dr. %s is not yet accepted.", a.DoctorName)
}

// Account is an identity-provider credential. Email is the join key to User.
type Account struct {
	UID          string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
