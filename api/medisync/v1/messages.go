package medisyncv1

import "time"

type User struct {
	UserId int64  `json:"user_id"`
	Id     int64  `json:"id"`
	Email  string `json:"email"`
	Type   string `json:"type"`
}

type Patient struct {
	Id        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Contact   string `json:"contact"`
	Address   string `json:"address"`
	Email     string `json:"email"`
}

type Doctor struct {
	Id             int64  `json:"id"`
	Name           string `json:"name"`
	ClinicLocation string `json:"clinic_location"`
	Contact        string `json:"contact"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
}

type Pharmacist struct {
	Id           int64  `json:"id"`
	Name         string `json:"name"`
	PharmacyName string `json:"pharmacy_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// Profile carries exactly one role record, named by Role.
type Profile struct {
	Role       string      `json:"role"`
	Patient    *Patient    `json:"patient,omitempty"`
	Doctor     *Doctor     `json:"doctor,omitempty"`
	Pharmacist *Pharmacist `json:"pharmacist,omitempty"`
}

type Medicine struct {
	Id           int64  `json:"id"`
	MedicineName string `json:"medicine_name"`
	Ingredients  string `json:"ingredients"`
	PharmacyName string `json:"pharmacy_name"`
	Address      string `json:"address"`
	Availability bool   `json:"availability"`
}

type Appointment struct {
	Id          int64     `json:"id"`
	PatientId   int64     `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	DoctorId    int64     `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Confirm     bool      `json:"confirm"`
}

// ----- auth -----

type RegisterPatientRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Contact   string `json:"contact"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterDoctorRequest struct {
	Name           string `json:"name"`
	ClinicLocation string `json:"clinic_location"`
	Contact        string `json:"contact"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

type RegisterPharmacistRequest struct {
	Name         string `json:"name"`
	PharmacyName string `json:"pharmacy_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

type RegisterResponse struct {
	UserId int64  `json:"user_id"`
	Role   string `json:"role"`
	RoleId int64  `json:"role_id"`
	Token  string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserId int64  `json:"user_id"`
	Role   string `json:"role"`
	RoleId int64  `json:"role_id"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type ResolveSessionRequest struct{}

type ResolveSessionResponse struct {
	User    *User    `json:"user"`
	Profile *Profile `json:"profile"`
}

// ----- profile -----

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type UpdateProfileRequest struct {
	Profile *Profile `json:"profile"`
}

type UpdateProfileResponse struct {
	Profile *Profile `json:"profile"`
}

// ----- medicines -----

type SearchMedicinesRequest struct {
	Query string `json:"query"`
}

type SearchMedicinesResponse struct {
	Medicines []*Medicine `json:"medicines"`
}

type ListMedicinesRequest struct{}

type ListMedicinesResponse struct {
	Medicines []*Medicine `json:"medicines"`
}

type GetMedicineRequest struct {
	Id int64 `json:"id"`
}

type GetMedicineResponse struct {
	Medicine *Medicine `json:"medicine"`
}

type AddMedicineRequest struct {
	MedicineName string `json:"medicine_name"`
	Ingredients  string `json:"ingredients"`
	PharmacyName string `json:"pharmacy_name"`
	Address      string `json:"address"`
	Availability bool   `json:"availability"`
}

type AddMedicineResponse struct {
	Medicine *Medicine `json:"medicine"`
}

type ListPharmacyMedicinesRequest struct{}

type ListPharmacyMedicinesResponse struct {
	PharmacyName string      `json:"pharmacy_name"`
	Medicines    []*Medicine `json:"medicines"`
}

type AvailabilityEdit struct {
	Id           int64 `json:"id"`
	Availability bool  `json:"availability"`
}

type UpdateAvailabilityRequest struct {
	Edits []*AvailabilityEdit `json:"edits"`
}

type UpdateAvailabilityResponse struct {
	UpdatedIds []int64 `json:"updated_ids"`
}

// ----- appointments -----

type ListDoctorsRequest struct{}

type ListDoctorsResponse struct {
	Doctors []*Doctor `json:"doctors"`
}

type CreateAppointmentRequest struct {
	DoctorId   int64      `json:"doctor_id"`
	DoctorName string     `json:"doctor_name"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
}

type CreateAppointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type ListDoctorAppointmentsRequest struct{}

type ListDoctorAppointmentsResponse struct {
	Appointments []*Appointment `json:"appointments"`
}

type ConfirmationEdit struct {
	Id      int64 `json:"id"`
	Confirm bool  `json:"confirm"`
}

type CommitConfirmationsRequest struct {
	Confirmations []*ConfirmationEdit `json:"confirmations"`
}

type CommitConfirmationsResponse struct {
	Appointments []*Appointment `json:"appointments"`
}

type AppointmentStatusRequest struct{}

type AppointmentStatus struct {
	AppointmentId int64  `json:"appointment_id"`
	DoctorName    string `json:"doctor_name"`
	Accepted      bool   `json:"accepted"`
	Message       string `json:"message"`
}

type AppointmentStatusResponse struct {
	Statuses []*AppointmentStatus `json:"statuses"`
}
