package model

import (
	"github.com/google/uuid"
)

type AppointmentStatus string

// The lifecycle has exactly two states: pending at creation, approved once a
// doctor confirms a time. Approved is terminal; there is no rejection,
// cancellation, or deletion.
const (
	AppointmentStatusPending  AppointmentStatus = "pending"
	AppointmentStatusApproved AppointmentStatus = "approved"
)

// Appointment is a consultation request addressed to a doctor. The patient
// fields are free-form, supplied by the requester; the requester does not
// need a registered account.
type Appointment struct {
	Base
	DoctorID      uuid.UUID         `json:"doctor_id" db:"doctor_id"`
	PatientName   string            `json:"patient_name" db:"patient_name"`
	Age           int               `json:"age" db:"age"`
	Contact       string            `json:"contact" db:"contact"`
	Symptoms      string            `json:"symptoms" db:"symptoms"`
	PreferredTime string            `json:"preferred_time" db:"preferred_time"`
	Status        AppointmentStatus `json:"status" db:"status"`
	ConfirmedTime *string           `json:"confirmed_time,omitempty" db:"confirmed_time"`
}

type RequestAppointmentRequest struct {
	DoctorID      string `json:"doctor_id" binding:"required,uuid"`
	PatientName   string `json:"patient_name" binding:"required"`
	Age           int    `json:"age" binding:"required,gt=0,lt=150"`
	Contact       string `json:"contact" binding:"required"`
	Symptoms      string `json:"symptoms" binding:"required"`
	PreferredTime string `json:"preferred_time" binding:"required"`
}

type ApproveAppointmentRequest struct {
	ConfirmedTime string `json:"confirmed_time" binding:"required"`
}
