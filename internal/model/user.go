package model

// User roles. A role is fixed at signup; no role-change operation exists.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User represents a registered account, either a patient or a doctor.
// Doctor accounts additionally carry professional profile fields.
type User struct {
	Base
	Name           string  `json:"name" db:"name"`
	Email          string  `json:"email" db:"email"`
	PasswordHash   string  `json:"-" db:"password_hash"`
	Role           string  `json:"role" db:"role"`
	Specialization *string `json:"specialization,omitempty" db:"specialization"`
	Contact        *string `json:"contact,omitempty" db:"contact"`
	ImageURL       *string `json:"image_url,omitempty" db:"image_url"`
}

// DoctorProfile is the public view of a doctor, password excluded.
type DoctorProfile struct {
	Base
	Name           string  `json:"name" db:"name"`
	Email          string  `json:"email" db:"email"`
	Specialization *string `json:"specialization,omitempty" db:"specialization"`
	Contact        *string `json:"contact,omitempty" db:"contact"`
	ImageURL       *string `json:"image_url,omitempty" db:"image_url"`
}

// Profile strips the credential fields from a user record.
func (u *User) Profile() *DoctorProfile {
	return &DoctorProfile{
		Base:           u.Base,
		Name:           u.Name,
		Email:          u.Email,
		Specialization: u.Specialization,
		Contact:        u.Contact,
		ImageURL:       u.ImageURL,
	}
}
