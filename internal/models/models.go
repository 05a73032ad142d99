package models

// Company is a hiring company, keyed by a short text handle.
type Company struct {
	Handle       string `gorm:"primaryKey" json:"handle"`
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	NumEmployees *int   `json:"numEmployees"`
	LogoURL      string `json:"logoUrl"`

	// 'omitempty' keeps job lists out of company search results;
	// only the detail endpoint preloads them.
	Jobs []Job `gorm:"foreignKey:CompanyHandle;references:Handle;constraint:OnDelete:CASCADE" json:"jobs,omitempty"`
}

// Job is a posting attached to a company. Salary and Equity are
// pointers because both columns are nullable.
type Job struct {
	ID            int64    `gorm:"primaryKey" json:"id"`
	Title         string   `gorm:"not null;index" json:"title"`
	Salary        *int     `gorm:"check:salary >= 0" json:"salary"`
	Equity        *float64 `gorm:"check:equity <= 1.0" json:"equity"`
	CompanyHandle string   `gorm:"not null;index" json:"companyHandle"`

	Company *Company `gorm:"foreignKey:CompanyHandle;references:Handle" json:"company,omitempty"`
}

// User is an account. Password always holds a bcrypt hash, never the
// plaintext, and is excluded from every JSON response.
type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"isAdmin"`

	// Filled by the user detail endpoint: ids of jobs applied to.
	Jobs []int64 `gorm:"-" json:"jobs,omitempty"`
}

// Application links a user to a job they applied to.
type Application struct {
	Username string `gorm:"primaryKey" json:"username"`
	JobID    int64  `gorm:"primaryKey" json:"jobId"`
}
