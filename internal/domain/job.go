package domain

import "time"

// Salary is the advertised pay range of a job posting.
type Salary struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// JobPosting represents a job posting entity.
type JobPosting struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	Type                string     `json:"type"`
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Benefits            []string   `json:"benefits"`
	Salary              Salary     `json:"salary"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	ApplyURL            string     `json:"applyUrl"`
	IsActive            bool       `json:"isActive"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// ValidJobTypes contains all valid job posting types.
var ValidJobTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

// IsValidJobType checks if a job type is valid.
func IsValidJobType(jobType string) bool {
	for _, t := range ValidJobTypes {
		if t == jobType {
			return true
		}
	}
	return false
}
