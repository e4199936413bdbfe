package model

import "time"

type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location,omitempty"`
	Description     string    `json:"description,omitempty"`
	PayMin          int       `json:"payMin,omitempty"`
	PayMax          int       `json:"payMax,omitempty"`
	SalaryCurrency  string    `json:"salaryCurrency,omitempty"`
	EmploymentType  string    `json:"employmentType,omitempty"`
	ExperienceLevel string    `json:"experienceLevel,omitempty"`
	LogoURL         string    `json:"logoURL,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Application embeds a denormalized copy of the job taken when the
// application was fetched.
type Application struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Job       Job       `json:"job"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobPage is one page of GET /api/jobs. An empty NextCursor marks the
// terminal page.
type JobPage struct {
	Jobs       []Job  `json:"jobs"`
	NextCursor string `json:"nextCursor,omitempty"`
}

type ApplicationList struct {
	Applications []Application `json:"applications"`
}
