package content

import "time"

// Project is a normalized portfolio project entry.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Year        *float64 `json:"year"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url"`
	Impact      string   `json:"impact"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// Experience is a normalized work history entry. A nil EndYear means the
// role is current.
type Experience struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	LogoURL     string   `json:"logo_url"`
	Website     string   `json:"website"`
	StartYear   *float64 `json:"start_year"`
	EndYear     *float64 `json:"end_year"`
	Type        string   `json:"type"`
}

// Event is a normalized speaking/appearance entry. Date is nil when the
// source record carries no parseable date.
type Event struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	EventName    string     `json:"event_name"`
	Type         string     `json:"type"`
	Date         *time.Time `json:"date"`
	Location     string     `json:"location"`
	AudienceSize *float64   `json:"audience_size"`
	VideoURL     string     `json:"video_url"`
}

// Recognition is a normalized award/press/partnership entry.
type Recognition struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Description  string   `json:"description"`
	Year         *float64 `json:"year"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	ImageURL     string   `json:"image_url"`
	LinkURL      string   `json:"link_url"`
	CreatedDate  string   `json:"created_date"`
}
