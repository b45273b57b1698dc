package beat

import "time"

// Collection is the store collection holding beats.
const Collection = "beats"

type Beat struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	Producer      string    `json:"producer,omitempty" bson:"producer,omitempty"`
	BPM           int       `json:"bpm,omitempty" bson:"bpm,omitempty"`
	Key           string    `json:"key,omitempty" bson:"key,omitempty"`
	Genre         string    `json:"genre,omitempty" bson:"genre,omitempty"`
	Mood          string    `json:"mood,omitempty" bson:"mood,omitempty"`
	FileURL       string    `json:"file_url,omitempty" bson:"file_url,omitempty"`
	ExternalLink  string    `json:"external_link,omitempty" bson:"external_link,omitempty"`
	Duration      float64   `json:"duration,omitempty" bson:"duration,omitempty"`
	Tags          []string  `json:"tags" bson:"tags"`
	Price         float64   `json:"price" bson:"price"`
	IsFree        bool      `json:"is_free" bson:"is_free"`
	DownloadCount int64     `json:"download_count" bson:"download_count"`
	Rating        float64   `json:"rating" bson:"rating"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

type CreateInput struct {
	Name         string   `json:"name"`
	Producer     string   `json:"producer"`
	BPM          int      `json:"bpm"`
	Key          string   `json:"key"`
	Genre        string   `json:"genre"`
	Mood         string   `json:"mood"`
	FileURL      string   `json:"file_url"`
	ExternalLink string   `json:"external_link"`
	Duration     float64  `json:"duration"`
	Tags         []string `json:"tags"`
	Price        float64  `json:"price"`
	IsFree       bool     `json:"is_free"`
}

type UpdateInput struct {
	Name         *string   `json:"name"`
	Producer     *string   `json:"producer"`
	BPM          *int      `json:"bpm"`
	Key          *string   `json:"key"`
	Genre        *string   `json:"genre"`
	Mood         *string   `json:"mood"`
	FileURL      *string   `json:"file_url"`
	ExternalLink *string   `json:"external_link"`
	Duration     *float64  `json:"duration"`
	Tags         *[]string `json:"tags"`
	Price        *float64  `json:"price"`
	IsFree       *bool     `json:"is_free"`
}

type ListFilter struct {
	Genre    string
	Search   string
	FreeOnly bool
}
