package verse

import "time"

// Collection is the store collection holding verses.
const Collection = "verses"

type Category string

const (
	CategoryAlbum          Category = "album"
	CategoryFreestyle      Category = "freestyle"
	CategoryHooks          Category = "hooks"
	CategoryCompleteSongs  Category = "complete_songs"
	CategoryDrafts         Category = "drafts"
	CategoryCollaborations Category = "collaborations"
)

// Categories lists every category in wire order. Analytics relies on this to
// emit zero buckets for empty categories.
func Categories() []Category {
	return []Category{
		CategoryAlbum,
		CategoryFreestyle,
		CategoryHooks,
		CategoryCompleteSongs,
		CategoryDrafts,
		CategoryCollaborations,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Verse struct {
	ID               string    `json:"id" bson:"id"`
	Title            string    `json:"title" bson:"title"`
	Lyrics           string    `json:"lyrics" bson:"lyrics"`
	Category         Category  `json:"category" bson:"category"`
	BeatFileURL      string    `json:"beat_file_url,omitempty" bson:"beat_file_url,omitempty"`
	BeatExternalLink string    `json:"beat_external_link,omitempty" bson:"beat_external_link,omitempty"`
	BeatName         string    `json:"beat_name,omitempty" bson:"beat_name,omitempty"`
	Tags             []string  `json:"tags" bson:"tags"`
	Notes            string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Version          int       `json:"version" bson:"version"`
	WordCount        int       `json:"word_count" bson:"word_count"`
	LineCount        int       `json:"line_count" bson:"line_count"`
	RhymeScheme      string    `json:"rhyme_scheme" bson:"rhyme_scheme"`
	BPM              int       `json:"bpm,omitempty" bson:"bpm,omitempty"`
	Key              string    `json:"key,omitempty" bson:"key,omitempty"`
	Mood             string    `json:"mood,omitempty" bson:"mood,omitempty"`
	Priority         Priority  `json:"priority" bson:"priority"`
	Collaborators    []string  `json:"collaborators" bson:"collaborators"`
	IsComplete       bool      `json:"is_complete" bson:"is_complete"`
	IsRecorded       bool      `json:"is_recorded" bson:"is_recorded"`
	IsPublished      bool      `json:"is_published" bson:"is_published"`
	PlaysCount       int64     `json:"plays_count" bson:"plays_count"`
	LikesCount       int64     `json:"likes_count" bson:"likes_count"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
	LastEditedAt     time.Time `json:"last_edited_at" bson:"last_edited_at"`
}

// CreateInput carries the caller-settable fields for a new verse.
type CreateInput struct {
	Title            string   `json:"title"`
	Lyrics           string   `json:"lyrics"`
	Category         Category `json:"category"`
	BeatExternalLink string   `json:"beat_external_link"`
	BeatName         string   `json:"beat_name"`
	Tags             []string `json:"tags"`
	Notes            string   `json:"notes"`
	BPM              int      `json:"bpm"`
	Key              string   `json:"key"`
	Mood             string   `json:"mood"`
	Priority         Priority `json:"priority"`
	Collaborators    []string `json:"collaborators"`
	IsComplete       bool     `json:"is_complete"`
	IsRecorded       bool     `json:"is_recorded"`
	IsPublished      bool     `json:"is_published"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Title            *string   `json:"title"`
	Lyrics           *string   `json:"lyrics"`
	Category         *Category `json:"category"`
	BeatExternalLink *string   `json:"beat_external_link"`
	BeatName         *string   `json:"beat_name"`
	Tags             *[]string `json:"tags"`
	Notes            *string   `json:"notes"`
	BPM              *int      `json:"bpm"`
	Key              *string   `json:"key"`
	Mood             *string   `json:"mood"`
	Priority         *Priority `json:"priority"`
	Collaborators    *[]string `json:"collaborators"`
	IsComplete       *bool     `json:"is_complete"`
	IsRecorded       *bool     `json:"is_recorded"`
	IsPublished      *bool     `json:"is_published"`
}

// ListFilter narrows List results. Search matches title, lyrics or tags.
type ListFilter struct {
	Category Category
	Search   string
}
