package portfolio

// Collection names. One collection per entity type.
const (
	CollectionProfile    = "profile"
	CollectionSkill      = "skill"
	CollectionProject    = "project"
	CollectionExperience = "experience"
	CollectionEducation  = "education"
	CollectionMessage    = "message"
)

// Entity is implemented by every stored portfolio type.
type Entity interface {
	Collection() string
}

// Profile is the portfolio owner. Only one is seeded; reads return the first.
type Profile struct {
	Name     string            `json:"name" bson:"name" binding:"required"`
	Title    string            `json:"title" bson:"title" binding:"required"`
	Bio      string            `json:"bio" bson:"bio" binding:"required"`
	Location *string           `json:"location,omitempty" bson:"location,omitempty"`
	Email    *string           `json:"email,omitempty" bson:"email,omitempty" binding:"omitempty,email"`
	Phone    *string           `json:"phone,omitempty" bson:"phone,omitempty"`
	Socials  map[string]string `json:"socials,omitempty" bson:"socials,omitempty"`
}

func (Profile) Collection() string { return CollectionProfile }

// Skill level is an optional integer from 1 (basic) to 5 (expert).
type Skill struct {
	Category string `json:"category" bson:"category" binding:"required"`
	Name     string `json:"name" bson:"name" binding:"required"`
	Level    *int   `json:"level,omitempty" bson:"level,omitempty" binding:"omitempty,min=1,max=5"`
}

func (Skill) Collection() string { return CollectionSkill }

type Project struct {
	Title       string   `json:"title" bson:"title" binding:"required"`
	Description string   `json:"description" bson:"description" binding:"required"`
	Tags        []string `json:"tags" bson:"tags"`
	Link        *string  `json:"link,omitempty" bson:"link,omitempty"`
	Image       *string  `json:"image,omitempty" bson:"image,omitempty"`
}

func (Project) Collection() string { return CollectionProject }

// ApplyDefaults turns a missing tag list into an empty one.
func (p *Project) ApplyDefaults() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// Experience with no End is ongoing.
type Experience struct {
	Company string  `json:"company" bson:"company" binding:"required"`
	Role    string  `json:"role" bson:"role" binding:"required"`
	Start   string  `json:"start" bson:"start" binding:"required"`
	End     *string `json:"end,omitempty" bson:"end,omitempty"`
	Summary *string `json:"summary,omitempty" bson:"summary,omitempty"`
}

func (Experience) Collection() string { return CollectionExperience }

type Education struct {
	School string  `json:"school" bson:"school" binding:"required"`
	Degree string  `json:"degree" bson:"degree" binding:"required"`
	Start  string  `json:"start" bson:"start" binding:"required"`
	End    *string `json:"end,omitempty" bson:"end,omitempty"`
}

func (Education) Collection() string { return CollectionEducation }

// Message is a contact-form submission. Write-only.
type Message struct {
	Name    string  `json:"name" bson:"name" binding:"required"`
	Email   string  `json:"email" bson:"email" binding:"required,email"`
	Subject *string `json:"subject,omitempty" bson:"subject,omitempty"`
	Message string  `json:"message" bson:"message" binding:"required"`
}

func (Message) Collection() string { return CollectionMessage }
