package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one client's intake form plus the branding details added later.
// Branding fields stay null until the client-details endpoint sets them.
type Submission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WebsiteType string             `bson:"websiteType" json:"websiteType"`
	BuildMethod string             `bson:"buildMethod" json:"buildMethod"`
	Features    []string           `bson:"features" json:"features"`
	Budget      float64            `bson:"budget" json:"budget"`
	Deadline    string             `bson:"deadline" json:"deadline"`
	Email       string             `bson:"email" json:"email"`

	BrandName        *string  `bson:"brandName" json:"brandName"`
	LogoURL          *string  `bson:"logoUrl" json:"logoUrl"`
	ColorPreferences *string  `bson:"colorPreferences" json:"colorPreferences"`
	AdditionalImages []string `bson:"additionalImages" json:"additionalImages"`
	ContactInfo      *string  `bson:"contactInfo" json:"contactInfo"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Branding is the set of fields the client-details endpoint overwrites.
// A nil field is stored as null.
type Branding struct {
	BrandName        *string  `bson:"brandName" json:"brandName"`
	LogoURL          *string  `bson:"logoUrl" json:"logoUrl"`
	ColorPreferences *string  `bson:"colorPreferences" json:"colorPreferences"`
	AdditionalImages []string `bson:"additionalImages" json:"additionalImages"`
	ContactInfo      *string  `bson:"contactInfo" json:"contactInfo"`
}

// NewSubmission builds a Submission from a decoded intake payload.
// Only known keys are kept; malformed values are coerced, never rejected.
func NewSubmission(payload map[string]any) *Submission {
	return &Submission{
		WebsiteType: TextValue(payload["websiteType"]),
		BuildMethod: TextValue(payload["buildMethod"]),
		Features:    StringList(payload["features"]),
		Budget:      NumberValue(payload["budget"], hasKey(payload, "budget")),
		Deadline:    TextValue(payload["deadline"]),
		Email:       TextValue(payload["email"]),
	}
}

// NewBranding builds the branding overwrite from a decoded payload.
func NewBranding(payload map[string]any) Branding {
	b := Branding{
		BrandName:        OptionalText(payload["brandName"]),
		LogoURL:          OptionalText(payload["logoUrl"]),
		ColorPreferences: OptionalText(payload["colorPreferences"]),
		ContactInfo:      OptionalText(payload["contactInfo"]),
	}
	if v, ok := payload["additionalImages"]; ok && v != nil {
		b.AdditionalImages = StringList(v)
	}
	return b
}

func hasKey(m map[string]any, k string) bool {
	_, ok := m[k]
	return ok
}
