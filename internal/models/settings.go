package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Settings is a singleton record; the store keeps at most one live row.
type Settings struct {
	bun.BaseModel `bun:"table:settings"`

	ID          int64       `bun:"id,pk,autoincrement" json:"-"`
	Phone       string      `bun:"phone,notnull" json:"phone"`
	Email       string      `bun:"email,notnull" json:"email"`
	Address     string      `bun:"address,notnull" json:"address"`
	OpeningTime string      `bun:"opening_time,notnull" json:"openingTime"`
	ClosingTime string      `bun:"closing_time,notnull" json:"closingTime"`
	SocialMedia SocialMedia `bun:"embed:social_" json:"socialMedia"`
	Pricing     Pricing     `bun:"embed:pricing_" json:"pricing"`
	UpdatedAt   time.Time   `bun:"updated_at,notnull" json:"updatedAt"`
}

type SocialMedia struct {
	Instagram string `bun:"instagram" json:"instagram"`
	Facebook  string `bun:"facebook" json:"facebook"`
	Twitter   string `bun:"twitter" json:"twitter"`
}

// Pricing holds per-day table rates in rupees.
type Pricing struct {
	Wednesday int `bun:"wednesday" json:"wednesday"`
	Weekday   int `bun:"weekday" json:"weekday"`
	Weekend   int `bun:"weekend" json:"weekend"`
}

// DefaultSettings are applied when the singleton is first read.
func DefaultSettings() Settings {
	return Settings{
		Phone:       "+91 98765 43210",
		Email:       "info@gameopolis.in",
		Address:     "123, Usman Road, T-Nagar, Chennai, Tamil Nadu 600017",
		OpeningTime: "11:00",
		ClosingTime: "22:00",
		SocialMedia: SocialMedia{
			Instagram: "https://instagram.com/gameopolis",
			Facebook:  "https://facebook.com/gameopolis",
			Twitter:   "https://twitter.com/gameopolis",
		},
		Pricing: Pricing{
			Wednesday: 99,
			Weekday:   120,
			Weekend:   140,
		},
	}
}

// SettingsInput patches the singleton. Nested groups are merged
// key-by-key so an update touching one social link keeps the others.
type SettingsInput struct {
	Phone       *string           `json:"phone"`
	Email       *string           `json:"email"`
	Address     *string           `json:"address"`
	OpeningTime *string           `json:"openingTime"`
	ClosingTime *string           `json:"closingTime"`
	SocialMedia *SocialMediaInput `json:"socialMedia"`
	Pricing     *PricingInput     `json:"pricing"`
}

type SocialMediaInput struct {
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
}

type PricingInput struct {
	Wednesday *int `json:"wednesday"`
	Weekday   *int `json:"weekday"`
	Weekend   *int `json:"weekend"`
}
