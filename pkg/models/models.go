package models

import "time"

type CardType string

const (
	CardTypeSwitch CardType = "switch"
	CardTypeAlarm  CardType = "alarm"
)

const CodeStatusReceived string = "received"

// RFCode is one observed radio code. Code is the natural key.
type RFCode struct {
	Code        string    `gorm:"primaryKey" json:"code"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `gorm:"index" json:"last_seen_at"`
	Ignored     bool      `gorm:"index" json:"ignored"`
}

func (RFCode) TableName() string { return "rf_codes" }

// Card is a user defined device. The device columns are flattened; read them
// through Device() rather than directly so that each card kind only exposes
// the codes it owns.
type Card struct {
	Shortname   string    `gorm:"primaryKey" json:"shortname"`
	Name        string    `json:"name"`
	Type        CardType  `gorm:"type:varchar(20);check:type IN ('switch','alarm')" json:"type"`
	OnCode      string    `gorm:"index" json:"on_code,omitempty"`
	OffCode     string    `gorm:"index" json:"off_code,omitempty"`
	TriggerCode string    `gorm:"index" json:"trigger_code,omitempty"`
	Armed       bool      `json:"armed"`
	Img         string    `json:"img,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Webhook is an operator registered subscriber URL for a named hook.
type Webhook struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Hook      string    `gorm:"uniqueIndex:ux_hook_url" json:"hook"`
	URL       string    `gorm:"uniqueIndex:ux_hook_url" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// CodeEvent is one frame delivered by a hardware transport. Raw keeps the
// decoded payload untouched so subscribers see exactly what the transport
// sent.
type CodeEvent struct {
	Code   string
	Status string
	Raw    map[string]any
}

func (e *CodeEvent) Received() bool {
	return e.Status == CodeStatusReceived
}

// Availability is the outcome of resolving a code against the stores.
type Availability struct {
	Available  bool   `json:"isAvailable"`
	Ignored    bool   `json:"ignored"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

// CodeFilter selects codes for bulk removal. Codes are matched as a set;
// IgnoredOnly narrows to ignored records. The zero value matches nothing.
type CodeFilter struct {
	Codes       []string
	IgnoredOnly bool
}

func (f CodeFilter) Empty() bool {
	return len(f.Codes) == 0 && !f.IgnoredOnly
}
