package models

// Device is the kind specific payload of a Card. The set of implementations
// is closed: switch over the concrete types and let the default branch mean
// "owns nothing".
type Device interface {
	// Codes returns the non-empty code values bound to the device.
	Codes() []string
	Owns(code string) bool
	isDevice()
}

type SwitchDevice struct {
	OnCode  string `json:"on_code"`
	OffCode string `json:"off_code"`
}

type AlarmDevice struct {
	TriggerCode string `json:"trigger_code"`
	Armed       bool   `json:"armed"`
}

func (SwitchDevice) isDevice() {}
func (AlarmDevice) isDevice()  {}

func (d SwitchDevice) Codes() []string {
	return nonEmpty(d.OnCode, d.OffCode)
}

func (d SwitchDevice) Owns(code string) bool {
	return code != "" && (d.OnCode == code || d.OffCode == code)
}

func (d AlarmDevice) Codes() []string {
	return nonEmpty(d.TriggerCode)
}

func (d AlarmDevice) Owns(code string) bool {
	return code != "" && d.TriggerCode == code
}

// Device returns the typed payload for the card, or nil for an unknown type.
func (c *Card) Device() Device {
	switch c.Type {
	case CardTypeSwitch:
		return SwitchDevice{OnCode: c.OnCode, OffCode: c.OffCode}
	case CardTypeAlarm:
		return AlarmDevice{TriggerCode: c.TriggerCode, Armed: c.Armed}
	default:
		return nil
	}
}

// BoundCodes is Device().Codes() with the nil device handled.
func (c *Card) BoundCodes() []string {
	d := c.Device()
	if d == nil {
		return nil
	}
	return d.Codes()
}

func (c *Card) IsArmedAlarm() bool {
	alarm, ok := c.Device().(AlarmDevice)
	return ok && alarm.Armed
}

func nonEmpty(codes ...string) []string {
	var out []string
	for _, code := range codes {
		if code != "" {
			out = append(out, code)
		}
	}
	return out
}
