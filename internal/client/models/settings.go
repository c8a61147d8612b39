package models

// NotificationSettings are the payment-reminder notification toggles.
type NotificationSettings struct {
	Enabled        bool `json:"enabled"`
	PaymentMorning bool `json:"payment_morning"`
	Payment30Min   bool `json:"payment_30min"`
	CustomMessages bool `json:"custom_messages"`
}

// AppSettings are user preferences. They are loaded from local storage at
// startup, written back on every change, and survive sign-out.
type AppSettings struct {
	Theme         Theme                `json:"theme"`
	Notifications NotificationSettings `json:"notifications"`
	DefaultPhone  string               `json:"default_phone,omitempty"`
	CalendarSync  bool                 `json:"calendar_sync"`
	PinLock       bool                 `json:"pin_lock"`
}

// DefaultSettings returns the settings used before anything was persisted.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme: ThemeSystem,
		Notifications: NotificationSettings{
			Enabled:        true,
			PaymentMorning: true,
			Payment30Min:   true,
			CustomMessages: false,
		},
		CalendarSync: false,
		PinLock:      false,
	}
}

// SettingsPatch is a partial AppSettings update. Nil fields are left
// untouched when the patch is applied; the merge is shallow, so a present
// Notifications replaces the whole nested struct.
type SettingsPatch struct {
	Theme         *Theme                `json:"theme,omitempty"`
	Notifications *NotificationSettings `json:"notifications,omitempty"`
	DefaultPhone  *string               `json:"default_phone,omitempty"`
	CalendarSync  *bool                 `json:"calendar_sync,omitempty"`
	PinLock       *bool                 `json:"pin_lock,omitempty"`
}

// Apply merges the patch into s and returns the result.
func (p SettingsPatch) Apply(s AppSettings) AppSettings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.DefaultPhone != nil {
		s.DefaultPhone = *p.DefaultPhone
	}
	if p.CalendarSync != nil {
		s.CalendarSync = *p.CalendarSync
	}
	if p.PinLock != nil {
		s.PinLock = *p.PinLock
	}
	return s
}
