package settingsservice

// Room модель комнаты из SettingsService
type Room struct {
	ID      string `json:"id"`
	HotelID string `json:"hotel_id"`
	Number  string `json:"number"`
	Type    string `json:"type"`
	Status  string `json:"status"`
}

// ErrorResponse модель ошибки от SettingsService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
