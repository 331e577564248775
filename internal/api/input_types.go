package api

type credentialsInput struct {
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	DisplayName string `json:"display_name" form:"display_name"`
	RememberMe  bool   `json:"remember_me" form:"remember_me"`
}

type habitPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Frequency   string   `json:"frequency"`
	TargetCount int      `json:"target_count"`
	Unit        string   `json:"unit"`
	Reminders   []string `json:"reminders"`
}

type entryPayload struct {
	Value float64 `json:"value"`
	Note  string  `json:"note"`
}
