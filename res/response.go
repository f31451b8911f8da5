package res

type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"body,omitempty"`
}

type ErrorRes struct {
	Err        error
	StatusCode int
}

// Notify types
const (
	LEAD = "lead"
	BLOG = "blog"
)

type NotifyBackoffice struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Type  string `json:"type"`
}
