package health

import "time"

// Backend states reported by Status.
const (
	StateEnabled  = "enabled"
	StateDisabled = "disabled"
)

// Service reports which optional backends are configured and how much state the process holds.
type Service struct {
	OCREnabled bool
	ChatModel  string
	Analyses   func() int
	Candidates func() int
	StartedAt  time.Time
	Now        func() time.Time
}

// Status is the payload of the status endpoint.
type Status struct {
	OK             bool   `json:"ok"`
	UptimeSeconds  int64  `json:"uptimeSeconds"`
	OCR            string `json:"ocr"`
	Interview      string `json:"interview"`
	ChatModel      string `json:"chatModel,omitempty"`
	StoredAnalyses int    `json:"storedAnalyses"`
	Candidates     int    `json:"candidates"`
}

// NewService constructs a new health service.
func NewService(ocrEnabled bool, chatModel string) *Service {
	return &Service{OCREnabled: ocrEnabled, ChatModel: chatModel, StartedAt: time.Now(), Now: time.Now}
}

// Status returns the current readiness payload.
func (s *Service) Status() Status {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	st := Status{
		OK:            true,
		UptimeSeconds: int64(now.Sub(s.StartedAt).Seconds()),
		OCR:           state(s.OCREnabled),
		Interview:     state(s.ChatModel != ""),
		ChatModel:     s.ChatModel,
	}
	if s.Analyses != nil {
		st.StoredAnalyses = s.Analyses()
	}
	if s.Candidates != nil {
		st.Candidates = s.Candidates()
	}
	return st
}

func state(on bool) string {
	if on {
		return StateEnabled
	}
	return StateDisabled
}
