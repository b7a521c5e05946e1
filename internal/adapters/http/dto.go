package http

import "github.com/Siddhartha1011/AI-Astrologer/internal/domain"

// BirthRequest is the JSON body of POST /generate-reading.
type BirthRequest struct {
	Name       string `json:"name" validate:"required"`
	BirthDate  string `json:"birthDate" validate:"required"`
	BirthTime  string `json:"birthTime" validate:"required"`
	BirthPlace string `json:"birthPlace" validate:"required"`
}

func (r BirthRequest) toDomain() domain.BirthData {
	return domain.BirthData{
		Name:       r.Name,
		BirthDate:  r.BirthDate,
		BirthTime:  r.BirthTime,
		BirthPlace: r.BirthPlace,
	}
}

// QuestionRequest is the JSON body of POST /ask-question. Question is
// declared first so it is validated before the birth fields.
type QuestionRequest struct {
	Question string `json:"question" validate:"required"`
	BirthRequest
}

type ReadingResponse struct {
	Success    bool    `json:"success"`
	Reading    string  `json:"reading"`
	ZodiacSign *string `json:"zodiac_sign"`
}

type AnswerResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	GroqConfigured   bool   `json:"groq_configured"`
	TavilyConfigured bool   `json:"tavily_configured"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
