package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Siddhartha1011/AI-Astrologer/internal/domain"
	"github.com/Siddhartha1011/AI-Astrologer/internal/metrics"
	"github.com/Siddhartha1011/AI-Astrologer/internal/ports"
	"github.com/Siddhartha1011/AI-Astrologer/internal/prompt"
)

// Fixed user-facing texts returned instead of generated content.
const (
	NotConfiguredMessage = "Sorry, Groq API is not configured."
	ApologyMessage       = "I'm having trouble accessing my astrological insights right now. Please try again later."
)

const (
	resultsPerQuery = 2
)

// ReadingResponse is the application-level output of GenerateReading.
type ReadingResponse struct {
	Reading string
	// ZodiacSign is empty when augmentation produced no information.
	ZodiacSign domain.Sign
}

// AnswerResponse is the application-level output of AnswerQuestion.
type AnswerResponse struct {
	Answer string
}

// AstrologerService orchestrates search augmentation, prompt assembly and
// generation. It holds no per-request state.
type AstrologerService struct {
	searcher  ports.Searcher
	generator ports.Generator
	clock     domain.Clock
	logger    *zap.Logger
}

func NewAstrologerService(s ports.Searcher, g ports.Generator, clock domain.Clock, logger *zap.Logger) *AstrologerService {
	return &AstrologerService{
		searcher:  s,
		generator: g,
		clock:     clock,
		logger:    logger.With(zap.String("component", "astrologer")),
	}
}

func (s *AstrologerService) GenerateReading(ctx context.Context, birth domain.BirthData) (ReadingResponse, error) {
	info := s.Augment(ctx, birth)

	p, err := prompt.Reading(birth, info)
	if err != nil {
		return ReadingResponse{}, fmt.Errorf("build prompt: %w", err)
	}

	text, err := s.generate(ctx, p)
	if err != nil {
		return ReadingResponse{}, fmt.Errorf("generate reading: %w", err)
	}

	resp := ReadingResponse{Reading: text}
	if info != nil {
		resp.ZodiacSign = info.ZodiacSign
	}
	return resp, nil
}

func (s *AstrologerService) AnswerQuestion(ctx context.Context, birth domain.BirthData, question string) (AnswerResponse, error) {
	info := s.Augment(ctx, birth)

	p, err := prompt.Answer(birth, question, info)
	if err != nil {
		return AnswerResponse{}, fmt.Errorf("build prompt: %w", err)
	}

	text, err := s.generate(ctx, p)
	if err != nil {
		return AnswerResponse{}, fmt.Errorf("answer question: %w", err)
	}
	return AnswerResponse{Answer: text}, nil
}

// SearchQueries returns the three fixed queries issued for a request, in order.
func SearchQueries(sign domain.Sign, birth domain.BirthData) []string {
	return []string{
		fmt.Sprintf("%s astrology personality traits characteristics", sign),
		fmt.Sprintf("%s horoscope career love relationships", sign),
		fmt.Sprintf("birth chart astrology %s %s", birth.BirthPlace, birth.BirthDate),
	}
}

// Augment derives the zodiac sign and age and collects web-search context.
// Queries run one after another; a failed query is logged and skipped. An
// unparseable birth date yields nil, discarding everything.
func (s *AstrologerService) Augment(ctx context.Context, birth domain.BirthData) *domain.SearchInfo {
	born, err := birth.ParseBirthDate()
	if err != nil {
		s.logger.Error("search augmentation failed", zap.String("birth_date", birth.BirthDate), zap.Error(err))
		return nil
	}

	info := &domain.SearchInfo{
		ZodiacSign: domain.ZodiacSign(born),
		Age:        domain.Age(born, s.clock.Now()),
	}

	for _, q := range SearchQueries(info.ZodiacSign, birth) {
		res, err := s.searcher.Search(ctx, q)
		if err != nil {
			status := metrics.StatusError
			if errors.Is(err, domain.ErrSearchNotConfigured) {
				status = metrics.StatusNotConfigured
			}
			metrics.SearchQueries.WithLabelValues(status).Inc()
			s.logger.Warn("search failed", zap.String("query", q), zap.Error(err))
			continue
		}
		metrics.SearchQueries.WithLabelValues(metrics.StatusOK).Inc()

		results := res.Results
		if len(results) > resultsPerQuery {
			results = results[:resultsPerQuery]
		}
		info.SearchResults = append(info.SearchResults, results...)
		if res.Answer != "" {
			info.SearchResults = append(info.SearchResults, domain.Snippet{
				Title:   "Summary for " + q,
				Content: res.Answer,
			})
		}
	}

	return info
}

// generate applies the fallback policy: generator failures never surface as
// errors, only an abandoned request does.
func (s *AstrologerService) generate(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := s.generator.Generate(ctx, p)
	switch {
	case err == nil:
		metrics.LLMGenerations.WithLabelValues(metrics.StatusOK).Inc()
		return text, nil
	case errors.Is(err, domain.ErrLLMNotConfigured):
		metrics.LLMGenerations.WithLabelValues(metrics.StatusNotConfigured).Inc()
		return NotConfiguredMessage, nil
	default:
		metrics.LLMGenerations.WithLabelValues(metrics.StatusError).Inc()
		s.logger.Error("LLM call failed", zap.Error(err))
		return ApologyMessage, nil
	}
}
