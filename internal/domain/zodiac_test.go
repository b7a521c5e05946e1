package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Siddhartha1011/AI-Astrologer/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.BirthDateLayout, s)
	require.NoError(t, err)
	return d
}

func TestZodiacSign_Boundaries(t *testing.T) {
	tests := []struct {
		first, last string
		want        domain.Sign
	}{
		{"2000-03-21", "2000-04-19", domain.Aries},
		{"2000-04-20", "2000-05-20", domain.Taurus},
		{"2000-05-21", "2000-06-20", domain.Gemini},
		{"2000-06-21", "2000-07-22", domain.Cancer},
		{"2000-07-23", "2000-08-22", domain.Leo},
		{"2000-08-23", "2000-09-22", domain.Virgo},
		{"2000-09-23", "2000-10-22", domain.Libra},
		{"2000-10-23", "2000-11-21", domain.Scorpio},
		{"2000-11-22", "2000-12-21", domain.Sagittarius},
		{"2000-12-22", "2001-01-19", domain.Capricorn},
		{"2001-01-20", "2001-02-18", domain.Aquarius},
		{"2001-02-19", "2001-03-20", domain.Pisces},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			first, last := date(t, tt.first), date(t, tt.last)
			assert.Equal(t, tt.want, domain.ZodiacSign(first), "first day %s", tt.first)
			assert.Equal(t, tt.want, domain.ZodiacSign(last), "last day %s", tt.last)
			assert.NotEqual(t, tt.want, domain.ZodiacSign(first.AddDate(0, 0, -1)), "day before %s", tt.first)
			assert.NotEqual(t, tt.want, domain.ZodiacSign(last.AddDate(0, 0, 1)), "day after %s", tt.last)
		})
	}
}

func TestZodiacSign_CoversEveryDay(t *testing.T) {
	// 2024 is a leap year, so Feb 29 is included.
	start := date(t, "2024-01-01")
	counts := make(map[domain.Sign]int)
	total := 0
	for d := start; d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		counts[domain.ZodiacSign(d)]++
		total++
	}
	assert.Equal(t, 366, total)
	assert.Len(t, counts, 12)
	assert.Equal(t, 30, counts[domain.Aquarius])
	assert.Equal(t, 31, counts[domain.Pisces])
}

func TestZodiacSign_Wraparound(t *testing.T) {
	assert.Equal(t, domain.Capricorn, domain.ZodiacSign(date(t, "1999-12-31")))
	assert.Equal(t, domain.Capricorn, domain.ZodiacSign(date(t, "2000-01-01")))
	assert.Equal(t, domain.Sagittarius, domain.ZodiacSign(date(t, "1999-12-21")))
	assert.Equal(t, domain.Aquarius, domain.ZodiacSign(date(t, "2000-01-20")))
}

func TestAge(t *testing.T) {
	now := date(t, "2026-10-16")

	tests := []struct {
		name  string
		birth string
		want  int
	}{
		{"exactly one year", "2025-10-16", 1},
		{"birthday later this year", "1990-12-01", 35},
		{"birthday earlier this year", "1990-03-01", 36},
		{"birthday tomorrow", "2000-10-17", 25},
		{"born today", "2026-10-16", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Age(date(t, tt.birth), now))
		})
	}
}

func TestBirthData_ParseBirthDate(t *testing.T) {
	_, err := domain.BirthData{BirthDate: "1990-04-20"}.ParseBirthDate()
	require.NoError(t, err)

	for _, bad := range []string{"", "20/04/1990", "1990-13-01", "1990-04-20T00:00:00Z"} {
		_, err := domain.BirthData{BirthDate: bad}.ParseBirthDate()
		assert.ErrorIs(t, err, domain.ErrInvalidBirthDate, "input %q", bad)
	}
}
