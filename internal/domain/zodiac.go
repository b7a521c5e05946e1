package domain

import "time"

// Sign is a Western zodiac sign name.
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

type monthDay struct {
	month time.Month
	day   int
}

func (md monthDay) before(o monthDay) bool {
	if md.month != o.month {
		return md.month < o.month
	}
	return md.day < o.day
}

// signRange is an inclusive calendar range. A range whose start is after its
// end wraps the new year.
type signRange struct {
	sign       Sign
	start, end monthDay
}

func (r signRange) contains(md monthDay) bool {
	if r.end.before(r.start) {
		return !md.before(r.start) || !r.end.before(md)
	}
	return !md.before(r.start) && !r.end.before(md)
}

var signRanges = []signRange{
	{Aries, monthDay{time.March, 21}, monthDay{time.April, 19}},
	{Taurus, monthDay{time.April, 20}, monthDay{time.May, 20}},
	{Gemini, monthDay{time.May, 21}, monthDay{time.June, 20}},
	{Cancer, monthDay{time.June, 21}, monthDay{time.July, 22}},
	{Leo, monthDay{time.July, 23}, monthDay{time.August, 22}},
	{Virgo, monthDay{time.August, 23}, monthDay{time.September, 22}},
	{Libra, monthDay{time.September, 23}, monthDay{time.October, 22}},
	{Scorpio, monthDay{time.October, 23}, monthDay{time.November, 21}},
	{Sagittarius, monthDay{time.November, 22}, monthDay{time.December, 21}},
	{Capricorn, monthDay{time.December, 22}, monthDay{time.January, 19}},
	{Aquarius, monthDay{time.January, 20}, monthDay{time.February, 18}},
	{Pisces, monthDay{time.February, 19}, monthDay{time.March, 20}},
}

// ZodiacSign returns the sign whose inclusive date range covers t.
// Only month and day are considered.
func ZodiacSign(t time.Time) Sign {
	md := monthDay{t.Month(), t.Day()}
	for _, r := range signRanges {
		if r.contains(md) {
			return r.sign
		}
	}
	// Unreachable: the ranges cover every day of the year.
	return Capricorn
}

// Age returns the number of whole years between birth and now.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if (monthDay{now.Month(), now.Day()}).before(monthDay{birth.Month(), birth.Day()}) {
		age--
	}
	return age
}
