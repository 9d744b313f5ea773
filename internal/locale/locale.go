// Package locale renders short, locale-aware calendar labels such as
// "Sun, Jun 2" using CLDR data.
package locale

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"golang.org/x/text/language"
)

const isoDateLayout = "2006-01-02"

// Default is used when no locale is configured.
const Default = "en-US"

var ErrInvalidLocale = errors.New("invalid locale")

type labelPattern func(weekday, month, day string) string

type supportedLocale struct {
	tag     language.Tag
	newFunc func() locales.Translator
	pattern labelPattern
}

// "Sun, Jun 2"
func weekdayMonthDay(weekday, month, day string) string {
	return weekday + ", " + month + " " + day
}

// "Sun 2 Jun"
func weekdayDayMonth(weekday, month, day string) string {
	return weekday + " " + day + " " + month
}

// "dom, 2 jun"
func weekdayCommaDayMonth(weekday, month, day string) string {
	return weekday + ", " + day + " " + month
}

// "So., 2. Juni"
func weekdayDayDotMonth(weekday, month, day string) string {
	return weekday + ", " + day + ". " + month
}

// The first entry is the fallback for languages without a match.
var supported = []supportedLocale{
	{tag: language.AmericanEnglish, newFunc: en.New, pattern: weekdayMonthDay},
	{tag: language.BritishEnglish, newFunc: en_GB.New, pattern: weekdayDayMonth},
	{tag: language.German, newFunc: de.New, pattern: weekdayDayDotMonth},
	{tag: language.French, newFunc: fr.New, pattern: weekdayDayMonth},
	{tag: language.Spanish, newFunc: es.New, pattern: weekdayCommaDayMonth},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// Formatter renders date labels for one locale. It is immutable and safe
// for concurrent use.
type Formatter struct {
	tag        language.Tag
	translator locales.Translator
	pattern    labelPattern
}

// New returns a Formatter for a BCP 47 identifier such as "en-GB". Unsupported
// languages fall back to American English.
func New(identifier string) (*Formatter, error) {
	tag, err := language.Parse(identifier)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLocale, identifier, err)
	}

	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		idx = 0
	}
	s := supported[idx]

	return &Formatter{
		tag:        s.tag,
		translator: s.newFunc(),
		pattern:    s.pattern,
	}, nil
}

// MustNew is like New but panics on an invalid identifier.
func MustNew(identifier string) *Formatter {
	f, err := New(identifier)
	if err != nil {
		panic(err)
	}
	return f
}

// Tag reports the locale actually used for formatting.
func (f *Formatter) Tag() string {
	return f.tag.String()
}

// Label formats the calendar fields of t, ignoring its time of day.
func (f *Formatter) Label(t time.Time) string {
	return f.pattern(
		f.translator.WeekdayAbbreviated(t.Weekday()),
		f.translator.MonthAbbreviated(t.Month()),
		strconv.Itoa(t.Day()),
	)
}

// LabelISO formats a YYYY-MM-DD date string. The string is read as a plain
// calendar date, so the label never shifts with the process timezone.
func (f *Formatter) LabelISO(date string) (string, error) {
	t, err := time.Parse(isoDateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return f.Label(t), nil
}
