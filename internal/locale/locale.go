// Package locale formats dates and labels for the picker.
//
// Each supported language has a fixed table. Lookup accepts any BCP 47 tag
// and returns the closest table, so "pt", "pt-PT" and "pt-BR" all get the
// Brazilian Portuguese labels the picker was first written for.
package locale

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/rangepick/internal/daterange"
	"golang.org/x/text/language"
)

// Default is the tag used when none is configured.
const Default = "pt-BR"

// Labels are the action bar and trigger texts.
type Labels struct {
	Placeholder string
	Clear       string
	Today       string
	Close       string
	PickStart   string
	PickEnd     string
	Presets     map[daterange.Preset]string
}

// Locale formats dates for one language.
type Locale struct {
	Tag         language.Tag
	Months      [12]string
	Weekdays    [7]string // abbreviations, Sunday first
	DateLayout  string    // numeric day/month/year layout, Go reference format
	ShortLayout string    // day and month only
	Separator   string    // between the two ends of a range
	Labels      Labels
}

var ptBR = Locale{
	Tag: language.BrazilianPortuguese,
	Months: [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	},
	Weekdays:    [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"},
	DateLayout:  "02/01/2006",
	ShortLayout: "02/01",
	Separator:   " – ",
	Labels: Labels{
		Placeholder: "Selecionar período",
		Clear:       "Limpar",
		Today:       "Hoje",
		Close:       "Fechar",
		PickStart:   "Selecione a data inicial",
		PickEnd:     "selecione a data final",
		Presets: map[daterange.Preset]string{
			daterange.PresetLast7Days:  "Últimos 7 dias",
			daterange.PresetLast30Days: "Últimos 30 dias",
			daterange.PresetThisMonth:  "Este mês",
		},
	},
}

var enUS = Locale{
	Tag: language.AmericanEnglish,
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	Weekdays:    [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	DateLayout:  "01/02/2006",
	ShortLayout: "01/02",
	Separator:   " – ",
	Labels: Labels{
		Placeholder: "Select range",
		Clear:       "Clear",
		Today:       "Today",
		Close:       "Close",
		PickStart:   "Pick a start date",
		PickEnd:     "pick an end date",
		Presets: map[daterange.Preset]string{
			daterange.PresetLast7Days:  "Last 7 days",
			daterange.PresetLast30Days: "Last 30 days",
			daterange.PresetThisMonth:  "This month",
		},
	},
}

var enGB = func() Locale {
	l := enUS
	l.Tag = language.BritishEnglish
	l.DateLayout = "02/01/2006"
	l.ShortLayout = "02/01"
	return l
}()

var esES = Locale{
	Tag: language.EuropeanSpanish,
	Months: [12]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	},
	Weekdays:    [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"},
	DateLayout:  "02/01/2006",
	ShortLayout: "02/01",
	Separator:   " – ",
	Labels: Labels{
		Placeholder: "Seleccionar período",
		Clear:       "Borrar",
		Today:       "Hoy",
		Close:       "Cerrar",
		PickStart:   "Seleccione la fecha inicial",
		PickEnd:     "seleccione la fecha final",
		Presets: map[daterange.Preset]string{
			daterange.PresetLast7Days:  "Últimos 7 días",
			daterange.PresetLast30Days: "Últimos 30 días",
			daterange.PresetThisMonth:  "Este mes",
		},
	},
}

// The first entry is the matcher's fallback.
var builtins = []Locale{ptBR, enUS, enGB, esES}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(builtins))
	for i, l := range builtins {
		tags[i] = l.Tag
	}
	return language.NewMatcher(tags)
}()

// Lookup returns the built-in locale closest to tag. An empty or malformed
// tag falls back to pt-BR.
func Lookup(tag string) Locale {
	if strings.TrimSpace(tag) == "" {
		return builtins[0]
	}
	t, err := language.Parse(tag)
	if err != nil {
		return builtins[0]
	}
	_, index, conf := matcher.Match(t)
	if conf == language.No {
		return builtins[0]
	}
	return builtins[index]
}

// Supported returns the tags of the built-in locales.
func Supported() []string {
	tags := make([]string, len(builtins))
	for i, l := range builtins {
		tags[i] = l.Tag.String()
	}
	return tags
}

// FormatDate formats d as a numeric day/month/year.
func (l Locale) FormatDate(d daterange.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(l.DateLayout)
}

// FormatShort formats d without the year.
func (l Locale) FormatShort(d daterange.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(l.ShortLayout)
}

// FormatRange returns the trigger label for r: the placeholder unless both
// ends are set. An empty placeholder uses the locale's own.
func (l Locale) FormatRange(r daterange.Range, placeholder string) string {
	if !r.Complete() {
		if placeholder == "" {
			return l.Labels.Placeholder
		}
		return placeholder
	}
	return l.FormatDate(r.From) + l.Separator + l.FormatDate(r.To)
}

// MonthName returns the name of m.
func (l Locale) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return l.Months[m-1]
}

// MonthTitle returns a header like "Janeiro 2024".
func (l Locale) MonthTitle(m daterange.Month) string {
	return fmt.Sprintf("%s %d", l.MonthName(m.Month), m.Year)
}

// WeekdayHeader returns the weekday abbreviations starting at weekStart.
func (l Locale) WeekdayHeader(weekStart time.Weekday) [7]string {
	var out [7]string
	for i := range out {
		out[i] = l.Weekdays[(int(weekStart)+i)%7]
	}
	return out
}

// PresetLabel returns the button label for p.
func (l Locale) PresetLabel(p daterange.Preset) string {
	if label, ok := l.Labels.Presets[p]; ok {
		return label
	}
	return p.String()
}
