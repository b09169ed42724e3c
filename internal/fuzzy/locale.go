package fuzzy

import (
	"fmt"
	"sort"
	"strings"
)

// Locale is a phrase table. The formatter owns the bucket selection and hour
// rotation; a Locale only supplies the words and the width budget.
type Locale struct {
	Name string

	// Hours is indexed by hour%12.
	Hours [12]string
	// Midnight and Noon replace the hour name on the hour at 0 and 12 when set.
	// Rows two and three stay blank in that case.
	Midnight string
	Noon     string

	// Minutes holds the two row fragments for each bucket.
	Minutes [bucketCount][2]string

	// MinutesFirst makes Describe read the minute idiom before the hour
	// ("quarter to three") except on the hour ("three o'clock").
	MinutesFirst bool

	Weekdays   [7]string
	Months     [12]string
	DayPeriods [4]string // morning, afternoon, evening, night

	// RowWidths and StatusWidth are budgets in terminal cells.
	RowWidths   [RowCount]int
	StatusWidth int
}

// English is the default phrase table.
var English = Locale{
	Name:     "en",
	Hours:    [12]string{"twelve", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "eleven"},
	Midnight: "midnight",
	Noon:     "noon",
	Minutes: [bucketCount][2]string{
		OnTheHour:      {"o'clock", ""},
		FivePast:       {"five", "past"},
		TenPast:        {"ten", "past"},
		QuarterPast:    {"quarter", "past"},
		TwentyPast:     {"twenty", "past"},
		TwentyFivePast: {"twenty five", "past"},
		HalfPast:       {"half", "past"},
		TwentyFiveTo:   {"twenty five", "to"},
		TwentyTo:       {"twenty", "to"},
		QuarterTo:      {"quarter", "to"},
		TenTo:          {"ten", "to"},
		FiveTo:         {"five", "to"},
	},
	MinutesFirst: true,
	Weekdays:     [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
	Months:       [12]string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"},
	DayPeriods:   [4]string{"morning", "afternoon", "evening", "night"},
	RowWidths:    [RowCount]int{12, 12, 12},
	StatusWidth:  24,
}

// French reads hour first, the way it is spoken ("trois moins le quart").
var French = Locale{
	Name:     "fr",
	Hours:    [12]string{"douze", "une", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf", "dix", "onze"},
	Midnight: "minuit",
	Noon:     "midi",
	Minutes: [bucketCount][2]string{
		OnTheHour:      {"pile", ""},
		FivePast:       {"et", "cinq"},
		TenPast:        {"et", "dix"},
		QuarterPast:    {"et", "quart"},
		TwentyPast:     {"et", "vingt"},
		TwentyFivePast: {"et", "vingt-cinq"},
		HalfPast:       {"et", "demie"},
		TwentyFiveTo:   {"moins", "vingt-cinq"},
		TwentyTo:       {"moins", "vingt"},
		QuarterTo:      {"moins", "le quart"},
		TenTo:          {"moins", "dix"},
		FiveTo:         {"moins", "cinq"},
	},
	Weekdays:    [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	Months:      [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	DayPeriods:  [4]string{"matin", "après-midi", "soir", "nuit"},
	RowWidths:   [RowCount]int{12, 12, 12},
	StatusWidth: 24,
}

var locales = map[string]Locale{
	English.Name: English,
	French.Name:  French,
}

// LookupLocale returns the registered phrase table called name.
func LookupLocale(name string) (Locale, error) {
	loc, ok := locales[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Locale{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownLocale, name, strings.Join(LocaleNames(), ", "))
	}
	return loc, nil
}

// LocaleNames lists registered locale names in sorted order.
func LocaleNames() []string {
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
