package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	// MinRating is the lowest Likert rating.
	MinRating = 1
	// MaxRating is the highest Likert rating.
	MaxRating = 5
	// NeutralRating is assumed for every genre or mood the user did not rate.
	NeutralRating = 3
	// DefaultMinQueryLength is the minimum trimmed length of the free-text query.
	DefaultMinQueryLength = 20
)

// Era is a release period bucket offered to the user as a filter.
type Era string

const (
	EraUpTo1980s Era = "1980s and before"
	Era1990s     Era = "1990s"
	Era2000s     Era = "2000s"
	Era2010s     Era = "2010s"
	Era2020s     Era = "2020s"
)

// KnownEras lists every era in chronological order.
var KnownEras = []Era{EraUpTo1980s, Era1990s, Era2000s, Era2010s, Era2020s}

// EraOf returns the era of a release year.
func EraOf(year int) Era {
	switch {
	case year < 1990:
		return EraUpTo1980s
	case year < 2000:
		return Era1990s
	case year < 2010:
		return Era2000s
	case year < 2020:
		return Era2010s
	default:
		return Era2020s
	}
}

// IsValid reports whether the era is one of KnownEras.
func (e Era) IsValid() bool {
	for _, k := range KnownEras {
		if e == k {
			return true
		}
	}
	return false
}

// ProfileFilters are the optional textual and structural constraints of a profile.
type ProfileFilters struct {
	Eras            []Era    `json:"eras,omitempty"`
	Creators        []string `json:"creators,omitempty" validate:"dive,max=200"`
	ReferenceItems  []string `json:"reference_items,omitempty" validate:"dive,max=200"`
	Avoid           string   `json:"avoid,omitempty" validate:"max=2000"`
	ExcludedItemIDs []string `json:"excluded_item_ids,omitempty"`
}

// UserProfile is the immutable questionnaire submission of one user.
type UserProfile struct {
	Query        string         `json:"query" validate:"required,max=5000"`
	GenreRatings map[string]int `json:"genre_ratings,omitempty" validate:"dive,keys,required,endkeys,min=1,max=5"`
	MoodRatings  map[string]int `json:"mood_ratings,omitempty" validate:"dive,keys,required,endkeys,min=1,max=5"`
	Filters      ProfileFilters `json:"filters"`
}

var (
	profileValidator     *validator.Validate
	profileValidatorOnce sync.Once
)

func getProfileValidator() *validator.Validate {
	profileValidatorOnce.Do(func() {
		profileValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return profileValidator
}

// Validate checks the profile. The trimmed query must be at least minQueryLength characters long.
func (p UserProfile) Validate(minQueryLength int) error {
	if err := getProfileValidator().Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return NewValidationErr(describeFieldError(fieldErrs[0]))
		}
		return NewValidationErr(err.Error())
	}

	if n := len([]rune(strings.TrimSpace(p.Query))); n < minQueryLength {
		return NewValidationErr(fmt.Sprintf("query must have at least %d characters, got %d", minQueryLength, n))
	}

	for _, era := range p.Filters.Eras {
		if !era.IsValid() {
			return NewValidationErr(fmt.Sprintf("unknown era %q", era))
		}
	}

	if err := checkRatingKeys("genre_ratings", p.GenreRatings); err != nil {
		return err
	}
	return checkRatingKeys("mood_ratings", p.MoodRatings)
}

// checkRatingKeys rejects two keys that rate the same tag, such as "SciFi" and "scifi",
// or "Intense/Tense" and "Tense/Calm".
func checkRatingKeys(field string, ratings map[string]int) error {
	owner := make(map[string]string)
	for _, key := range slices.Sorted(maps.Keys(ratings)) {
		for _, tag := range tagAliases(key) {
			if prev, ok := owner[tag]; ok && prev != key {
				return NewValidationErr(fmt.Sprintf("%s %q and %q both rate %q", field, prev, key, tag))
			}
			owner[tag] = key
		}
	}
	return nil
}

// tagAliases returns the normalized key followed by each of its "/" separated aliases.
func tagAliases(key string) []string {
	var res []string
	add := func(tag string) {
		if tag = normalizeTag(tag); tag != "" && !slices.Contains(res, tag) {
			res = append(res, tag)
		}
	}
	add(key)
	for _, alias := range strings.Split(key, "/") {
		add(alias)
	}
	return res
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}

// GenreRating returns the rating of a genre, or NeutralRating when unrated.
func (p UserProfile) GenreRating(genre string) int {
	return lookupRating(p.GenreRatings, genre)
}

// MoodRating returns the rating of a mood, or NeutralRating when unrated.
func (p UserProfile) MoodRating(mood string) int {
	return lookupRating(p.MoodRatings, mood)
}

// lookupRating matches tags case-insensitively. A rating key like "Intense/Tense"
// matches either of its aliases. Keys are visited in sorted order, so when an
// unvalidated profile rates the same tag twice the first key wins.
func lookupRating(ratings map[string]int, tag string) int {
	want := normalizeTag(tag)
	if want == "" {
		return NeutralRating
	}
	keys := slices.Sorted(maps.Keys(ratings))
	for _, key := range keys {
		if normalizeTag(key) == want {
			return ratings[key]
		}
	}
	for _, key := range keys {
		for _, alias := range strings.Split(key, "/") {
			if normalizeTag(alias) == want {
				return ratings[key]
			}
		}
	}
	return NeutralRating
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// AnalysisText composes the text that is encoded into the catalog space:
// the free-text query followed by the textual filters. Filter lists are sets,
// they are written in canonical order.
func (p UserProfile) AnalysisText() string {
	parts := []string{strings.TrimSpace(p.Query)}
	if creators := canonicalTexts(p.Filters.Creators); len(creators) > 0 {
		parts = append(parts, "Favorite directors: "+strings.Join(creators, ", "))
	}
	if refs := canonicalTexts(p.Filters.ReferenceItems); len(refs) > 0 {
		parts = append(parts, "Reference films: "+strings.Join(refs, ", "))
	}
	if eras := canonicalEras(p.Filters.Eras); len(eras) > 0 {
		names := make([]string, len(eras))
		for i, e := range eras {
			names[i] = string(e)
		}
		parts = append(parts, "Preferred periods: "+strings.Join(names, ", "))
	}
	if avoid := strings.TrimSpace(p.Filters.Avoid); avoid != "" {
		parts = append(parts, "Elements to avoid: "+avoid)
	}
	return strings.Join(parts, " | ")
}

// WithEnrichedQuery returns a copy of the profile whose query carries the enrichment text.
func (p UserProfile) WithEnrichedQuery(enrichment string) UserProfile {
	enrichment = strings.TrimSpace(enrichment)
	if enrichment == "" {
		return p
	}
	c := p
	c.Query = strings.TrimSpace(p.Query) + "\n\n" + enrichment
	return c
}

// IsExcluded reports whether the user asked to never see the given item.
func (p UserProfile) IsExcluded(id string) bool {
	for _, ex := range p.Filters.ExcludedItemIDs {
		if strings.TrimSpace(ex) == id {
			return true
		}
	}
	return false
}

// TopRated returns the tags rated above minRating, best first, limited to n.
func TopRated(ratings map[string]int, minRating, n int) []string {
	type kv struct {
		tag    string
		rating int
	}
	var list []kv
	for tag, r := range ratings {
		if r > minRating {
			list = append(list, kv{tag, r})
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].rating != list[j].rating {
			return list[i].rating > list[j].rating
		}
		return list[i].tag < list[j].tag
	})
	if len(list) > n {
		list = list[:n]
	}
	res := make([]string, len(list))
	for i, e := range list {
		res[i] = e.tag
	}
	return res
}

// canonicalTexts trims the values, drops the empty and duplicate ones and sorts the rest.
func canonicalTexts(values []string) []string {
	res := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// canonicalEras sorts eras chronologically without duplicates. Unknown eras go last.
func canonicalEras(eras []Era) []Era {
	rank := func(e Era) int {
		if i := slices.Index(KnownEras, e); i >= 0 {
			return i
		}
		return len(KnownEras)
	}
	res := slices.Clone(eras)
	slices.SortFunc(res, func(a, b Era) int {
		if c := rank(a) - rank(b); c != 0 {
			return c
		}
		return strings.Compare(string(a), string(b))
	})
	return slices.Compact(res)
}
