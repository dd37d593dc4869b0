package usecases

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/*.yml
var promptFS embed.FS

const (
	justificationQueryChars       = 200
	justificationDescriptionChars = 300
	profileTopN                   = 3
	planWeakCategories            = 5
	// ratings above this are "preferred", i.e. 4 and 5 out of 5
	preferredRatingFloor = 3
)

// buildPromptMessages decodes the embedded prompt and fills its placeholders.
func buildPromptMessages(kind domain.AugmentationKind, args ...any) ([]domain.LLMChatMessage, error) {
	name := fmt.Sprintf("prompts/%s.yml", kind)
	file, err := promptFS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s prompt: %w", kind, err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode %s prompt: %w", kind, err)
	}

	// Only the last message (the user turn) carries placeholders.
	last := len(messages) - 1
	messages[last].Content = fmt.Sprintf(messages[last].Content, args...)
	return messages, nil
}

// enrichmentCall asks for context around a short query. The cache key only depends on the query text.
func enrichmentCall(profile domain.UserProfile) (AugmentationCall, error) {
	query := strings.TrimSpace(profile.Query)
	messages, err := buildPromptMessages(domain.AugmentationKind_QueryEnrichment, query)
	if err != nil {
		return AugmentationCall{}, err
	}
	return AugmentationCall{
		Request: domain.AugmentationRequest{
			Kind:    domain.AugmentationKind_QueryEnrichment,
			Profile: domain.UserProfile{Query: query},
		},
		Messages: messages,
	}, nil
}

func justificationCall(profile domain.UserProfile, item domain.ScoredItem) (AugmentationCall, error) {
	messages, err := buildPromptMessages(domain.AugmentationKind_ItemJustification,
		item.Item.Title,
		strconv.Itoa(item.Item.Year),
		item.Item.Creator,
		truncate(item.Item.Description, justificationDescriptionChars),
		truncate(profile.Query, justificationQueryChars),
		formatScore(item.Semantic),
		formatScore(item.Genre),
		formatScore(item.Mood),
	)
	if err != nil {
		return AugmentationCall{}, err
	}
	return AugmentationCall{
		Request: domain.AugmentationRequest{
			Kind:    domain.AugmentationKind_ItemJustification,
			ItemIDs: []string{item.Item.ID},
			Profile: profile,
			Subject: item.Item.ID,
		},
		Messages: messages,
		Fallback: fmt.Sprintf(
			"%s (%d) matches your profile with a final score of %s (semantic %s, genre %s, mood %s).",
			item.Item.Title, item.Item.Year,
			formatScore(item.Final), formatScore(item.Semantic), formatScore(item.Genre), formatScore(item.Mood),
		),
	}, nil
}

type promptItem struct {
	Title   string  `json:"title" toon:"title"`
	Year    int     `json:"year" toon:"year"`
	Creator string  `json:"creator" toon:"creator"`
	Genres  string  `json:"genres" toon:"genres"`
	Score   float64 `json:"score" toon:"score"`
}

func cinephileProfileCall(profile domain.UserProfile, top []domain.ScoredItem, coverage float64) (AugmentationCall, error) {
	genres := orVaried(domain.TopRated(profile.GenreRatings, preferredRatingFloor, profileTopN))
	moods := orVaried(domain.TopRated(profile.MoodRatings, preferredRatingFloor, profileTopN))
	titles := strings.Join(itemTitles(top), ", ")

	itemsTOON, err := marshalPromptItems(top)
	if err != nil {
		return AugmentationCall{}, err
	}
	messages, err := buildPromptMessages(domain.AugmentationKind_CinephileProfile,
		genres, moods, titles, formatScore(coverage), itemsTOON,
	)
	if err != nil {
		return AugmentationCall{}, err
	}
	return AugmentationCall{
		Request: domain.AugmentationRequest{
			Kind:    domain.AugmentationKind_CinephileProfile,
			ItemIDs: itemIDs(top),
			Profile: profile,
			Subject: formatScore(coverage),
		},
		Messages: messages,
		Fallback: fmt.Sprintf(
			"Favorite genres: %s. Sought-after moods: %s. Your top picks are %s, with an overall affinity of %s/1.00.",
			genres, moods, titles, formatScore(coverage),
		),
	}, nil
}

func discoveryPlanCall(profile domain.UserProfile, top []domain.ScoredItem, weak []string) (AugmentationCall, error) {
	if len(weak) > planWeakCategories {
		weak = weak[:planWeakCategories]
	}
	weakText := "none"
	if len(weak) > 0 {
		weakText = strings.Join(weak, ", ")
	}

	itemsTOON, err := marshalPromptItems(top)
	if err != nil {
		return AugmentationCall{}, err
	}
	messages, err := buildPromptMessages(domain.AugmentationKind_DiscoveryPlan,
		profileSummary(profile), itemsTOON, weakText,
	)
	if err != nil {
		return AugmentationCall{}, err
	}

	fallback := fmt.Sprintf("Start with %s.", strings.Join(itemTitles(top), ", then "))
	if len(weak) > 0 {
		fallback += fmt.Sprintf(" Then broaden your horizon with %s.", weakText)
	}
	return AugmentationCall{
		Request: domain.AugmentationRequest{
			Kind:    domain.AugmentationKind_DiscoveryPlan,
			ItemIDs: itemIDs(top),
			Profile: profile,
			Subject: strings.Join(weak, ","),
		},
		Messages: messages,
		Fallback: fallback,
	}, nil
}

// profileSummary names the three best rated genres and moods, without threshold.
func profileSummary(profile domain.UserProfile) string {
	genres := orVaried(domain.TopRated(profile.GenreRatings, 0, profileTopN))
	moods := orVaried(domain.TopRated(profile.MoodRatings, 0, profileTopN))
	return fmt.Sprintf("Favorite genres: %s. Moods: %s.", genres, moods)
}

func marshalPromptItems(items []domain.ScoredItem) (string, error) {
	list := make([]promptItem, len(items))
	for i, s := range items {
		list[i] = promptItem{
			Title:   s.Item.Title,
			Year:    s.Item.Year,
			Creator: s.Item.Creator,
			Genres:  strings.Join(s.Item.Genres, "/"),
			Score:   roundScore(s.Final),
		}
	}
	out, err := toon.MarshalString(list, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal prompt items: %w", err)
	}
	return out, nil
}

func itemTitles(items []domain.ScoredItem) []string {
	res := make([]string, len(items))
	for i, s := range items {
		res[i] = fmt.Sprintf("%s (%d)", s.Item.Title, s.Item.Year)
	}
	return res
}

func itemIDs(items []domain.ScoredItem) []string {
	res := make([]string, len(items))
	for i, s := range items {
		res[i] = s.Item.ID
	}
	return res
}

func orVaried(tags []string) string {
	if len(tags) == 0 {
		return "varied"
	}
	return strings.Join(tags, ", ")
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func roundScore(v float64) float64 {
	f, _ := strconv.ParseFloat(formatScore(v), 64)
	return f
}

// truncate cuts s to n runes and marks the cut with "...".
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "..."
}
