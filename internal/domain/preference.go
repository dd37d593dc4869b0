package domain

// GenreScore is the mean normalized rating (rating/5) of the item's genres.
// Items without genres score NeutralScore.
func GenreScore(item CatalogItem, profile UserProfile) float64 {
	return meanRating(item.Genres, profile.GenreRating)
}

// MoodScore is the mean normalized rating (rating/5) of the item's moods.
// Items without moods score NeutralScore.
func MoodScore(item CatalogItem, profile UserProfile) float64 {
	return meanRating(item.Moods, profile.MoodRating)
}

func meanRating(tags []string, ratingOf func(string) int) float64 {
	if len(tags) == 0 {
		return NeutralScore
	}
	var sum float64
	for _, tag := range tags {
		sum += float64(ratingOf(tag)) / MaxRating
	}
	return Clamp01(sum / float64(len(tags)))
}
