package main

import "github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/app"

func main() {
	err := app.NewFilmRecommenderApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
