package main

import "github.com/cleitonmarx/symbiont-ai-foodapp/internal/app"

func main() {
	err := app.NewFoodApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
