package main

import "github.com/MetaFrench/atlas-web-graphql/internal/app"

func main() {
	err := app.NewAtlasApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
