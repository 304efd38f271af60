package main

import (
	"flag"
	"log"

	"pizzeria/internal/builder"
	"pizzeria/internal/catalog"
	"pizzeria/internal/config"
	"pizzeria/internal/menudata"
	"pizzeria/internal/monitoring"
)

var configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cat, err := catalog.LoadFrom(menudata.FileSource{
		IngredientsPath: cfg.Data.Ingredients,
		BasesPath:       cfg.Data.Bases,
		SidesPath:       cfg.Data.Sides,
	})
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	var metrics *monitoring.Collector
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewCollector()
	}
	assembler := builder.NewAssembler(cat, metrics)

	log.Printf("Catalog loaded: %d ingredients, %d bases, %d sides",
		len(cat.ListIngredients()), len(cat.ListBases()), len(cat.ListSides()))

	for _, base := range cat.ListBases() {
		log.Printf("base %s\t%s", base.Name, base.Price)
	}
	for _, ing := range cat.ListIngredients() {
		log.Printf("ingredient %s\t%s", ing.Name, ing.Price)
	}
	for _, side := range cat.ListSides() {
		log.Printf("side %s\t%s\tallowed: %v", side.Name, side.Price, side.AllowedPizzas)
	}

	log.Printf("Ready to assemble; %d orders on the log", len(assembler.Orders()))
}
