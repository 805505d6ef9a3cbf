package main

import (
	"fmt"
	"os"

	calc "github.com/garyo/housing-cost-calculator/internal/calculation"
	"github.com/garyo/housing-cost-calculator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_crossover <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	engine := calc.NewScenarioEngineWithConfig(cfg.TaxRules)
	points, err := engine.CompareAcrossYears(cfg.Params.AnalysisYears, &cfg.Params)
	if err != nil {
		panic(err)
	}

	fmt.Println("Years,ApartmentTotal,CondoTotal,Difference")
	for _, pt := range points {
		fmt.Printf("%d,%s,%s,%s\n", pt.Year,
			pt.ApartmentCost.StringFixed(0), pt.CondoCost.StringFixed(0),
			pt.CondoCost.Sub(pt.ApartmentCost).StringFixed(0))
	}

	if c := calc.FindCostCrossover(points); c != nil {
		fmt.Printf("crossover: year %d fraction %s cumulative %s\n",
			c.YearIndex, c.Fraction.StringFixed(3), c.CumulativeAmount.StringFixed(0))
	} else {
		fmt.Println("no crossover in range")
	}
}
