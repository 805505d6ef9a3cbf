package main

import (
	"fmt"
	"os"

	calc "github.com/garyo/housing-cost-calculator/internal/calculation"
	"github.com/garyo/housing-cost-calculator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_amortization <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	principal := cfg.Params.MortgagePrincipal()
	rate := cfg.Params.MortgageRate
	years := cfg.Params.MortgageYears

	payment := calc.FixedMonthlyPayment(principal, rate, years)
	fmt.Printf("Principal %s at %s%% over %d years, monthly payment %s\n",
		principal.StringFixed(2), rate, years, payment.StringFixed(2))

	fmt.Println("Month,Interest,Principal,Balance")
	balance := principal
	for m := 1; m <= years*12; m++ {
		split := calc.SplitPayment(principal, rate, years, m)
		balance = balance.Sub(split.PrincipalPaid)
		fmt.Printf("%d,%s,%s,%s\n", m,
			split.Interest.StringFixed(2), split.PrincipalPaid.StringFixed(2), balance.StringFixed(2))
	}
}
