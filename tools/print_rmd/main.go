package main

import (
	"fmt"
	"os"

	"github.com/hhplan/household-planner/internal/calculation"
	"github.com/shopspring/decimal"
)

func main() {
	balance := decimal.NewFromInt(1000000)
	if len(os.Args) > 1 {
		b, err := decimal.NewFromString(os.Args[1])
		if err != nil {
			fmt.Println("usage: print_rmd [balance]")
			os.Exit(2)
		}
		balance = b
	}

	rmd := calculation.NewRMDCalculator(true, decimal.NewFromFloat(0.22))
	fmt.Printf("RMD schedule for a %s balance (22%% tax):\n", balance.StringFixed(0))
	for age := 73; age <= 102; age++ {
		div, _ := calculation.RMDDivisor(age)
		r := rmd.Calculate(balance, age, 73)
		fmt.Printf("age %3d divisor %5s gross %10s net %10s\n", age, div.StringFixed(1), r.Gross.StringFixed(2), r.Net().StringFixed(2))
	}
}
